package cssvalue

import "testing"

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"+42", 42},
		{"-42", -42},
		{"9999999999", 9999999999},
		{"123px", 123},
		{"12.5", 12},
		{"-7em", -7},
		{"", 0},
		{"-", 0},
		{"+", 0},
		{"px12", 0},
		{".5", 0},
	}
	for _, tt := range tests {
		if got := parseLeadingInt(tt.in); got != tt.want {
			t.Errorf("parseLeadingInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"0.5", 0.5},
		{"+0.5", 0.5},
		{"-0.5", -0.5},
		{"12.34", 12.34},
		{"0.5.42", 0.5},
		{".271", 0.271},
		{"3.141e-5", 3.141e-5},
		{"7.5e-10", 7.5e-10},
		{"2.5E-1", 0.25},
		{"42px", 42},
		{"12.5em", 12.5},
		{"5.", 5},
		{"1e", 1},
		{"1e-", 1},
		{"", 0},
		{"-", 0},
		{".", 0},
		{"px", 0},
	}
	for _, tt := range tests {
		if got := parseLeadingFloat(tt.in); got != tt.want {
			t.Errorf("parseLeadingFloat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
		{3.141e-5, 3.141e-5},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPercentByte(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{0, 0},
		{50, 128},
		{100, 255},
		{1, 3},
	}
	for _, tt := range tests {
		if got := percentByte(tt.in); got != tt.want {
			t.Errorf("percentByte(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
