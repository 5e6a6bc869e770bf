package cssvalue

import (
	"math"
	"strconv"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseLeadingInt reads an optional sign and the longest run of decimal
// digits from the start of s and returns the integer they spell. Anything
// after the digit run is ignored. Returns 0 when no digits lead s.
func parseLeadingInt(s string) int64 {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	var n int64
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int64(s[i]-'0')
		i++
	}
	if i == start {
		return 0
	}
	if neg {
		return -n
	}
	return n
}

// parseLeadingFloat reads the longest valid floating-point prefix of s
// (optional sign, digits, optional fraction, optional exponent) and returns
// its value. A second '.' or any other trailing junk is ignored, so
// "0.5.42" parses as 0.5. Returns 0 when no numeric prefix exists.
func parseLeadingFloat(s string) float64 {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	hasInt := j > i

	end := j
	hasFrac := false
	if j < len(s) && s[j] == '.' {
		k := j + 1
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j+1 {
			end = k
			hasFrac = true
		}
	}
	if !hasInt && !hasFrac {
		return 0
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		k := end + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		d := k
		for d < len(s) && isDigit(s[d]) {
			d++
		}
		if d > k {
			end = d
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// The prefix scanner only admits strings ParseFloat accepts; a
		// failure here is a generator bug caught by the package tests.
		return 0
	}
	return v
}

// clamp01 clamps v into [0, 1].
func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
