package cssvalue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/cssrand/pkg/random"
)

const iterations = 2000

var (
	integerRe  = regexp.MustCompile(`^[+-]?[0-9]+$`)
	numberRe   = regexp.MustCompile(`^[+-]?\d+\.\d+$`)
	lengthRe   = regexp.MustCompile(`^([+-]?\d*\.?\d+(em|ex|px|in|cm|mm|pt|pc|%)|0)$`)
	hex6Re     = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	hex3Re     = regexp.MustCompile(`^#[0-9a-f]{3}$`)
	rgbRe      = regexp.MustCompile(`^rgb\((\d+),(\d+),(\d+)\)$`)
	rgbPctRe   = regexp.MustCompile(`^rgb\((\d+)%,(\d+)%,(\d+)%\)$`)
	keywordRe  = regexp.MustCompile(`^[a-z]+$`)
	opacityRes = []*regexp.Regexp{
		regexp.MustCompile(`^1$`),
		regexp.MustCompile(`^0$`),
		regexp.MustCompile(`^\d\.\d+e-(10|[1-9])$`),
		regexp.MustCompile(`^[ 0]\.\d+$`),
	}
)

func TestInteger(t *testing.T) {
	src := random.NewSource(11)

	for i := 0; i < iterations; i++ {
		c := Integer(src)

		require.Regexp(t, integerRe, c.Text)
		assert.Equal(t, c.Text, strings.TrimSpace(c.Text), "text must be stored trimmed")
		assert.Equal(t, parseLeadingInt(c.Text), c.Value)

		parsed, err := strconv.ParseInt(c.Text, 10, 64)
		require.NoError(t, err)
		assert.Equal(t, parsed, c.Value)
		assert.LessOrEqual(t, abs64(c.Value), int64(9999999999))
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestNumber(t *testing.T) {
	src := random.NewSource(12)

	for i := 0; i < iterations; i++ {
		c := Number(src)

		require.Regexp(t, numberRe, c.Text)
		parsed, err := strconv.ParseFloat(c.Text, 64)
		require.NoError(t, err)
		assert.Equal(t, parsed, c.Value)
	}
}

func TestLength(t *testing.T) {
	src := random.NewSource(13)

	sawZero, sawUnit := false, false
	for i := 0; i < iterations; i++ {
		c := Length(src)

		require.Regexp(t, lengthRe, c.Text)
		if c.Text == "0" {
			sawZero = true
			assert.Zero(t, c.Value)
			continue
		}
		sawUnit = true
		assert.Equal(t, parseLeadingFloat(c.Text), c.Value)
		assert.NotZero(t, c.Value, "only a zero value may omit the unit")

		unit := strings.TrimLeft(c.Text, "+-.0123456789")
		assert.Contains(t, Units(), unit)
	}
	assert.True(t, sawZero, "expected at least one collapsed zero length")
	assert.True(t, sawUnit, "expected at least one unit-bearing length")
}

func TestOpacityValue(t *testing.T) {
	src := random.NewSource(14)

	for i := 0; i < iterations; i++ {
		c := OpacityValue(src)

		matched := false
		for _, re := range opacityRes {
			if re.MatchString(c.Text) {
				matched = true
				break
			}
		}
		require.True(t, matched, "text %q matches none of the four opacity shapes", c.Text)

		assert.GreaterOrEqual(t, c.Value, 0.0)
		assert.LessOrEqual(t, c.Value, 1.0)
		assert.Equal(t, clamp01(parseLeadingFloat(strings.TrimSpace(c.Text))), c.Value)
	}
}

func TestColor(t *testing.T) {
	src := random.NewSource(15)

	seen := map[string]int{}
	for i := 0; i < 10000; i++ {
		c := Color(src)

		switch {
		case hex6Re.MatchString(c.Text):
			seen["hex6"]++
			r, _ := strconv.ParseUint(c.Text[1:3], 16, 8)
			g, _ := strconv.ParseUint(c.Text[3:5], 16, 8)
			b, _ := strconv.ParseUint(c.Text[5:7], 16, 8)
			assert.Equal(t, RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, c.Value)

		case hex3Re.MatchString(c.Text):
			seen["hex3"]++
			for ch := 0; ch < 3; ch++ {
				nib, err := strconv.ParseUint(c.Text[1+ch:2+ch], 16, 8)
				require.NoError(t, err)
				want := uint8(nib * 17)
				got := [3]uint8{c.Value.R, c.Value.G, c.Value.B}[ch]
				assert.Equal(t, want, got, "channel %d of %q", ch, c.Text)
			}

		case rgbRe.MatchString(c.Text):
			seen["rgb"]++
			m := rgbRe.FindStringSubmatch(c.Text)
			for ch, s := range m[1:] {
				n, err := strconv.Atoi(s)
				require.NoError(t, err)
				require.True(t, n >= 0 && n <= 255, "component %d out of range in %q", n, c.Text)
				got := [3]uint8{c.Value.R, c.Value.G, c.Value.B}[ch]
				assert.Equal(t, uint8(n), got)
			}

		case rgbPctRe.MatchString(c.Text):
			seen["rgbpct"]++
			m := rgbPctRe.FindStringSubmatch(c.Text)
			for ch, s := range m[1:] {
				p, err := strconv.Atoi(s)
				require.NoError(t, err)
				require.True(t, p >= 0 && p <= 100, "percentage %d out of range in %q", p, c.Text)
				got := [3]uint8{c.Value.R, c.Value.G, c.Value.B}[ch]
				assert.Equal(t, percentByte(p), got)
			}

		default:
			seen["named"]++
			require.Regexp(t, keywordRe, c.Text)
			want, ok := NamedRGB(c.Text)
			require.True(t, ok, "%q is not in the keyword table", c.Text)
			assert.Equal(t, want, c.Value)
		}
	}

	// The threshold cascade (1/5, 1/4, 1/3, 1/2 over the remaining mass)
	// works out to 20% per branch. Loose band, not exact equality.
	for _, branch := range []string{"hex6", "hex3", "rgb", "rgbpct", "named"} {
		assert.Greater(t, seen[branch], 1500, "branch %s starved", branch)
		assert.Less(t, seen[branch], 2500, "branch %s overweighted", branch)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	type run struct {
		name string
		gen  func(*random.Source) string
	}
	runs := []run{
		{"integer", func(s *random.Source) string { return Integer(s).Text }},
		{"number", func(s *random.Source) string { return Number(s).Text }},
		{"length", func(s *random.Source) string { return Length(s).Text }},
		{"opacity", func(s *random.Source) string { return OpacityValue(s).Text }},
		{"color", func(s *random.Source) string { c := Color(s); return c.Text + "/" + c.Value.String() }},
	}

	for _, r := range runs {
		t.Run(r.name, func(t *testing.T) {
			a, b := random.NewSource(99), random.NewSource(99)
			for i := 0; i < 200; i++ {
				require.Equal(t, r.gen(a), r.gen(b), "streams diverged at draw %d", i)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	assert.Equal(t, "rgb(255, 0, 128)", RGB{R: 255, G: 0, B: 128}.String())
	assert.Equal(t, "rgb(0, 0, 0)", RGB{}.String())
}

func ExampleInteger() {
	c := Integer(random.NewSource(1))
	fmt.Println(c.Text == strconv.FormatInt(c.Value, 10) ||
		c.Text == "+"+strconv.FormatInt(c.Value, 10))
	// Output: true
}
