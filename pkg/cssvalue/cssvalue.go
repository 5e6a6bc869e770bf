package cssvalue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/getmockd/cssrand/pkg/random"
)

// Content pairs a decoded value with the text that renders it. The text is
// guaranteed to decode, under its grammar's own parsing rule, back to Value.
// Contents are immutable once returned.
type Content[V any] struct {
	Value V      `json:"value"`
	Text  string `json:"text"`
}

// RGB is a decoded color with each channel in [0, 255].
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String renders the triple in rgb() functional form.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

const whitespace = " \t\n"

// signs are the optional leading sign characters shared by the numeric
// grammars.
var signs = []string{"", "+", "-"}

// units are the CSS <length> units a nonzero Length may carry.
var units = []string{"em", "ex", "px", "in", "cm", "mm", "pt", "pc", "%"}

// Units returns a copy of the length unit set.
func Units() []string {
	return append([]string(nil), units...)
}

// Integer generates a signed decimal integer of up to 10 digits. The raw
// text is built with sampled whitespace around the signed digit run and
// trimmed before storage, so Text always matches ^[+-]?[0-9]+$.
func Integer(src *random.Source) Content[int64] {
	sign, _ := random.Choice(src, signs)
	digits := strconv.FormatInt(src.IntBetween(0, 9999999999), 10)
	raw := src.SampleChars(whitespace, int(src.IntBetween(0, 3))) +
		sign + digits +
		src.SampleChars(whitespace, int(src.IntBetween(0, 3)))
	text := strings.TrimSpace(raw)
	return Content[int64]{Value: parseLeadingInt(text), Text: text}
}

// fraction builds the shared fractional body of Number and Length: either
// the literal "0.5" or two integers in [0, 100) joined by a dot.
func fraction(src *random.Source) string {
	if random.Coin(src, true, false, 0.5) {
		return "0.5"
	}
	return fmt.Sprintf("%d.%d", src.IntBetween(0, 99), src.IntBetween(0, 99))
}

// Number generates a signed decimal fraction, e.g. "-42.17" or "+0.5".
func Number(src *random.Source) Content[float64] {
	sign, _ := random.Choice(src, signs)
	text := sign + fraction(src)
	return Content[float64]{Value: parseLeadingFloat(text), Text: text}
}

// Length generates a CSS <length>: a signed fraction followed by a unit
// chosen uniformly from Units(). A numerically zero length collapses to the
// bare text "0" with no unit, which is the only unitless form the grammar
// admits.
func Length(src *random.Source) Content[float64] {
	sign, _ := random.Choice(src, signs)
	body := sign + fraction(src)
	v := parseLeadingFloat(body)
	if v == 0 {
		return Content[float64]{Value: 0, Text: "0"}
	}
	unit, _ := random.Choice(src, units)
	return Content[float64]{Value: v, Text: body + unit}
}

// OpacityValue generates an <opacity-value> in one of four shapes, chosen
// uniformly: the literal "1"; the literal "0"; a scientific-notation string
// like "3.141e-5" with exponent in [-10, -1]; or a dot-fraction like ".271"
// prefixed with either a space or a zero. Value is the float parse of the
// trimmed text clamped to [0, 1].
func OpacityValue(src *random.Source) Content[float64] {
	var text string
	switch src.IntBetween(0, 3) {
	case 0:
		text = "1"
	case 1:
		text = "0"
	case 2:
		text = fmt.Sprintf("%d.%de%d",
			src.IntBetween(0, 9), src.IntBetween(0, 999), src.IntBetween(-10, -1))
	default:
		text = random.Coin(src, " ", "0", 0.5) +
			fmt.Sprintf(".%d", src.IntBetween(0, 999))
	}
	v := parseLeadingFloat(strings.TrimSpace(text))
	return Content[float64]{Value: clamp01(v), Text: text}
}

// Color generates a CSS <color> in one of five syntaxes. The syntax is
// picked by a cascade of independent threshold draws (1/5, then 1/4, then
// 1/3, then 1/2, falling through to a named color), so the branch
// probabilities are history-dependent rather than the face-value fractions:
// 6-digit hex lands at 20%, 3-digit hex at exactly 20% of the remaining
// mass, and so on. The cascade shape is part of the output contract for
// downstream consumers and must not be flattened into one uniform draw.
func Color(src *random.Source) Content[RGB] {
	switch {
	case src.Float() < 1.0/5:
		c := randRGB(src)
		return Content[RGB]{
			Value: c,
			Text:  fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		}

	case src.Float() < 1.0/4:
		// Each hex digit is the high nibble of a sampled byte; the decoded
		// channel duplicates the nibble, matching CSS #RGB expansion.
		r := uint8(src.IntBetween(0, 255)) >> 4
		g := uint8(src.IntBetween(0, 255)) >> 4
		b := uint8(src.IntBetween(0, 255)) >> 4
		return Content[RGB]{
			Value: RGB{R: r * 17, G: g * 17, B: b * 17},
			Text:  fmt.Sprintf("#%x%x%x", r, g, b),
		}

	case src.Float() < 1.0/3:
		c := randRGB(src)
		return Content[RGB]{
			Value: c,
			Text:  fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B),
		}

	case src.Float() < 1.0/2:
		// Channels are printed as floor(byte/2.55) percent; the decoded
		// value is re-derived from the printed percentages so that Text and
		// Value stay in exact agreement despite the lossy floor.
		pr := int(float64(src.IntBetween(0, 255)) / 2.55)
		pg := int(float64(src.IntBetween(0, 255)) / 2.55)
		pb := int(float64(src.IntBetween(0, 255)) / 2.55)
		return Content[RGB]{
			Value: RGB{R: percentByte(pr), G: percentByte(pg), B: percentByte(pb)},
			Text:  fmt.Sprintf("rgb(%d%%,%d%%,%d%%)", pr, pg, pb),
		}

	default:
		nc, _ := random.Choice(src, namedColors)
		return Content[RGB]{Value: nc.rgb(), Text: nc.name}
	}
}

func randRGB(src *random.Source) RGB {
	return RGB{
		R: uint8(src.IntBetween(0, 255)),
		G: uint8(src.IntBetween(0, 255)),
		B: uint8(src.IntBetween(0, 255)),
	}
}

// percentByte maps a percentage in [0, 100] to the byte a CSS parser
// produces for it: round(p * 255 / 100).
func percentByte(p int) uint8 {
	return uint8((p*255 + 50) / 100)
}
