// Package cssvalue generates random, syntactically valid CSS value
// fragments paired with the value each fragment decodes to. It is intended
// as a seed-data source for fuzz or property tests of CSS parsers: every
// Content carries both the generated text and the value a conforming parser
// must produce from it.
//
// Five grammars are covered:
//   - Integer: signed decimal integers, e.g. "-4821"
//   - Number: signed decimal fractions, e.g. "+17.3"
//   - Length: a number with a CSS unit, e.g. "42.7px", or bare "0"
//   - OpacityValue: an <opacity-value> in one of four textual shapes
//   - Color: hex, rgb()/rgb(%) functional, or named color syntax
//
// Generators take a *random.Source; pass nil for non-deterministic output
// or random.NewSource(seed) for a reproducible stream.
package cssvalue
