// Package random provides the seedable random primitives underneath the
// cssvalue generators: uniform floats and integers over arbitrary ranges,
// uniform choice from a slice, character sampling, Fisher-Yates shuffling,
// and biased coin flips.
//
// All operations accept a *Source. A nil Source (or one constructed from a
// nil PRNG) falls back to the process-global math/rand/v2 source, so casual
// callers can pass nil and get non-deterministic output, while tests inject
// NewSource(seed) for reproducible streams.
//
// Scalar and sequence forms are separate operations: IntBetween returns one
// value, Ints returns a slice of exactly n. Sequence forms return nil when
// n <= 0 or when the input slice is empty.
package random
