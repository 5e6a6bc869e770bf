package random

import (
	mathrand "math/rand/v2"
)

// Source wraps a math/rand/v2 PRNG. A nil *Source is valid and draws from
// the process-global source, which is safe for concurrent use; a seeded
// Source is not synchronized and belongs to one goroutine at a time.
type Source struct {
	rng *mathrand.Rand
}

// NewSource returns a deterministic Source seeded with the given value.
// Equal seeds produce equal draw streams.
func NewSource(seed uint64) *Source {
	return &Source{rng: mathrand.New(mathrand.NewPCG(seed, 0))}
}

// NewSourceFrom wraps an existing PRNG. A nil rng behaves like a nil Source.
func NewSourceFrom(rng *mathrand.Rand) *Source {
	return &Source{rng: rng}
}

// float64 returns the next raw draw in [0, 1), falling back to the global
// math/rand/v2 source when the Source is nil.
func (s *Source) float64() float64 {
	if s == nil || s.rng == nil {
		return mathrand.Float64()
	}
	return s.rng.Float64()
}

// intN returns a draw in [0, n), or 0 when n <= 0.
func (s *Source) intN(n int) int {
	if n <= 0 {
		return 0
	}
	if s == nil || s.rng == nil {
		return mathrand.IntN(n)
	}
	return s.rng.IntN(n)
}

// Float returns a uniform draw in [0, 1).
func (s *Source) Float() float64 {
	return s.float64()
}

// FloatBetween returns a uniform draw from the interval between a and b.
// Argument order does not matter; the result is always >= min(a, b) and
// < max(a, b) (equal to both when a == b).
func (s *Source) FloatBetween(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	return a + s.float64()*(b-a)
}

// Floats returns n independent FloatBetween draws, or nil when n <= 0.
func (s *Source) Floats(a, b float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.FloatBetween(a, b)
	}
	return out
}

// IntBetween returns a uniform integer in [a, b], both bounds inclusive.
// Argument order does not matter. The draw is taken from [min, max+1) and
// floored, which makes the upper bound reachable.
func (s *Source) IntBetween(a, b int64) int64 {
	if a > b {
		a, b = b, a
	}
	v := a + int64(s.float64()*float64(b-a+1))
	if v > b {
		v = b
	}
	return v
}

// Ints returns n independent IntBetween draws, or nil when n <= 0.
func (s *Source) Ints(a, b int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = s.IntBetween(a, b)
	}
	return out
}

// SampleChars returns n bytes sampled uniformly with replacement from
// alphabet. An empty alphabet or n <= 0 yields the empty string.
func (s *Source) SampleChars(alphabet string, n int) string {
	if len(alphabet) == 0 || n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[s.intN(len(alphabet))]
	}
	return string(b)
}

// Choice returns one element sampled uniformly from items. The second
// return is false when items is empty or nil, and the first is then the
// zero value of T.
func Choice[T any](s *Source, items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[s.intN(len(items))], true
}

// Choices returns n elements sampled uniformly with replacement from items.
// Returns nil when items is empty or n <= 0.
func Choices[T any](s *Source, items []T, n int) []T {
	if len(items) == 0 || n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = items[s.intN(len(items))]
	}
	return out
}

// Shuffle permutes items in place with a Fisher-Yates walk and returns the
// same slice for chaining.
func Shuffle[T any](s *Source, items []T) []T {
	for i := len(items) - 1; i > 0; i-- {
		j := s.intN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// Coin returns heads with probability bias, tails otherwise. A bias of 0.5
// is a fair flip; bias <= 0 always returns tails, bias >= 1 always heads.
func Coin[T any](s *Source, heads, tails T, bias float64) T {
	if s.float64() < bias {
		return heads
	}
	return tails
}

// Coins returns n independent Coin flips, or nil when n <= 0.
func Coins[T any](s *Source, heads, tails T, bias float64, n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = Coin(s, heads, tails, bias)
	}
	return out
}
