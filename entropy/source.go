// SPDX-License-Identifier: MIT

package entropy

// Source is the entropy contract consumed by builders.
type Source interface {
	// Uint32 returns the next 32 raw bits.
	Uint32() uint32
	// Float64 returns a uniform value in [0, 1) with 53 bits of precision.
	Float64() float64
}

// Uniform draws n consecutive Float64 values.
func Uniform(src Source, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = src.Float64()
	}

	return out
}

// Interval returns a uniform integer in [0, max] using masked rejection:
// the smallest all-ones mask covering max is applied to raw 32-bit draws
// until the result is <= max. Interval(src, 0) draws nothing.
func Interval(src Source, max uint32) uint32 {
	if max == 0 {
		return 0
	}
	mask := max
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	for {
		if v := src.Uint32() & mask; v <= max {
			return v
		}
	}
}

// Permutation returns a random permutation of 0..n-1.
// Stage 1: identity. Stage 2: for i = n-1 down to 1 swap p[i] with p[Interval(i)].
// Complexity: O(n) swaps, expected O(n) draws.
func Permutation(src Source, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := int(Interval(src, uint32(i)))
		p[i], p[j] = p[j], p[i]
	}

	return p
}
