// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Randomised sequence ops: Sample and Shuffle.
//
// Determinism:
//   - No time-based sources. Every call draws from WithRand's generator, or
//     from a fresh stream seeded with WithSeed (seed==0 ⇒ DefaultSeed), so the
//     same options always produce the same output on every platform.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A generator passed with WithRand
//     must not be shared by concurrent calls; the seeded default is per call.

package array

import "math/rand"

// Operation name constants for unified error wrapping.
const (
	opSample = "Sample"
)

// rngFor returns the caller's generator or a new deterministic one.
func rngFor(o Options) *rand.Rand {
	if o.rng != nil {
		return o.rng
	}
	return rand.New(rand.NewSource(o.seed))
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// Complexity: O(n).
func shuffleInPlace(a []float64, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Shuffle returns a uniformly permuted copy of buf.
// The multiset of values is preserved; buf itself is untouched.
func Shuffle(buf []float64, opts ...Option) []float64 {
	out := make([]float64, len(buf))
	copy(out, buf)
	shuffleInPlace(out, rngFor(gatherOptions(opts...)))
	return out
}

// Sample draws n elements from buf.
//
// Behavior highlights:
//   - Default: without replacement (distinct positions), n <= len(buf).
//   - WithReplacement(): positions drawn independently, any n >= 0.
//   - The order of the result is the draw order.
//
// Errors:
//   - ErrInvalidParameter for n < 0, or n > len(buf) without replacement.
//   - ErrEmptyInput with replacement when buf is empty and n > 0.
//
// Complexity: O(n) time with replacement; O(len(buf)) without.
func Sample(buf []float64, n int, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if n < 0 {
		return nil, paramErrorf(opSample, "n", n)
	}
	rng := rngFor(o)

	if o.replace {
		if n > 0 && len(buf) == 0 {
			return nil, arrayErrorf(opSample, ErrEmptyInput)
		}
		out := make([]float64, n)
		for i := range out {
			out[i] = buf[rng.Intn(len(buf))]
		}
		return out, nil
	}

	if n > len(buf) {
		return nil, paramErrorf(opSample, "n", n)
	}
	// Partial Fisher–Yates: the first n slots end up a uniform n-subset in
	// uniform order.
	pool := make([]float64, len(buf))
	copy(pool, buf)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n], nil
}
