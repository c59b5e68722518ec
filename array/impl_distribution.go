// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Random buffer factories: Uniform, Normal, Exponential.
//
// Determinism:
//   - Draws come from gonum's distuv samplers fed by the same generator as
//     Sample and Shuffle (WithRand, else a stream seeded by WithSeed), so a
//     fixed seed reproduces the buffer exactly.

package array

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Operation name constants for unified error wrapping.
const (
	opUniform     = "Uniform"
	opNormal      = "Normal"
	opExponential = "Exponential"
)

// distSource adapts *rand.Rand to the source interface distuv samplers take.
type distSource struct{ r *rand.Rand }

func (s distSource) Uint64() uint64   { return s.r.Uint64() }
func (s distSource) Seed(seed uint64) { s.r.Seed(int64(seed)) }

// draw fills n values from sampler.
func draw(n int, sampler interface{ Rand() float64 }) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = sampler.Rand()
	}
	return out
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// Uniform returns n values drawn uniformly from [lo, hi).
//
// Errors: ErrInvalidParameter for n < 0, non-finite bounds or lo > hi.
func Uniform(n int, lo, hi float64, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, paramErrorf(opUniform, "n", n)
	}
	if !finite(lo, hi) || lo > hi {
		return nil, paramErrorf(opUniform, "hi", hi)
	}
	src := distSource{rngFor(gatherOptions(opts...))}
	return draw(n, distuv.Uniform{Min: lo, Max: hi, Src: src}), nil
}

// Normal returns n values drawn from N(mean, std²). std == 0 gives n copies
// of mean.
//
// Errors: ErrInvalidParameter for n < 0, non-finite mean/std or std < 0.
func Normal(n int, mean, std float64, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, paramErrorf(opNormal, "n", n)
	}
	if !finite(mean, std) || std < 0 {
		return nil, paramErrorf(opNormal, "std", std)
	}
	src := distSource{rngFor(gatherOptions(opts...))}
	return draw(n, distuv.Normal{Mu: mean, Sigma: std, Src: src}), nil
}

// Exponential returns n values drawn from Exp(rate); the mean is 1/rate.
//
// Errors: ErrInvalidParameter for n < 0 or rate not finite and > 0.
func Exponential(n int, rate float64, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, paramErrorf(opExponential, "n", n)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return nil, paramErrorf(opExponential, "rate", rate)
	}
	src := distSource{rngFor(gatherOptions(opts...))}
	return draw(n, distuv.Exponential{Rate: rate, Src: src}), nil
}
