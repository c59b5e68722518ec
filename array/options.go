// SPDX-License-Identifier: MIT

// Package array: functional configuration for the few kernels that take
// tunables (randomised sequence ops, Describe, DetectOutliers).
//
// Design goals:
//   - Deterministic behavior: no global state, no time-based randomness.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Every flag changes behavior of at least one kernel and is covered by tests.
package array

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed is the seed used when callers pass seed==0 (or no seed).
	DefaultSeed int64 = 1

	// DefaultIQRMultiplier is Tukey's fence multiplier k.
	DefaultIQRMultiplier = 1.5

	// DefaultZScoreThreshold flags values more than 3 std away from the mean.
	DefaultZScoreThreshold = 3.0
)

const (
	panicIQRMultiplierInvalid = "array: WithIQRMultiplier: k must be finite and > 0"
	panicZScoreInvalid        = "array: WithZScoreThreshold: z must be finite and > 0"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public kernels accept ...Option.
type Options struct {
	seed          int64
	rng           *rand.Rand
	replace       bool
	skewKurtosis  bool
	iqrMultiplier float64
	zThreshold    float64
}

// WithSeed fixes the seed of the random stream used by Sample and Shuffle.
// seed==0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand supplies a caller-owned random source. It takes precedence over
// WithSeed. *rand.Rand is not goroutine-safe: do not share it across calls
// running concurrently.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// WithReplacement makes Sample draw with replacement.
func WithReplacement() Option {
	return func(o *Options) { o.replace = true }
}

// WithSkewKurtosis makes Describe also fill Skewness and Kurtosis.
func WithSkewKurtosis() Option {
	return func(o *Options) { o.skewKurtosis = true }
}

// WithIQRMultiplier sets Tukey's k for OutlierIQR. Panics unless k is finite and > 0.
func WithIQRMultiplier(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		panic(panicIQRMultiplierInvalid)
	}
	return func(o *Options) { o.iqrMultiplier = k }
}

// WithZScoreThreshold sets the cut-off for OutlierZScore. Panics unless z is finite and > 0.
func WithZScoreThreshold(z float64) Option {
	if math.IsNaN(z) || math.IsInf(z, 0) || z <= 0 {
		panic(panicZScoreInvalid)
	}
	return func(o *Options) { o.zThreshold = z }
}

func defaultOptions() Options {
	return Options{
		seed:          DefaultSeed,
		iqrMultiplier: DefaultIQRMultiplier,
		zThreshold:    DefaultZScoreThreshold,
	}
}

// gatherOptions applies user setters over the defaults and normalizes the seed.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.seed == 0 {
		o.seed = DefaultSeed
	}
	return o
}
