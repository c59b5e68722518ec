// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quickly/array"
)

// previewEdge is how many leading/trailing values String shows for long series.
const previewEdge = 5

// Series is an immutable numeric sequence with a sticky error.
// Every chainable method returns a new *Series and never touches the receiver.
// Once a step fails, later steps are skipped and the first error is reported
// by Err and by every terminal method.
type Series struct {
	data []float64 // owned; never exposed without copying
	err  error
}

// New returns a Series over a copy of data.
func New(data []float64) *Series {
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Series{data: cp}
}

// Zeros returns a Series of n zeros.
func Zeros(n int) *Series { return &Series{data: array.Zeros(n)} }

// Ones returns a Series of n ones.
func Ones(n int) *Series { return &Series{data: array.Ones(n)} }

// Arange returns start, start+step, … up to (excluding) stop.
func Arange(start, stop, step float64) *Series {
	return wrap(array.Arange(start, stop, step))
}

// Linspace returns num evenly spaced values over [start, stop].
func Linspace(start, stop float64, num int) *Series {
	return wrap(array.Linspace(start, stop, num))
}

// Uniform returns n values drawn uniformly from [lo, hi); see array.Uniform.
func Uniform(n int, lo, hi float64, opts ...array.Option) *Series {
	return wrap(array.Uniform(n, lo, hi, opts...))
}

// Normal returns n values drawn from N(mean, std²).
func Normal(n int, mean, std float64, opts ...array.Option) *Series {
	return wrap(array.Normal(n, mean, std, opts...))
}

// Exponential returns n values drawn from Exp(rate).
func Exponential(n int, rate float64, opts ...array.Option) *Series {
	return wrap(array.Exponential(n, rate, opts...))
}

// wrap adopts a freshly allocated kernel result without copying.
func wrap(buf []float64, err error) *Series {
	if err != nil {
		return &Series{err: err}
	}

	return &Series{data: buf}
}

// Err returns the first error met along the chain, or nil.
func (s *Series) Err() error { return s.err }

// Len returns the number of values (0 after an error).
func (s *Series) Len() int { return len(s.data) }

// Values returns a copy of the values, or the sticky error.
func (s *Series) Values() ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, len(s.data))
	copy(out, s.data)

	return out, nil
}

// String renders "Series(n) [a, b, …]", eliding the middle of long series.
func (s *Series) String() string {
	if s.err != nil {
		return fmt.Sprintf("Series(error: %v)", s.err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Series(%d) [", len(s.data))
	n := len(s.data)
	for i, v := range s.data {
		if n > 2*previewEdge && i == previewEdge {
			b.WriteString("..., ")
		}
		if n > 2*previewEdge && i >= previewEdge && i < n-previewEdge {
			continue
		}
		fmt.Fprintf(&b, "%g", v)
		if i+1 < n {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")

	return b.String()
}

// then applies a non-failing kernel unless the chain already failed.
func (s *Series) then(kernel func([]float64) []float64) *Series {
	if s.err != nil {
		return s
	}

	return &Series{data: kernel(s.data)}
}

// thenErr applies a failing kernel unless the chain already failed.
func (s *Series) thenErr(kernel func([]float64) ([]float64, error)) *Series {
	if s.err != nil {
		return s
	}

	return wrap(kernel(s.data))
}

// reduce evaluates a scalar kernel, honoring the sticky error.
func reduce[T any](s *Series, kernel func([]float64) (T, error)) (T, error) {
	if s.err != nil {
		var zero T
		return zero, s.err
	}

	return kernel(s.data)
}
