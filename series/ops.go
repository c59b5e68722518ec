// SPDX-License-Identifier: MIT

package series

import "github.com/katalvlaran/quickly/array"

// ---------- Elementwise (truncate to the shorter operand) ----------

// Add returns s + other elementwise.
func (s *Series) Add(other []float64) *Series {
	return s.then(func(b []float64) []float64 { return array.Add(b, other) })
}

// Sub returns s − other elementwise.
func (s *Series) Sub(other []float64) *Series {
	return s.then(func(b []float64) []float64 { return array.Subtract(b, other) })
}

// Mul returns s · other elementwise.
func (s *Series) Mul(other []float64) *Series {
	return s.then(func(b []float64) []float64 { return array.Multiply(b, other) })
}

// Div returns s / other elementwise (IEEE-754 for zero divisors).
func (s *Series) Div(other []float64) *Series {
	return s.then(func(b []float64) []float64 { return array.Divide(b, other) })
}

// AddScalar returns s + k.
func (s *Series) AddScalar(k float64) *Series {
	return s.then(func(b []float64) []float64 { return array.AddScalar(b, k) })
}

// SubScalar returns s − k.
func (s *Series) SubScalar(k float64) *Series {
	return s.then(func(b []float64) []float64 { return array.SubtractScalar(b, k) })
}

// MulScalar returns s · k.
func (s *Series) MulScalar(k float64) *Series {
	return s.then(func(b []float64) []float64 { return array.MultiplyScalar(b, k) })
}

// DivScalar returns s / k; k == 0 fails the chain with array.ErrDomain.
func (s *Series) DivScalar(k float64) *Series {
	return s.thenErr(func(b []float64) ([]float64, error) { return array.DivideScalar(b, k) })
}

// ---------- Transforms ----------

// Abs takes absolute values.
func (s *Series) Abs() *Series { return s.then(array.Abs) }

// Sqrt takes square roots; negatives become NaN.
func (s *Series) Sqrt() *Series { return s.then(array.Sqrt) }

// Log takes natural logarithms.
func (s *Series) Log() *Series { return s.then(array.Log) }

// Exp raises e to every value.
func (s *Series) Exp() *Series { return s.then(array.Exp) }

// Floor rounds down.
func (s *Series) Floor() *Series { return s.then(array.Floor) }

// Ceil rounds up.
func (s *Series) Ceil() *Series { return s.then(array.Ceil) }

// Round rounds half away from zero.
func (s *Series) Round() *Series { return s.then(array.Round) }

// Power raises every value to exp.
func (s *Series) Power(exp float64) *Series {
	return s.then(func(b []float64) []float64 { return array.Power(b, exp) })
}

// Clip bounds every value to [lo, hi]; NaN stays NaN.
func (s *Series) Clip(lo, hi float64) *Series {
	return s.then(func(b []float64) []float64 { return array.Clip(b, lo, hi) })
}

// Map applies fn to every value.
func (s *Series) Map(fn func(float64) float64) *Series {
	return s.then(func(b []float64) []float64 { return array.Apply(b, fn) })
}

// ---------- Filter / order / sequence ----------

// Filter keeps the values for which keep reports true.
func (s *Series) Filter(keep func(float64) bool) *Series {
	return s.then(func(b []float64) []float64 { return array.FilterFunc(b, keep) })
}

// FilterGt keeps values strictly greater than t.
func (s *Series) FilterGt(t float64) *Series {
	return s.then(func(b []float64) []float64 { return array.FilterGt(b, t) })
}

// FilterLt keeps values strictly less than t.
func (s *Series) FilterLt(t float64) *Series {
	return s.then(func(b []float64) []float64 { return array.FilterLt(b, t) })
}

// FilterBetween keeps values in [lo, hi].
func (s *Series) FilterBetween(lo, hi float64) *Series {
	return s.then(func(b []float64) []float64 { return array.FilterBetween(b, lo, hi) })
}

// Sort orders ascending, NaN last.
func (s *Series) Sort() *Series { return s.then(array.Sort) }

// SortDesc orders descending, NaN last.
func (s *Series) SortDesc() *Series { return s.then(array.SortDesc) }

// Unique keeps the first occurrence of each value.
func (s *Series) Unique() *Series { return s.then(array.Unique) }

// Reverse flips the order.
func (s *Series) Reverse() *Series { return s.then(array.Reverse) }

// Head keeps the first n values.
func (s *Series) Head(n int) *Series {
	return s.then(func(b []float64) []float64 { return array.Head(b, n) })
}

// Tail keeps the last n values.
func (s *Series) Tail(n int) *Series {
	return s.then(func(b []float64) []float64 { return array.Tail(b, n) })
}

// Slice keeps [start, end); bad bounds fail the chain with array.ErrRange.
func (s *Series) Slice(start, end int) *Series {
	return s.thenErr(func(b []float64) ([]float64, error) { return array.Slice(b, start, end) })
}

// Concat appends other.
func (s *Series) Concat(other []float64) *Series {
	return s.then(func(b []float64) []float64 { return array.Concat(b, other) })
}

// Repeat tiles the values times times.
func (s *Series) Repeat(times int) *Series {
	return s.thenErr(func(b []float64) ([]float64, error) { return array.Repeat(b, times) })
}

// Shuffle permutes the values (deterministic for a given seed option).
func (s *Series) Shuffle(opts ...array.Option) *Series {
	return s.then(func(b []float64) []float64 { return array.Shuffle(b, opts...) })
}

// Sample draws n values (see array.Sample for options).
func (s *Series) Sample(n int, opts ...array.Option) *Series {
	return s.thenErr(func(b []float64) ([]float64, error) { return array.Sample(b, n, opts...) })
}

// ---------- Cumulative / windowed ----------

// CumSum returns running totals.
func (s *Series) CumSum() *Series { return s.then(array.CumSum) }

// CumProd returns running products.
func (s *Series) CumProd() *Series { return s.then(array.CumProd) }

// CumMax returns the running maximum.
func (s *Series) CumMax() *Series { return s.then(array.CumMax) }

// CumMin returns the running minimum.
func (s *Series) CumMin() *Series { return s.then(array.CumMin) }

// Diff returns first differences with a leading NaN.
func (s *Series) Diff() *Series { return s.then(array.Diff) }

// PctChange returns relative changes with a leading NaN.
func (s *Series) PctChange() *Series { return s.then(array.PctChange) }

// ExpandingSum sums every prefix.
func (s *Series) ExpandingSum() *Series { return s.then(array.ExpandingSum) }

// ExpandingMean averages every prefix.
func (s *Series) ExpandingMean() *Series { return s.then(array.ExpandingMean) }

// ExpandingStd is the sample std of every prefix.
func (s *Series) ExpandingStd() *Series { return s.then(array.ExpandingStd) }

// Rolling returns a window builder over s.
func (s *Series) Rolling(window int) Rolling { return Rolling{s: s, window: window} }

// Rolling selects the aggregate of a right-aligned window; see array.RollingMean.
type Rolling struct {
	s      *Series
	window int
}

func (r Rolling) apply(kernel func([]float64, int) ([]float64, error)) *Series {
	return r.s.thenErr(func(b []float64) ([]float64, error) { return kernel(b, r.window) })
}

// Sum is the rolling sum.
func (r Rolling) Sum() *Series { return r.apply(array.RollingSum) }

// Mean is the rolling mean.
func (r Rolling) Mean() *Series { return r.apply(array.RollingMean) }

// Std is the rolling sample standard deviation.
func (r Rolling) Std() *Series { return r.apply(array.RollingStd) }

// Min is the rolling minimum.
func (r Rolling) Min() *Series { return r.apply(array.RollingMin) }

// Max is the rolling maximum.
func (r Rolling) Max() *Series { return r.apply(array.RollingMax) }

// EWM returns the exponentially weighted mean with alpha = 2/(span+1).
func (s *Series) EWM(span float64) *Series {
	return s.thenErr(func(b []float64) ([]float64, error) { return array.EWM(b, span) })
}

// ---------- Missing values ----------

// FillNA replaces NaN with v.
func (s *Series) FillNA(v float64) *Series {
	return s.then(func(b []float64) []float64 { return array.FillNA(b, v) })
}

// DropNA removes NaN values.
func (s *Series) DropNA() *Series { return s.then(array.DropNA) }

// ForwardFill carries the last valid value forward.
func (s *Series) ForwardFill() *Series { return s.then(array.ForwardFill) }

// BackwardFill carries the next valid value backward.
func (s *Series) BackwardFill() *Series { return s.then(array.BackwardFill) }

// InterpolateLinear fills interior NaN runs linearly.
func (s *Series) InterpolateLinear() *Series { return s.then(array.InterpolateLinear) }

// InterpolateCubic fills interior NaN runs with a natural cubic spline.
func (s *Series) InterpolateCubic() *Series { return s.then(array.InterpolateCubic) }
