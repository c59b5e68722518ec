// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Right-aligned rolling aggregates (RollingSum, RollingMean, RollingStd,
//     RollingMin, RollingMax), prefix aggregates (Expanding*) and the
//     exponentially weighted mean (EWM).
//
// Contract:
//   - len(out) == len(buf); positions i < window-1 are NaN.
//   - window must satisfy 1 <= window <= len(buf), else ErrInvalidParameter.
//
// Algorithms:
//   - Sum/Mean: compensated (Neumaier) running sum of the finite values plus
//     counters of NaN, +Inf and -Inf in the window, so one NaN or Inf does not
//     poison the sum for the rest of the buffer.
//   - Std: sliding Welford state over the finite values of the window; a
//     window holding any non-finite value reports NaN.
//   - Sliding states are rebuilt from the window every `window` steps and
//     whenever a removal cancels most of the state (a large value leaving a
//     window of small ones). O(n) amortized, O(n·window) worst case.
//   - Min/Max: monotonic deque of indices; a window holding NaN reports NaN.

package array

import "math"

// Operation name constants for unified error wrapping.
const (
	opRollingSum  = "RollingSum"
	opRollingMean = "RollingMean"
	opRollingStd  = "RollingStd"
	opRollingMin  = "RollingMin"
	opRollingMax  = "RollingMax"
	opEWM         = "EWM"
)

// nanPrefix allocates the output buffer with positions [0, window-1) set to NaN.
func nanPrefix(n, window int) []float64 {
	out := make([]float64, n)
	for i := 0; i < window-1 && i < n; i++ {
		out[i] = math.NaN()
	}
	return out
}

// windowSum keeps a compensated running sum of the finite values inside the
// window and counts the non-finite ones separately.
type windowSum struct {
	sum, comp  float64
	nan        int
	pInf, nInf int
}

// add is one Neumaier step.
func (s *windowSum) add(x float64) {
	t := s.sum + x
	if math.Abs(s.sum) >= math.Abs(x) {
		s.comp += (s.sum - t) + x
	} else {
		s.comp += (x - t) + s.sum
	}
	s.sum = t
}

func (s *windowSum) update(v float64, delta int) {
	switch {
	case math.IsNaN(v):
		s.nan += delta
	case math.IsInf(v, 1):
		s.pInf += delta
	case math.IsInf(v, -1):
		s.nInf += delta
	default:
		s.add(float64(delta) * v)
	}
}

// reset recomputes the finite part from win; the counters are left alone.
func (s *windowSum) reset(win []float64) {
	s.sum, s.comp = 0, 0
	for _, v := range win {
		if isFinite(v) {
			s.add(v)
		}
	}
}

func (s *windowSum) finite() float64 { return s.sum + s.comp }

// value returns the IEEE-consistent sum of the current window.
func (s *windowSum) value() float64 {
	switch {
	case s.nan > 0, s.pInf > 0 && s.nInf > 0:
		return math.NaN()
	case s.pInf > 0:
		return math.Inf(1)
	case s.nInf > 0:
		return math.Inf(-1)
	}
	return s.finite()
}

// rollingSums drives windowSum across buf and emits value()/div.
func rollingSums(buf []float64, window int, div float64) []float64 {
	out := nanPrefix(len(buf), window)
	var ws windowSum
	for i, v := range buf {
		ws.update(v, 1)
		if i >= window {
			old := buf[i-window]
			ws.update(old, -1)
			if i%window == 0 || isFinite(old) && math.Abs(old) > math.Abs(ws.finite()) {
				ws.reset(buf[i-window+1 : i+1])
			}
		}
		if i >= window-1 {
			out[i] = ws.value() / div
		}
	}
	return out
}

// RollingSum returns the sum of each window of size `window`.
//
// Errors: ErrInvalidParameter unless 1 <= window <= len(buf).
// Complexity: O(n) amortized time, O(n) space.
func RollingSum(buf []float64, window int) ([]float64, error) {
	if err := ValidateWindow(len(buf), window); err != nil {
		return nil, paramErrorf(opRollingSum, "window", window)
	}
	return rollingSums(buf, window, 1), nil
}

// RollingMean returns the mean of each window of size `window`.
//
// Example: RollingMean([1,2,3,4,5], 3) = [NaN, NaN, 2, 3, 4].
func RollingMean(buf []float64, window int) ([]float64, error) {
	if err := ValidateWindow(len(buf), window); err != nil {
		return nil, paramErrorf(opRollingMean, "window", window)
	}
	return rollingSums(buf, window, float64(window)), nil
}

// stdRebuildRatio: a removal leaving m2 below this fraction of the term it
// subtracted has lost most of its significant digits.
const stdRebuildRatio = 1e-6

// welford is a removable running mean/M2 accumulator.
type welford struct {
	k    int
	mean float64
	m2   float64
}

func (w *welford) add(x float64) {
	w.k++
	d := x - w.mean
	w.mean += d / float64(w.k)
	w.m2 += d * (x - w.mean)
}

// remove takes x out of the state and reports whether the result cancelled
// badly enough to need a reset.
func (w *welford) remove(x float64) bool {
	if w.k <= 1 {
		*w = welford{}
		return false
	}
	old := w.mean
	w.mean = (float64(w.k)*old - x) / float64(w.k-1)
	term := (x - old) * (x - w.mean)
	w.m2 -= term
	w.k--
	return w.m2 < math.Abs(term)*stdRebuildRatio
}

// reset rebuilds the state from the finite values of win in two passes.
func (w *welford) reset(win []float64) {
	var (
		ws windowSum
		k  int
	)
	for _, v := range win {
		if isFinite(v) {
			ws.add(v)
			k++
		}
	}
	*w = welford{k: k}
	if k == 0 {
		return
	}
	w.mean = ws.finite() / float64(k)

	var ss, comp, d float64
	for _, v := range win {
		if isFinite(v) {
			d = v - w.mean
			ss += d * d
			comp += d
		}
	}
	w.m2 = max(0, ss-comp*comp/float64(k))
}

// sampleStd returns sqrt(M2/(k-1)), NaN for k < 2.
func (w *welford) sampleStd() float64 {
	if w.k < 2 {
		return math.NaN()
	}
	return math.Sqrt(w.m2 / float64(w.k-1))
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// RollingStd returns the sample (n-1) standard deviation of each window.
//
// Behavior highlights:
//   - window == 1 yields NaN everywhere (no degrees of freedom).
//   - A window holding NaN or ±Inf yields NaN; the Welford state only ever
//     holds finite values, so the first clean window after it is exact again.
//   - Mixed magnitudes are safe: RollingStd([1e9, 1, 2, 3], 2) ends in
//     0.7071 after 1e9 leaves the window.
//
// Errors: ErrInvalidParameter unless 1 <= window <= len(buf).
// Complexity: O(n) amortized time, O(n) space.
func RollingStd(buf []float64, window int) ([]float64, error) {
	if err := ValidateWindow(len(buf), window); err != nil {
		return nil, paramErrorf(opRollingStd, "window", window)
	}
	out := nanPrefix(len(buf), window)
	var (
		acc       welford
		nonFinite int
	)
	for i, v := range buf {
		if isFinite(v) {
			acc.add(v)
		} else {
			nonFinite++
		}
		if i >= window {
			old := buf[i-window]
			lost := false
			if isFinite(old) {
				lost = acc.remove(old)
			} else {
				nonFinite--
			}
			if lost || i%window == 0 {
				acc.reset(buf[i-window+1 : i+1])
			}
		}
		if i < window-1 {
			continue
		}
		if nonFinite > 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = acc.sampleStd()
	}
	return out, nil
}

// rollingExtreme returns the per-window extreme using a monotonic deque of
// indices. dominates(a, b) reports whether a makes b unreachable.
func rollingExtreme(buf []float64, window int, dominates func(a, b float64) bool) []float64 {
	out := nanPrefix(len(buf), window)
	dq := make([]int, 0, window)
	nan := 0
	for i, v := range buf {
		if i >= window && math.IsNaN(buf[i-window]) {
			nan--
		}
		if math.IsNaN(v) {
			nan++
		} else {
			for len(dq) > 0 && dominates(v, buf[dq[len(dq)-1]]) {
				dq = dq[:len(dq)-1]
			}
			dq = append(dq, i)
		}
		for len(dq) > 0 && dq[0] <= i-window {
			dq = dq[1:]
		}
		if i < window-1 {
			continue
		}
		if nan > 0 || len(dq) == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = buf[dq[0]]
	}
	return out
}

// RollingMin returns the minimum of each window; NaN if the window holds NaN.
//
// Errors: ErrInvalidParameter unless 1 <= window <= len(buf).
// Complexity: O(n) amortized time, O(window) extra space.
func RollingMin(buf []float64, window int) ([]float64, error) {
	if err := ValidateWindow(len(buf), window); err != nil {
		return nil, paramErrorf(opRollingMin, "window", window)
	}
	return rollingExtreme(buf, window, func(a, b float64) bool { return a <= b }), nil
}

// RollingMax returns the maximum of each window; NaN if the window holds NaN.
func RollingMax(buf []float64, window int) ([]float64, error) {
	if err := ValidateWindow(len(buf), window); err != nil {
		return nil, paramErrorf(opRollingMax, "window", window)
	}
	return rollingExtreme(buf, window, func(a, b float64) bool { return a >= b }), nil
}

// ExpandingSum returns out[i] = Σ buf[0..i]. Same as CumSum.
func ExpandingSum(buf []float64) []float64 { return CumSum(buf) }

// ExpandingMean returns out[i] = mean(buf[0..i]), defined for every i.
func ExpandingMean(buf []float64) []float64 {
	out := CumSum(buf)
	for i := range out {
		out[i] /= float64(i + 1)
	}
	return out
}

// expandingExtreme folds pick over the prefix; NaN sticks once seen,
// matching Min and Max.
func expandingExtreme(buf []float64, pick func(a, b float64) float64) []float64 {
	out := make([]float64, len(buf))
	for i, v := range buf {
		if i == 0 {
			out[i] = v
			continue
		}
		out[i] = pick(out[i-1], v)
	}
	return out
}

// ExpandingMin returns out[i] = Min(buf[0..i]).
func ExpandingMin(buf []float64) []float64 { return expandingExtreme(buf, math.Min) }

// ExpandingMax returns out[i] = Max(buf[0..i]).
func ExpandingMax(buf []float64) []float64 { return expandingExtreme(buf, math.Max) }

// ExpandingStd returns the sample std of every prefix; out[0] is NaN.
func ExpandingStd(buf []float64) []float64 {
	out := make([]float64, len(buf))
	var acc welford
	for i, v := range buf {
		acc.add(v)
		out[i] = acc.sampleStd()
	}
	return out
}

// EWM returns the exponentially weighted mean with alpha = 2/(span+1):
//
//	y[0] = x[0]
//	y[i] = alpha*x[i] + (1-alpha)*y[i-1]
//
// Errors: ErrInvalidParameter for span < 1 or NaN.
// Complexity: O(n) time and space.
func EWM(buf []float64, span float64) ([]float64, error) {
	if math.IsNaN(span) || span < 1 {
		return nil, paramErrorf(opEWM, "span", span)
	}
	alpha := 2 / (span + 1)
	out := make([]float64, len(buf))
	for i, v := range buf {
		if i == 0 {
			out[i] = v
			continue
		}
		out[i] = alpha*v + (1-alpha)*out[i-1]
	}
	return out, nil
}
