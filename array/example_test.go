// SPDX-License-Identifier: MIT

package array_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/quickly/array"
)

// ExampleMean shows the basic sample statistics.
func ExampleMean() {
	x := []float64{1, 2, 3, 4, 5}
	m, _ := array.Mean(x)
	v, _ := array.Variance(x)
	s, _ := array.Std(x)
	fmt.Printf("mean=%.1f var=%.1f std=%.4f\n", m, v, s)
	// Output:
	// mean=3.0 var=2.5 std=1.5811
}

// ExampleDivideScalar shows the asymmetric zero-division policy.
func ExampleDivideScalar() {
	_, err := array.DivideScalar([]float64{1, 2, 3}, 0)
	fmt.Println(errors.Is(err, array.ErrDomain))
	fmt.Println(array.Divide([]float64{1}, []float64{0}))
	// Output:
	// true
	// [+Inf]
}

// ExampleRollingMean shows the NaN warm-up of a right-aligned window.
func ExampleRollingMean() {
	out, _ := array.RollingMean([]float64{1, 2, 3, 4, 5}, 3)
	fmt.Println(out)
	// Output:
	// [NaN NaN 2 3 4]
}

// ExampleSort shows that NaN goes last in both directions.
func ExampleSort() {
	x := []float64{2, math.NaN(), 3, 1}
	fmt.Println(array.Sort(x), array.SortDesc(x), array.Argsort(x))
	// Output:
	// [1 2 3 NaN] [3 2 1 NaN] [3 0 2 1]
}

// ExampleInterpolateLinear shows that edges are never extrapolated.
func ExampleInterpolateLinear() {
	nan := math.NaN()
	fmt.Println(array.InterpolateLinear([]float64{nan, 1, nan, 3, nan}))
	// Output:
	// [NaN 1 2 3 NaN]
}

// ExampleDiff shows the same-length convention.
func ExampleDiff() {
	fmt.Println(array.Diff([]float64{1, 4, 9}))
	fmt.Println(array.PctChange([]float64{100, 110}))
	// Output:
	// [NaN 3 5]
	// [NaN 0.1]
}
