// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Symmetric eigen decomposition by classical Jacobi rotations.
//
// Determinism:
//   - Pivot search scans the strict upper triangle in i→j order; the first
//     maximum wins.
//   - Eigenpairs are returned with ascending values (stable on ties) and each
//     eigenvector's first nonzero component made positive.

package matrix

import (
	"math"

	"github.com/katalvlaran/quickly/array"
)

// Eigen decomposes a symmetric matrix as A = Q·diag(λ)·Qᵀ.
//
// Implementation:
//   - Stage 1: validate square + symmetric within tol·max(1, ‖A‖_F), where tol
//     comes from WithEigenTolerance.
//   - Stage 2: repeatedly annihilate the largest off-diagonal A[p,q] with a
//     rotation (θ = (aqq−app)/(2apq), t = sign(θ)/(|θ|+√(θ²+1))), accumulating Q.
//   - Stage 3: stop once max|A[p,q]| ≤ tol·max(1, ‖A‖_F); sort eigenpairs.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry.
//   - ErrEigenFailed when entries are not finite or the rotation budget
//     (WithMaxIterations) is exhausted.
//
// Complexity:
//   - O(n) per rotation update plus O(n²) pivot search; typically O(n²) rotations.
func Eigen(m Matrix, opts ...Option) (*EigenDecomposition, error) {
	o := gatherOptions(opts...)
	a, err := squareDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	n := a.r
	var frob float64
	for _, v := range a.data {
		if isNonFinite(v) {
			return nil, matrixErrorf(opEigen, ErrEigenFailed)
		}
		frob += v * v
	}
	tol := o.eigenTol * max(1, math.Sqrt(frob))
	if err = ValidateSymmetric(a, tol); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	A := a.clone()
	Q, _ := NewIdentity(n) // n >= 1 after squareDense
	maxIter := o.eigenBudget(n)

	var (
		iter, i, j, p, q int
		base             int
		maxOff, off      float64
		app, aqq, apq    float64
		aip, aiq         float64
		qip, qiq         float64
		theta, t, c, s   float64
	)
	for iter = 0; ; iter++ {
		// J.1: find pivot (p,q) maximizing |A[p,q]|.
		maxOff = 0
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A.data[base+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}

		// J.2: converged?
		if maxOff <= tol {
			break
		}
		if iter >= maxIter {
			return nil, matrixErrorf(opEigen, ErrEigenFailed)
		}

		// J.3: rotation parameters.
		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: apply the rotation to A, keeping it symmetric.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			A.data[i*n+p] = c*aip - s*aiq
			A.data[p*n+i] = A.data[i*n+p]
			A.data[i*n+q] = s*aip + c*aiq
			A.data[q*n+i] = A.data[i*n+q]
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		// J.5: accumulate into Q.
		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	diag := make([]float64, n)
	for i = 0; i < n; i++ {
		diag[i] = A.data[i*n+i]
	}

	return sortedEigen(diag, Q), nil
}

// sortedEigen orders eigenpairs by ascending value and fixes the sign of
// every eigenvector (first nonzero component positive).
func sortedEigen(values []float64, Q *Dense) *EigenDecomposition {
	n := len(values)
	order := array.Argsort(values)
	out := &EigenDecomposition{
		Values:  make([]float64, n),
		Vectors: newDenseZeroOK(n, n),
	}

	var i, dst int
	for dst = 0; dst < n; dst++ {
		src := order[dst]
		out.Values[dst] = values[src]

		flip := 1.0
		for i = 0; i < n; i++ {
			if v := Q.data[i*n+src]; v != 0 {
				if v < 0 {
					flip = -1
				}
				break
			}
		}
		for i = 0; i < n; i++ {
			out.Vectors.data[i*n+dst] = flip * Q.data[i*n+src]
		}
	}

	return out
}
