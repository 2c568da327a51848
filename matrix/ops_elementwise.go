// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and broadcast kernels over square complex matrices:
//     Fill, ScalarToMatrix, Copy, AddInPlace, ScaleInPlace, DivStepInPlace,
//     MaxAbsDiff and AllClose.
//
// Design:
//   - Targets are *Dense and are mutated in place; no kernel allocates.
//   - Read-only operands are Matrix; a *Dense operand unlocks the flat-slice
//     fast path, anything else goes through At with fixed i→j order.
//   - Kernels write straight into the buffer and do not consult the Dense
//     numeric policy (IEEE specials propagate).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n²-1 or i→j).
//   - O(n²) time, O(1) extra space.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matpow/cplx"
)

// Operation tags for element-wise kernels.
const (
	opFill       = "Fill"
	opScalar     = "ScalarToMatrix"
	opCopy       = "Copy"
	opAddInPlace = "AddInPlace"
	opScale      = "ScaleInPlace"
	opDivStep    = "DivStepInPlace"
	opMaxAbsDiff = "MaxAbsDiff"
	opAllClose   = "AllClose"
)

// Fill sets every entry of m to v.
// Errors: ErrNilMatrix. Complexity: O(n²).
func Fill(m *Dense, v complex128) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return nil
}

// ScalarToMatrix turns m into v·I: zero-fill, then v on the diagonal.
// Errors: ErrNilMatrix. Complexity: O(n²).
func ScalarToMatrix(v complex128, m *Dense) error {
	if err := Fill(m, cplx.Zero); err != nil {
		return matrixErrorf(opScalar, err)
	}
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+i] = v
	}

	return nil
}

// Copy performs a deep element copy dst ← src.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (sizes differ).
//
// Complexity: O(n²).
func Copy(dst *Dense, src Matrix) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opCopy, err)
	}
	if s, ok := src.(*Dense); ok {
		copy(dst.data, s.data)
		return nil
	}

	return readInto(opCopy, dst, src, func(_ complex128, v complex128) complex128 { return v })
}

// AddInPlace computes a ← a + b element-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(n²).
func AddInPlace(a *Dense, b Matrix) error {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	if db, ok := b.(*Dense); ok {
		for idx := range a.data {
			a.data[idx] = cplx.Add(a.data[idx], db.data[idx])
		}
		return nil
	}

	return readInto(opAddInPlace, a, b, cplx.Add)
}

// ScaleInPlace multiplies every element of m by the complex constant c.
// Errors: ErrNilMatrix. Complexity: O(n²).
func ScaleInPlace(m *Dense, c complex128) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	for idx := range m.data {
		m.data[idx] = cplx.Mul(m.data[idx], c)
	}

	return nil
}

// DivStepInPlace divides every element of m by the positive integer step n
// using the component-wise real division path (re/n, im/n).
//
// Errors:
//   - ErrNilMatrix, ErrBadStep (n < 1).
//
// Complexity: O(n²).
func DivStepInPlace(m *Dense, n int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opDivStep, err)
	}
	if n < 1 {
		return matrixErrorf(opDivStep, fmt.Errorf("step %d: %w", n, ErrBadStep))
	}
	for idx := range m.data {
		m.data[idx] = cplx.DivStep(m.data[idx], n)
	}

	return nil
}

// MaxAbsDiff returns the largest of |re(a)−re(b)| and |im(a)−im(b)| over all
// elements: a Chebyshev distance on components, not the magnitude of a−b.
// This is the convergence metric of the series evaluator.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Notes:
//   - A NaN component never raises the running maximum (comparisons with NaN
//     are false), matching a plain "if d > max" scan.
//
// Complexity: O(n²).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var maxDiff, d float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				d = cplx.MaxComponentDiff(da.data[idx], db.data[idx])
				if d > maxDiff {
					maxDiff = d
				}
			}
			return maxDiff, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv complex128
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			d = cplx.MaxComponentDiff(av, bv)
			if d > maxDiff {
				maxDiff = d
			}
		}
	}

	return maxDiff, nil
}

// AllClose reports whether every component pair satisfies
// |x−y| ≤ atol + rtol·|y|, with atol taken from WithEpsilon (DefaultEpsilon
// otherwise). NaN is never close to anything; equal infinities are close.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(n²).
func AllClose(a, b Matrix, rtol float64, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	atol := gatherOptions(opts...).eps
	rtol = math.Abs(rtol)

	r, c := a.Rows(), a.Cols()
	var av, bv complex128
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeTo(real(av), real(bv), rtol, atol) || !closeTo(imag(av), imag(bv), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeTo is the scalar relation behind AllClose.
func closeTo(x, y, rtol, atol float64) bool {
	if x == y { // covers equal infinities
		return true
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// readInto is the generic fallback for binary in-place kernels:
// dst[i,j] = f(dst[i,j], src.At(i,j)) in fixed i→j order.
func readInto(op string, dst *Dense, src Matrix, f func(cur, v complex128) complex128) error {
	var v complex128
	var err error
	for i := 0; i < dst.n; i++ {
		for j := 0; j < dst.n; j++ {
			if v, err = src.At(i, j); err != nil {
				return matrixErrorf(op, err)
			}
			dst.data[i*dst.n+j] = f(dst.data[i*dst.n+j], v)
		}
	}

	return nil
}
