// SPDX-License-Identifier: MIT
// Package matrix provides the dense complex matrix product and the kernels
// built on it: in-place multiplication, out-of-place multiplication and
// integer powers by repeated squaring. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical product kernels used by the series evaluator.
//   - Define operation tags and the shared error wrapper.
//
// Notes:
//   - The product is a true i→j→k triple accumulation with no zero-skipping:
//     series terms are dense and matrices are expected small.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matpow/cplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMulInPlace = "MulInPlace"
	opMul        = "Mul"
	opPow        = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Hints:
//   - Always gate calls with `if err != nil { return matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulInPlace computes a ← a × b (dense matrix product).
// Implementation:
//   - Stage 1: Validate a,b (not nil) and equal sizes.
//   - Stage 2: Allocate a zero scratch buffer of the same size.
//   - Stage 3: Accumulate scratch[i,j] += a[i,k]·b[k,j] over all i→j→k.
//   - Stage 4: Copy scratch into a; the scratch buffer is dropped on return.
//
// Behavior highlights:
//   - b may alias a (a.MulInPlace(a) squares a): operands are only read
//     while the scratch buffer is written.
//   - Non-*Dense b is read through At in the same loop order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²) scratch.
func MulInPlace(a *Dense, b Matrix) error {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	n := a.n
	scratch, err := NewDense(n)
	if err != nil {
		return matrixErrorf(opMulInPlace, err)
	}

	var (
		i, j, k   int
		rowA, dst int
		acc, bv   complex128
	)
	if db, ok := b.(*Dense); ok {
		for i = 0; i < n; i++ {
			rowA = i * n
			for j = 0; j < n; j++ {
				dst = rowA + j
				acc = scratch.data[dst]
				for k = 0; k < n; k++ {
					acc = cplx.Add(acc, cplx.Mul(a.data[rowA+k], db.data[k*n+j]))
				}
				scratch.data[dst] = acc
			}
		}
		copy(a.data, scratch.data)

		return nil
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < n; i++ {
		rowA = i * n
		for j = 0; j < n; j++ {
			acc = scratch.data[rowA+j]
			for k = 0; k < n; k++ {
				if bv, err = b.At(k, j); err != nil {
					return matrixErrorf(opMulInPlace, err)
				}
				acc = cplx.Add(acc, cplx.Mul(a.data[rowA+k], bv))
			}
			scratch.data[rowA+j] = acc
		}
	}
	copy(a.data, scratch.data)

	return nil
}

// Mul returns a fresh a × b; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(a.Rows())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = Copy(out, a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = MulInPlace(out, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// Pow returns a^k for k ≥ 0 by binary exponentiation (repeated squaring).
// Pow(a, 0) is the identity of matching size.
//
// Hints:
//   - Independent of the left-to-right accumulation used by the series
//     evaluator, so it doubles as a numerical cross-check for MulInPlace.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadExponent.
//
// Complexity:
//   - Time O(n³ log k), Space O(n²).
func Pow(a Matrix, k int) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("k=%d: %w", k, ErrBadExponent))
	}
	result, err := NewIdentity(a.Rows())
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	base, err := NewDense(a.Rows())
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if err = Copy(base, a); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	for k > 0 {
		if k&1 == 1 {
			if err = MulInPlace(result, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if err = MulInPlace(base, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return result, nil
}
