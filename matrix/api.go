// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// Hints:
//   - Use NewIdentity/NewScalar to seed iterative schemes (series term 0).
//   - ZerosLike is handy to preallocate a result of matching size.

package matrix

import "github.com/katalvlaran/matpow/cplx"

// ---------- Constructors & Utilities (O(1) alloc + O(n²) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized size×size *Dense.
// It is a thin alias of NewDense with an intention-revealing name.
// Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(size int, opts ...Option) (*Dense, error) {
	return NewDense(size, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	return NewScalar(n, cplx.One, opts...)
}

// NewScalar returns v·I_n.
// Complexity: O(n²).
func NewScalar(n int, v complex128, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, opts...)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	if err = ScalarToMatrix(v, m); err != nil {
		return nil, err
	}

	return m, nil
}

// NewFromRows builds a Dense from row slices; every row must have len(rows) entries.
// Values go through Set, so the numeric policy applies.
//
// Errors:
//   - ErrInvalidDimensions (no rows), ErrNonSquare (ragged or non-square input),
//     ErrNaNInf (policy violation).
//
// Complexity: O(n²).
func NewFromRows(rows [][]complex128, opts ...Option) (*Dense, error) {
	n := len(rows)
	m, err := NewDense(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, validatorErrorf("NewFromRows", ErrNonSquare)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same size as m.
// Requires m to be square.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// Power is an alias for Pow: a^k by repeated squaring.
func Power(a Matrix, k int) (*Dense, error) { return Pow(a, k) }
