// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (square, row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Hints:
//   - Prefer fast-paths on *Dense in hot kernels (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - The size is fixed at allocation; every kernel that needs scratch space allocates its own.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Row: O(n).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matpow/cplx"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete square row-major matrix of complex128.
//   - n is the size (rows == cols == n, n >= 1).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
type Dense struct {
	n              int          // size, fixed at allocation
	data           []complex128 // contiguous row-major storage (len == n*n)
	validateNaNInf bool         // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a size×size zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation and the default numeric
//     policy, optionally overridden by opts.
//
// Implementation:
//   - Stage 1: validate size > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of size*size elements.
//   - Stage 3: resolve the numeric policy from opts.
//
// Errors:
//   - ErrInvalidDimensions (size < 1).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(size int, opts ...Option) (*Dense, error) {
	if size <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		n:              size,
		data:           make([]complex128, size*size), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Size returns the number of rows (== columns).
func (m *Dense) Size() int { return m.n }

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.n }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange sentinel; public methods wrap it with
// their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices. Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when the policy is on and either
//     component of v is NaN or ±Inf.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !cplx.IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i. Complexity: O(n).
func (m *Dense) Row(i int) ([]complex128, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]complex128, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(n²), Space O(n²).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concretely typed Clone used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{
		n:              m.n,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Values use Go's %g complex formatting, e.g. "[(1+0i), (0-2i)]".
// Not for hot paths; the result file format lives in package render.
// Complexity: Time O(n²), Space O(n²).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: Time O(n²), Space O(1).
func (m *Dense) Do(f func(i, j int, v complex128) bool) {
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (m *Dense) Apply(f func(i, j int, v complex128) complex128) error {
	var i, j, base int
	var nv complex128
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && !cplx.IsFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
