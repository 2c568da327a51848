// Package matrix offers square complex matrices and the kernels a
// matrix-exponential series needs.
//
// The matrix package provides:
//
//   - Dense: a size×size row-major complex128 buffer with bounds-checked
//     At/Set and an optional finite-value policy.
//   - Element-wise kernels that mutate a target in place: Fill,
//     ScalarToMatrix, Copy, AddInPlace, ScaleInPlace, DivStepInPlace.
//   - MaxAbsDiff, the component-wise Chebyshev distance used as a
//     convergence metric, and AllClose for tolerance comparisons.
//   - MulInPlace (dense O(n³) product through a scratch buffer), Mul and
//     Pow (repeated squaring).
//
// Every size is fixed at allocation; kernels return ErrDimensionMismatch
// rather than resizing. Errors are sentinels from errors.go wrapped with an
// operation tag, so callers match them with errors.Is.
package matrix
