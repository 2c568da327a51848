// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matpow/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an n×n *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	if err != nil {
		t.Fatalf("NewDense(%d): %v", n, err)
	}

	return m
}

// NewFilledDense BUILDS an n×n *Dense from a row-major flat slice.
// Fatal test failure if len(vals) != n*n or Set fails.
func NewFilledDense(t testing.TB, n int, vals []complex128) *matrix.Dense {
	t.Helper()
	if len(vals) != n*n {
		t.Fatalf("NewFilledDense: want %d values, got %d", n*n, len(vals))
	}
	d := MustDense(t, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			MustSet(t, d, i, j, vals[i*n+j])
		}
	}

	return d
}

// RandFilledDense RETURNS a new n×n Dense whose components are deterministic U(-scale,scale).
// Deterministic per seed.
func RandFilledDense(t testing.TB, n int, seed int64, scale float64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			re := (rng.Float64()*2 - 1) * scale
			im := (rng.Float64()*2 - 1) * scale
			MustSet(t, m, i, j, complex(re, im))
		}
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v complex128) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RequireClose FAILS the test when any component differs by more than tol.
func RequireClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	d, err := matrix.MaxAbsDiff(want, got)
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if d > tol {
		t.Fatalf("matrices differ by %g (tol %g)\nwant:\n%v\ngot:\n%v", d, tol, want, got)
	}
}
