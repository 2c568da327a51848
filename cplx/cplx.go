// SPDX-License-Identifier: MIT

// Package cplx is the scalar complex kernel used by matrix and series.
//
// Values are plain complex128. An imaginary part that is exactly zero marks
// "real" semantics: Div and Log take cheaper real-only branches for such
// inputs, which also keeps real results free of branch-cut noise.
//
// Numeric policy:
//   - No errors are raised. Log(0), division by zero and the negative real
//     axis follow IEEE-754 semantics of math.Log / math.Atan2 unchanged.
//
// Hints:
//   - Use DivStep for the factorial counter of a series; a real divisor never
//     takes the full quotient path.
//   - Log of a positive real always returns an exactly-zero imaginary part.
package cplx

import "math"

// Zero is the additive identity.
const Zero complex128 = 0

// One is the multiplicative identity.
const One complex128 = 1

// Add returns a + b.
func Add(a, b complex128) complex128 {
	return complex(real(a)+real(b), imag(a)+imag(b))
}

// Mul returns the standard complex product a·b.
// (ar + ai·i)(br + bi·i) = (ar·br − ai·bi) + (ar·bi + ai·br)·i.
func Mul(a, b complex128) complex128 {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)

	return complex(ar*br-ai*bi, ar*bi+ai*br)
}

// Div returns a / b.
//
//	a, b real : (ar/br, 0)
//	b real    : (ar/br, ai/br)
//	otherwise : ((ar·br + ai·bi)/|b|², (ai·br − ar·bi)/|b|²)
//
// The last branch is unscaled, so very large or very small divisors may
// over/underflow like the naive formula.
func Div(a, b complex128) complex128 {
	if imag(b) == 0 {
		br := real(b)
		if imag(a) == 0 {
			return complex(real(a)/br, 0)
		}
		return complex(real(a)/br, imag(a)/br)
	}
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)
	den := br*br + bi*bi

	return complex((ar*br+ai*bi)/den, (ai*br-ar*bi)/den)
}

// DivStep divides a by the integer step n component-wise: (re/n, im/n).
func DivStep(a complex128, n int) complex128 {
	return Div(a, complex(float64(n), 0))
}

// Abs returns the magnitude sqrt(re² + im²).
func Abs(a complex128) float64 {
	re, im := real(a), imag(a)

	return math.Sqrt(re*re + im*im)
}

// Log returns the principal natural logarithm of a.
//
//	im == 0 && re > 0 : (ln re, 0)
//	otherwise         : (ln |a|, atan2(im, re))
func Log(a complex128) complex128 {
	if imag(a) == 0 && real(a) > 0 {
		return complex(math.Log(real(a)), 0)
	}

	return complex(math.Log(Abs(a)), math.Atan2(imag(a), real(a)))
}

// IsReal reports whether the imaginary part is exactly zero.
func IsReal(a complex128) bool { return imag(a) == 0 }

// IsZero reports whether both parts are exactly zero.
func IsZero(a complex128) bool { return real(a) == 0 && imag(a) == 0 }

// IsFinite reports whether neither part is NaN or ±Inf.
func IsFinite(a complex128) bool {
	re, im := real(a), imag(a)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}

// MaxComponentDiff returns max(|re(a)−re(b)|, |im(a)−im(b)|).
// This is the per-element Chebyshev distance used for convergence checks,
// not the magnitude of a − b.
func MaxComponentDiff(a, b complex128) float64 {
	dr := math.Abs(real(a) - real(b))
	di := math.Abs(imag(a) - imag(b))
	if di > dr {
		return di
	}

	return dr
}
