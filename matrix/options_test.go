// Package matrix_test covers option constructors and validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matpow/matrix"
	"github.com/stretchr/testify/require"
)

func TestWithEpsilonPanicsOnNonsense(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { _ = matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { _ = matrix.WithEpsilon(0) })
}

func TestNilOptionIsSkipped(t *testing.T) {
	m, err := matrix.NewDense(2, nil, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, complex(math.NaN(), 0)), matrix.ErrNaNInf)
}

func TestOptionsApplyInOrder(t *testing.T) {
	m, err := matrix.NewDense(2, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, complex(math.NaN(), 0)))
}

func TestValidators(t *testing.T) {
	a := MustDense(t, 2)
	b := MustDense(t, 3)

	require.NoError(t, matrix.ValidateNotNil(a))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquare(a))
	require.NoError(t, matrix.ValidateSquareNonNil(hide{a}))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateBinarySameShape(a, hide{a}))
}
