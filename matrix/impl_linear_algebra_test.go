// Package matrix_test contains unit tests for the product kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matpow/matrix"
	"github.com/stretchr/testify/require"
)

func TestMulInPlaceKnown(t *testing.T) {
	// [1 i; 0 2] × [2 0; 1 -i] = [2+i 1; 2 -2i]
	a := NewFilledDense(t, 2, []complex128{1, 1i, 0, 2})
	b := NewFilledDense(t, 2, []complex128{2, 0, 1, -1i})
	want := NewFilledDense(t, 2, []complex128{complex(2, 1), 1, 2, -2i})

	fast := a.Clone().(*matrix.Dense)
	require.NoError(t, matrix.MulInPlace(fast, b))
	RequireClose(t, want, fast, 1e-15)

	slow := a.Clone().(*matrix.Dense)
	require.NoError(t, matrix.MulInPlace(slow, hide{b}))
	RequireClose(t, want, slow, 1e-15)

	// b untouched
	RequireClose(t, NewFilledDense(t, 2, []complex128{2, 0, 1, -1i}), b, 0)
}

func TestMulInPlaceIdentity(t *testing.T) {
	m := RandFilledDense(t, 5, 42, 2)
	orig := m.Clone()
	id, err := matrix.NewIdentity(5)
	require.NoError(t, err)

	require.NoError(t, matrix.MulInPlace(m, id))
	RequireClose(t, orig, m, 0)
}

func TestMulInPlaceAliasSquares(t *testing.T) {
	m := RandFilledDense(t, 4, 3, 1)
	want, err := matrix.Mul(m, m)
	require.NoError(t, err)

	require.NoError(t, matrix.MulInPlace(m, m))
	RequireClose(t, want, m, 1e-14)
}

func TestMulErrors(t *testing.T) {
	a := MustDense(t, 2)
	require.ErrorIs(t, matrix.MulInPlace(a, MustDense(t, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.MulInPlace(nil, a), matrix.ErrNilMatrix)

	_, err := matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Pow(a, -1)
	require.ErrorIs(t, err, matrix.ErrBadExponent)
}

func TestPowZeroIsIdentity(t *testing.T) {
	m := RandFilledDense(t, 3, 8, 5)
	p, err := matrix.Pow(m, 0)
	require.NoError(t, err)
	id, err := matrix.IdentityLike(m)
	require.NoError(t, err)
	RequireClose(t, id, p, 0)
}

// TestPowMatchesIterativeAccumulation compares repeated squaring against the
// left-to-right accumulation X·X·…·X that the series evaluator performs.
func TestPowMatchesIterativeAccumulation(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		for _, k := range []int{1, 2, 3, 7, 10, 16} {
			t.Run(fmt.Sprintf("n=%d/k=%d", n, k), func(t *testing.T) {
				x := RandFilledDense(t, n, int64(n*100+k), 0.2)

				acc := x.Clone().(*matrix.Dense)
				for i := 1; i < k; i++ {
					require.NoError(t, matrix.MulInPlace(acc, x))
				}
				direct, err := matrix.Pow(x, k)
				require.NoError(t, err)

				ok, err := matrix.AllClose(direct, acc, 1e-9, matrix.WithEpsilon(1e-11))
				require.NoError(t, err)
				require.True(t, ok, "direct:\n%v\niterative:\n%v", direct, acc)
			})
		}
	}
}

func TestFacades(t *testing.T) {
	z, err := matrix.NewZeros(3)
	require.NoError(t, err)
	s, err := matrix.NewScalar(3, 2i)
	require.NoError(t, err)
	require.Equal(t, complex(0, 2), MustAt(t, s, 2, 2))
	require.Equal(t, complex128(0), MustAt(t, s, 0, 2))

	like, err := matrix.ZerosLike(s)
	require.NoError(t, err)
	RequireClose(t, z, like, 0)

	p, err := matrix.Product(s, s)
	require.NoError(t, err)
	want, err := matrix.NewScalar(3, -4)
	require.NoError(t, err)
	RequireClose(t, want, p, 0)

	q, err := matrix.Power(s, 2)
	require.NoError(t, err)
	RequireClose(t, want, q, 0)

	c := matrix.CloneMatrix(s)
	RequireClose(t, s, c, 0)
}
