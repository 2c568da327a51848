package powfile_test

import (
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/matpow/powfile"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) (complex128, float64, int, [][]complex128) {
	t.Helper()
	cfg, err := powfile.Parse(strings.NewReader(text))
	require.NoError(t, err)
	n := cfg.MatrixSize()
	rows := make([][]complex128, n)
	for i := range rows {
		rows[i], err = cfg.Power.Row(i)
		require.NoError(t, err)
	}

	return cfg.Base, cfg.Precision, cfg.IterationsLimit, rows
}

func TestParseValid(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		base      complex128
		precision float64
		limit     int
		rows      [][]complex128
	}{
		{
			name:      "plain",
			text:      "2,0\n- 0.0001 - 50 - 2\n1,0 0,0\n0,0 1,0\n",
			base:      2,
			precision: 0.0001,
			limit:     50,
			rows:      [][]complex128{{1, 0}, {0, 1}},
		},
		{
			name:      "parenthesized base",
			text:      "(2,0)\n- 0.0001 - 50 - 2\n1,0 0,0 0,0 1,0",
			base:      2,
			precision: 0.0001,
			limit:     50,
			rows:      [][]complex128{{1, 0}, {0, 1}},
		},
		{
			name:      "dash glued to numbers",
			text:      "1.5,-2\n-0.01 -3 -1\n-1e-3,+4.5",
			base:      complex(1.5, -2),
			precision: 0.01,
			limit:     3,
			rows:      [][]complex128{{complex(-1e-3, 4.5)}},
		},
		{
			name:      "space after comma and rendered body",
			text:      "0, 1 - 1e-6 - 20 - 2 (    1.000000,     2.000000) (-3, 4)\n\t(5,6)   7, 8",
			base:      1i,
			precision: 1e-6,
			limit:     20,
			rows:      [][]complex128{{complex(1, 2), complex(-3, 4)}, {complex(5, 6), complex(7, 8)}},
		},
		{
			name:      "trailing tokens ignored",
			text:      "3,0 - 0.5 - 4 - 1 9,9 garbage here",
			base:      3,
			precision: 0.5,
			limit:     4,
			rows:      [][]complex128{{complex(9, 9)}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base, precision, limit, rows := mustParse(t, tc.text)
			require.Equal(t, tc.base, base)
			require.Equal(t, tc.precision, precision)
			require.Equal(t, tc.limit, limit)
			require.Equal(t, tc.rows, rows)
		})
	}
}

func TestParseMissingElement(t *testing.T) {
	_, err := powfile.Parse(strings.NewReader("2,0\n- 0.0001 - 50 - 2\n1,0 0,0 0,0\n"))
	var pe *powfile.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 1, pe.Missing)
	require.ErrorIs(t, err, powfile.ErrParse)
	require.Contains(t, err.Error(), "lacks 1 elements")
}

func TestParseMissingWholeMatrix(t *testing.T) {
	_, err := powfile.Parse(strings.NewReader("2,0 - 0.1 - 5 - 3"))
	var pe *powfile.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 9, pe.Missing)
}

func TestParseMalformedElement(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		row    int
		col    int
		detail string
	}{
		{"imag missing", "1,0 2 3,0 4,0", 1, 2, powfile.DetailNoImag},
		{"comma after space", "1,0 0,0 5 ,1 0,0", 2, 1, powfile.DetailNoImag},
		{"real missing", "1,0 0,0 0,0 ,1", 2, 2, powfile.DetailNoReal},
		{"imag garbage", "1,x 0,0 0,0 0,0", 1, 1, powfile.DetailNoImag},
		{"unclosed paren", "(1,0 0,0 0,0 0,0", 1, 1, powfile.DetailNoClose},
		{"imag at eof", "1,0 0,0 0,0 0,", 2, 2, powfile.DetailNoImag},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := powfile.Parse(strings.NewReader("2,0 - 0.1 - 5 - 2\n" + tc.body))
			var pe *powfile.ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, "matrix", pe.Field)
			require.Equal(t, tc.row, pe.Row)
			require.Equal(t, tc.col, pe.Col)
			require.Equal(t, tc.detail, pe.Detail)
			require.Zero(t, pe.Missing)
		})
	}
}

func TestParseBaseAndHeaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
	}{
		{"empty", "", "base"},
		{"base without comma", "2 0 - 1 - 3 - 1 1,0", "base"},
		{"base imag missing", "2, - 1 - 3 - 1 1,0", "base"},
		{"no dashes", "2,0 0.1 3 1 1,0", "header"},
		{"fractional limit", "2,0 - 0.1 - 3.5 - 1 1,0", "header"},
		{"header cut short", "2,0 - 0.1 - 3", "header"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := powfile.Parse(strings.NewReader(tc.text))
			var pe *powfile.ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, tc.field, pe.Field)
			require.ErrorIs(t, err, powfile.ErrParse)
		})
	}
}

func TestParseValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
	}{
		{"zero base", "0,0 - 0.1 - 5 - 1 1,0", "base"},
		{"negative zero base", "-0,-0 - 0.1 - 5 - 1 1,0", "base"},
		{"limit too small", "2,0 - 0.1 - 2 - 1 1,0", "iterations_limit"},
		{"negative limit", "2,0 - 0.1 - -7 - 1 1,0", "iterations_limit"},
		{"zero size", "2,0 - 0.1 - 5 - 0", "matrix_size"},
		{"huge size", "2,0 - 0.1 - 5 - 100000", "matrix_size"},
		{"nan precision", "2,0 - nan - 5 - 1 1,0", "precision"},
		{"inf base", "inf,0 - 0.1 - 5 - 1 1,0", "base"},
		{"overflowing element", "2,0 - 0.1 - 5 - 1 1e999,0", "matrix[1,1]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := powfile.Parse(strings.NewReader(tc.text))
			var ve *powfile.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.field, ve.Field)
			require.ErrorIs(t, err, powfile.ErrValidation)
			require.NotErrorIs(t, err, powfile.ErrParse)
		})
	}
}

func TestWithMaxSize(t *testing.T) {
	text := "2,0 - 0.1 - 5 - 3 " + strings.Repeat("1,0 ", 9)
	_, err := powfile.Parse(strings.NewReader(text), powfile.WithMaxSize(2))
	require.ErrorIs(t, err, powfile.ErrValidation)

	cfg, err := powfile.Parse(strings.NewReader(text), powfile.WithMaxSize(0), nil)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MatrixSize())
}

func TestParseHeaderOnlyAllocatesLittle(t *testing.T) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	_, err := powfile.Parse(strings.NewReader("1,0 - 0.1 - 5 - 4096"))
	runtime.ReadMemStats(&after)

	var pe *powfile.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 4096*4096, pe.Missing)
	// a 4096x4096 complex128 buffer would be 256 MiB
	require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
}

func TestParseReadFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	r := io.MultiReader(strings.NewReader("2,0 - 0.1 - 5 - 2 1,0 "), iotest.ErrReader(boom))
	_, err := powfile.Parse(r)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, powfile.ErrParse)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("2.718281828459045,0\n- 1e-9 - 20 - 1\n1,0\n"), 0o600))

	cfg, err := powfile.Load(path)
	require.NoError(t, err)
	require.InDelta(t, math.E, real(cfg.Base), 1e-15)
	require.Equal(t, 20, cfg.IterationsLimit)

	_, err = powfile.Load(filepath.Join(dir, "absent.txt"))
	var fe *powfile.FileOpenError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, powfile.RoleInput, fe.Role)
	require.ErrorIs(t, err, powfile.ErrFileOpen)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "(input file)")
}

func TestPairReader(t *testing.T) {
	pr := powfile.NewPairReader(strings.NewReader(" (1,2)  3,-4\n"))
	v, err := pr.Next()
	require.NoError(t, err)
	require.Equal(t, complex(1, 2), v)
	v, err = pr.Next()
	require.NoError(t, err)
	require.Equal(t, complex(3, -4), v)
	_, err = pr.Next()
	require.ErrorIs(t, err, io.EOF)

	pr = powfile.NewPairReader(strings.NewReader("1,2 3"))
	_, err = pr.Next()
	require.NoError(t, err)
	_, err = pr.Next()
	var pe *powfile.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Col)
	require.Equal(t, powfile.DetailNoImag, pe.Detail)
}
