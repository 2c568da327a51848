// SPDX-License-Identifier: MIT

// Package powfile reads the text input of a matrix-power run:
//
//	<base_re>,<base_im>
//	- <precision> - <iterations_limit> - <matrix_size>
//	<re>,<im> <re>,<im> ...
//
// Pairs may be wrapped in parentheses, so a rendered result matrix is a
// valid matrix body. Elements are separated by any whitespace; text after
// the last element is ignored.
//
// Failures are typed: *FileOpenError, *ParseError and *ValidationError,
// matched with errors.As or, through their sentinels, errors.Is.
package powfile

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/series"
)

// DefaultMaxSize bounds matrix_size. Memory is only committed as elements
// are read, so the cap limits what a complete file may describe.
const DefaultMaxSize = 4096

// Options tunes Parse.
type Options struct {
	MaxSize int
}

// Option configures Parse.
type Option func(*Options)

// WithMaxSize overrides DefaultMaxSize. Non-positive values are ignored.
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSize = n
		}
	}
}

// Load opens path and parses it.
func Load(path string, opts ...Option) (*series.Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Role: RoleInput, Err: err}
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads one configuration from r. The power matrix is fully read and
// validated before it is returned; nothing partial escapes on error.
func Parse(r io.Reader, opts ...Option) (*series.Configuration, error) {
	o := Options{MaxSize: DefaultMaxSize}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	lx := newLexer(r)

	base, st := lx.pair()
	if lx.err != nil {
		return nil, &ParseError{Field: "base", Detail: DetailRead, Err: lx.err}
	}
	if st != pairOK {
		return nil, &ParseError{Field: "base", Detail: DetailBase}
	}
	if err := checkFinite("base", real(base), imag(base)); err != nil {
		return nil, err
	}
	if base == 0 {
		return nil, &ValidationError{Field: "base", Value: base, Rule: "not defined for the base of zero"}
	}

	precision, limit, size, err := parseHeader(lx, o)
	if err != nil {
		return nil, err
	}
	power, err := parseMatrix(lx, size)
	if err != nil {
		return nil, err
	}

	return &series.Configuration{
		Base:            base,
		Precision:       precision,
		IterationsLimit: limit,
		Power:           power,
	}, nil
}

func parseHeader(lx *lexer, o Options) (precision float64, limit, size int, err error) {
	ok := lx.dash()
	if ok {
		precision, ok = lx.float()
	}
	if ok {
		ok = lx.dash()
	}
	if ok {
		limit, ok = lx.integer()
	}
	if ok {
		ok = lx.dash()
	}
	if ok {
		size, ok = lx.integer()
	}
	if lx.err != nil {
		return 0, 0, 0, &ParseError{Field: "header", Detail: DetailRead, Err: lx.err}
	}
	if !ok {
		return 0, 0, 0, &ParseError{Field: "header", Detail: DetailHeader}
	}

	switch {
	case math.IsNaN(precision) || math.IsInf(precision, 0):
		return 0, 0, 0, &ValidationError{Field: "precision", Value: precision, Rule: "must be finite"}
	case limit < series.MinIterationsLimit:
		return 0, 0, 0, &ValidationError{Field: "iterations_limit", Value: limit,
			Rule: fmt.Sprintf("must be at least %d", series.MinIterationsLimit)}
	case size < 1:
		return 0, 0, 0, &ValidationError{Field: "matrix_size", Value: size, Rule: "can't be less than 1"}
	case size > o.MaxSize:
		return 0, 0, 0, &ValidationError{Field: "matrix_size", Value: size,
			Rule: fmt.Sprintf("can't be greater than %d", o.MaxSize)}
	}

	return precision, limit, size, nil
}

// parseMatrix reads size² pairs in row-major order. Storage grows with the
// pairs actually read; the Dense is built only once all of them are present.
func parseMatrix(lx *lexer, size int) (*matrix.Dense, error) {
	var (
		vals []complex128
		err  error
	)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v, st := lx.pair()
			if lx.err != nil {
				return nil, &ParseError{Field: "matrix", Detail: DetailRead, Err: lx.err}
			}
			switch st {
			case pairOK:
			case pairEOF:
				return nil, &ParseError{Field: "matrix", Missing: size*(size-i) - j}
			default:
				return nil, &ParseError{Field: "matrix", Row: i + 1, Col: j + 1, Detail: st.detail()}
			}
			field := fmt.Sprintf("matrix[%d,%d]", i+1, j+1)
			if err = checkFinite(field, real(v), imag(v)); err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
	}

	rows := make([][]complex128, size)
	for i := range rows {
		rows[i] = vals[i*size : (i+1)*size]
	}

	return matrix.NewFromRows(rows)
}

func checkFinite(field string, re, im float64) error {
	for _, x := range [2]float64{re, im} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &ValidationError{Field: field, Value: complex(re, im), Rule: "must be finite"}
		}
	}

	return nil
}
