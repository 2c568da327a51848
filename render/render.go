// SPDX-License-Identifier: MIT

// Package render prints complex matrices for the console and for output
// files, and reads the printed form back.
//
// Each element is written as "(re,im) " and each row ends with a newline.
// A component is printed with fixed notation ("%13.6f") while its magnitude
// is below the threshold (10000), and with signed scientific notation
// ("%+.6e") from the threshold on.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/powfile"
	"github.com/katalvlaran/matpow/series"
)

// Defaults for Options.
const (
	DefaultThreshold = 10000.0
	DefaultWidth     = 13
	DefaultDecimals  = 6
)

// maxLine bounds a single rendered row accepted by ReadMatrix.
const maxLine = 1 << 24

// ErrRaggedMatrix is returned by ReadMatrix when a row's element count
// differs from the number of rows.
var ErrRaggedMatrix = errors.New("render: matrix rows differ in length")

// Options controls number formatting.
type Options struct {
	Threshold float64 // |x| >= Threshold switches to scientific notation
	Width     int     // fixed-notation field width
	Decimals  int     // digits after the point in both notations
}

// Option mutates Options.
type Option func(*Options)

// WithThreshold sets the switch to scientific notation. Non-positive or
// NaN values are ignored.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.Threshold = t
		}
	}
}

// WithWidth sets the fixed-notation field width; negative values are ignored.
func WithWidth(w int) Option {
	return func(o *Options) {
		if w >= 0 {
			o.Width = w
		}
	}
}

// WithDecimals sets the digits after the point; negative values are ignored.
func WithDecimals(d int) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Decimals = d
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{Threshold: DefaultThreshold, Width: DefaultWidth, Decimals: DefaultDecimals}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func renderErrorf(tag string, err error) error {
	return fmt.Errorf("render.%s: %w", tag, err)
}

// FormatComponent formats one real number.
func FormatComponent(x float64, opts ...Option) string {
	return gatherOptions(opts...).format(x)
}

func (o Options) format(x float64) string {
	if math.Abs(x) >= o.Threshold {
		return fmt.Sprintf("%+.*e", o.Decimals, x)
	}

	return fmt.Sprintf("%*.*f", o.Width, o.Decimals, x)
}

// WriteMatrix writes m row by row.
func WriteMatrix(w io.Writer, m matrix.Matrix, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return renderErrorf("WriteMatrix", err)
	}
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return renderErrorf("WriteMatrix", err)
			}
			bw.WriteByte('(')
			bw.WriteString(o.format(real(v)))
			bw.WriteByte(',')
			bw.WriteString(o.format(imag(v)))
			bw.WriteString(") ")
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return renderErrorf("WriteMatrix", err)
	}

	return nil
}

// WriteFile creates path and writes m into it. A failure to create the
// file is a *powfile.FileOpenError with the output role.
func WriteFile(path string, m matrix.Matrix, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &powfile.FileOpenError{Path: path, Role: powfile.RoleOutput, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = renderErrorf("WriteFile", cerr)
		}
	}()

	return WriteMatrix(f, m, opts...)
}

// ReadMatrix parses text produced by WriteMatrix. Blank lines are skipped;
// every other line is one row. Values are taken as printed, so the result
// matches the written values within print precision.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var rows [][]complex128
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		pr := powfile.NewPairReader(strings.NewReader(line))
		var row []complex128
		for {
			v, err := pr.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, renderErrorf("ReadMatrix", fmt.Errorf("row %d: %w", len(rows)+1, err))
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, renderErrorf("ReadMatrix", err)
	}
	if len(rows) == 0 {
		return nil, renderErrorf("ReadMatrix", matrix.ErrInvalidDimensions)
	}
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, renderErrorf("ReadMatrix",
				fmt.Errorf("%w: row %d has %d elements, want %d", ErrRaggedMatrix, i+1, len(row), len(rows)))
		}
	}
	m, err := matrix.NewFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, renderErrorf("ReadMatrix", err)
	}

	return m, nil
}

// WriteInput echoes a configuration before it is evaluated:
//
//	Base: 2.000000 + 0.000000 * i;
//	Desired precision: 0.000100
//	Power matrix:
//	(...) (...)
func WriteInput(w io.Writer, cfg *series.Configuration, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return renderErrorf("WriteInput", err)
	}
	_, err := fmt.Fprintf(w, "Base: %f + %f * i;\nDesired precision: %f\nPower matrix:\n",
		real(cfg.Base), imag(cfg.Base), cfg.Precision)
	if err != nil {
		return renderErrorf("WriteInput", err)
	}
	if err = WriteMatrix(w, cfg.Power, opts...); err != nil {
		return err
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return renderErrorf("WriteInput", err)
	}

	return nil
}

// WriteDiagnostics prints how the series loop ended, e.g.
//
//	[Reached desired precision! (0.000100)] [7 / 50 iterations performed]
//
// The count is the highest term index added, so a run that hits the cap
// prints limit / limit.
func WriteDiagnostics(w io.Writer, rep series.Report) error {
	var err error
	if rep.Converged() {
		_, err = fmt.Fprintf(w, "[Reached desired precision! (%f)] ", rep.Precision)
	} else {
		_, err = io.WriteString(w, "[Reached iterations limit!] ")
	}
	if err == nil {
		_, err = fmt.Fprintf(w, "[%d / %d iterations performed]\n", rep.Steps+1, rep.Limit)
	}
	if err != nil {
		return renderErrorf("WriteDiagnostics", err)
	}

	return nil
}

// WriteResult prints the result block that follows the diagnostics.
func WriteResult(w io.Writer, result matrix.Matrix, opts ...Option) error {
	if _, err := io.WriteString(w, "\nThe result:\n"); err != nil {
		return renderErrorf("WriteResult", err)
	}

	return WriteMatrix(w, result, opts...)
}
