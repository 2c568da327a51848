// SPDX-License-Identifier: MIT

package powfile

import (
	"errors"
	"fmt"
)

// Sentinel errors; every typed error below unwraps to one of them.
var (
	// ErrFileOpen indicates that an input or output file could not be opened.
	ErrFileOpen = errors.New("powfile: couldn't open file")

	// ErrParse indicates malformed input text.
	ErrParse = errors.New("powfile: malformed input")

	// ErrValidation indicates well-formed input whose values are rejected.
	ErrValidation = errors.New("powfile: invalid value")
)

// File roles reported by FileOpenError.
const (
	RoleInput  = "input"
	RoleOutput = "output"
)

// Parse error details, matching the messages printed by the CLI.
const (
	DetailBase    = "base must contain real and imaginary parts separated by comma"
	DetailHeader  = "expected \" - <precision> - <iterations_limit> - <matrix_size>\"; write a minus sign before each parameter"
	DetailNoImag  = "imaginary part is not provided"
	DetailNoReal  = "either this element lacks its real part, or the previous one lacks its imaginary part"
	DetailNoClose = "missing closing parenthesis"
	DetailRead    = "read failed"
)

// FileOpenError reports a file that could not be opened or created.
type FileOpenError struct {
	Path string
	Role string // RoleInput or RoleOutput
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("powfile: couldn't open %q (%s file): %v", e.Path, e.Role, e.Err)
}

// Unwrap exposes both ErrFileOpen and the underlying OS error.
func (e *FileOpenError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFileOpen}
	}

	return []error{ErrFileOpen, e.Err}
}

// ParseError reports where the input text stopped making sense.
//
// Field is "base", "header" or "matrix". For the matrix, Row and Col are
// 1-based; Missing is set instead when the input ended early.
type ParseError struct {
	Field   string
	Row     int
	Col     int
	Missing int
	Detail  string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Missing > 0:
		return fmt.Sprintf("powfile: provided matrix lacks %d elements", e.Missing)
	case e.Row > 0:
		return fmt.Sprintf("powfile: %s [row = %d, column = %d]: %s", e.Field, e.Row, e.Col, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("powfile: %s: %s: %v", e.Field, e.Detail, e.Err)
	default:
		return fmt.Sprintf("powfile: %s: %s", e.Field, e.Detail)
	}
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Err}
}

// ValidationError reports a parsed value that breaks a rule.
type ValidationError struct {
	Field string
	Value any
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("powfile: %s = %v: %s", e.Field, e.Value, e.Rule)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
