// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/matpow/powfile"
	"github.com/katalvlaran/matpow/series"
)

// errorMessage renders err for the "[ERROR] ..." console line.
func errorMessage(err error) string {
	var (
		fe *powfile.FileOpenError
		pe *powfile.ParseError
		ve *powfile.ValidationError
	)
	switch {
	case errors.As(err, &fe):
		return fmt.Sprintf("Couldn't open %q (%s file)!", fe.Path, strings.ToUpper(fe.Role))
	case errors.As(err, &pe):
		return parseMessage(pe)
	case errors.As(err, &ve):
		if ve.Field == "base" && ve.Rule != "must be finite" {
			return "Not defined for the base of zero!"
		}
		return fmt.Sprintf("Invalid %s (%v): %s!", ve.Field, ve.Value, ve.Rule)
	case errors.Is(err, series.ErrRealBase):
		return "Real-only mode needs a positive real base!"
	case errors.Is(err, series.ErrRealPower):
		return "Real-only mode needs a power matrix without imaginary parts!"
	default:
		return err.Error()
	}
}

func parseMessage(pe *powfile.ParseError) string {
	switch {
	case pe.Field == "base" && pe.Err == nil:
		return "Base must contain real and imaginary parts separated by comma!"
	case pe.Field == "header" && pe.Err == nil:
		return "Please provide precision, iterations limit, power matrix' size and power matrix!\n" +
			"[...] Before each parameter write minus sign \"-\"."
	case pe.Missing > 0:
		return fmt.Sprintf("Provided matrix lacks %d elements!", pe.Missing)
	case pe.Row > 0:
		return fmt.Sprintf("Error occurred while reading power matrix at [row = %d, column = %d]\n"+
			"[...] %s!\n"+
			"[...] Each element must contain real and imaginary parts separated by comma!\n"+
			"Elements can be separated by space or new line.",
			pe.Row, pe.Col, capitalize(pe.Detail))
	default:
		return pe.Error()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
