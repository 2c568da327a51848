// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ...cmd.version=v1.2.3".
var version = "dev"

type options struct {
	settingsPath string
	reportPath   string
	trace        bool
	realOnly     bool
	verbose      bool
	noColor      bool
}

// exitError marks an error that run has already printed.
type exitError struct{ err error }

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// NewRootCmd builds the matpow command. Streams default to the process
// streams and can be replaced with SetIn/SetOut/SetErr.
func NewRootCmd() *cobra.Command {
	o := &options{}
	c := &cobra.Command{
		Use:   "matpow [input [output]]",
		Short: "Raise a complex number to a complex matrix power",
		Long: `matpow computes base^M = exp(M·ln base) for a complex base and a square
complex matrix M, summing the Taylor series of the matrix exponential until
two consecutive partial sums differ by less than the requested precision or
the iteration limit is reached.

Input file format:
  <base_re>,<base_im>
  - <precision> - <iterations_limit> - <matrix_size>
  <re>,<im> <re>,<im> ...

File names not given as arguments are asked for on stdin. The result is
printed and written to the output file.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}

	f := c.Flags()
	f.StringVar(&o.settingsPath, "settings", "", "TOML settings file (default: $"+settingsEnv+")")
	f.StringVar(&o.reportPath, "report", "", "write a YAML run report to this file")
	f.BoolVar(&o.trace, "trace", false, "log every series step (implies debug level)")
	f.BoolVar(&o.realOnly, "real-only", false, "reject complex input instead of using the complex logarithm")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored log output")

	return c
}

// Execute runs the root command against the process streams.
func Execute() error {
	err := NewRootCmd().Execute()
	var ee *exitError
	if err != nil && !errors.As(err, &ee) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	return err
}
