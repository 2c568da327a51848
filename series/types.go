// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matpow/cplx"
	"github.com/katalvlaran/matpow/matrix"
)

// MinIterationsLimit is the smallest accepted iteration cap.
const MinIterationsLimit = 3

// Sentinel errors for series evaluation.
var (
	// ErrNilConfig is returned when the configuration or its Power matrix is nil.
	ErrNilConfig = errors.New("series: configuration is nil")

	// ErrZeroBase is returned when the base is exactly 0+0i (ln 0 is undefined).
	ErrZeroBase = errors.New("series: base must not be zero")

	// ErrIterationsLimit is returned when IterationsLimit < MinIterationsLimit.
	ErrIterationsLimit = errors.New("series: iterations limit must be >= 3")

	// ErrAliasedResult is returned when result and Power are the same matrix.
	ErrAliasedResult = errors.New("series: result must not alias the power matrix")

	// ErrRealBase is returned under WithRealOnly for a base that is not a positive real.
	ErrRealBase = errors.New("series: real-only mode needs a positive real base")

	// ErrRealPower is returned under WithRealOnly for a power matrix with imaginary parts.
	ErrRealPower = errors.New("series: real-only mode needs a real power matrix")
)

// Configuration is the validated input of one evaluation.
//
// Power is consumed: Evaluate overwrites it in place with X = Power·ln(Base).
type Configuration struct {
	Base            complex128    // scalar raised to the matrix power; must be non-zero
	Precision       float64       // convergence threshold on consecutive partial sums
	IterationsLimit int           // highest term index evaluated; >= MinIterationsLimit
	Power           *matrix.Dense // exponent matrix M, becomes X after Evaluate
}

// MatrixSize returns the size of the power matrix, or 0 when it is nil.
func (c *Configuration) MatrixSize() int {
	if c == nil || c.Power == nil {
		return 0
	}

	return c.Power.Size()
}

// Validate checks the invariants Evaluate relies on.
func (c *Configuration) Validate() error {
	if c == nil || c.Power == nil {
		return ErrNilConfig
	}
	if cplx.IsZero(c.Base) {
		return ErrZeroBase
	}
	if c.IterationsLimit < MinIterationsLimit {
		return fmt.Errorf("%w: got %d", ErrIterationsLimit, c.IterationsLimit)
	}

	return nil
}

// StopReason says why the series loop ended.
type StopReason int

const (
	// StopLimit means every term up to IterationsLimit was added.
	StopLimit StopReason = iota

	// StopConverged means two consecutive partial sums differed by less than Precision.
	StopConverged
)

// String returns a short label for logs and reports.
func (r StopReason) String() string {
	switch r {
	case StopLimit:
		return "limit"
	case StopConverged:
		return "converged"
	default:
		return "unknown"
	}
}

// Report describes one finished evaluation.
//
// Steps counts loop refinements (term indices 2..k), so 1 <= Steps <= Limit-1.
// Terms counts all summed terms including I and X, i.e. Steps+2.
type Report struct {
	Steps     int
	Terms     int
	Reason    StopReason
	LastDelta float64 // max component change of the final refinement
	Limit     int
	Precision float64
}

// Converged reports whether the loop stopped on the precision test.
func (r Report) Converged() bool { return r.Reason == StopConverged }

// Step is passed to the OnStep hook after every refinement.
type Step struct {
	Index int     // term index i just added (X^i / i!)
	Delta float64 // MaxAbsDiff between the new and previous partial sum
}

// Option configures Evaluate via functional arguments.
type Option func(*Options)

// Options holds hooks and policy switches for Evaluate.
type Options struct {
	// OnStep is called after every refinement, before the convergence test
	// decides whether to stop.
	OnStep func(Step)

	// RealOnly rejects non-real inputs instead of taking the complex log.
	RealOnly bool
}

// DefaultOptions returns Options with a no-op OnStep and complex semantics.
func DefaultOptions() Options {
	return Options{
		OnStep:   func(Step) {},
		RealOnly: false,
	}
}

// WithOnStep registers a per-refinement callback; nil is ignored.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithRealOnly restricts evaluation to a positive real base and a real
// power matrix, returning ErrRealBase / ErrRealPower otherwise.
func WithRealOnly() Option {
	return func(o *Options) { o.RealOnly = true }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
