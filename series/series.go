// SPDX-License-Identifier: MIT

// Package series evaluates base^M for a complex scalar base and a square
// complex matrix M through the identity base^M = exp(M·ln base) and the
// truncated Taylor series of the matrix exponential:
//
//	X      = M · ln(base)
//	result = I + X + X²/2! + X³/3! + …
//
// Algorithm Outline:
//  1. X ← Power·Log(Base), in place (Power is consumed).
//  2. result ← I + X; term ← X; prev ← result.
//  3. For i = 2 … IterationsLimit:
//     term ← term·X; term ← term/i (term is now Xⁱ/i!);
//     result += term;
//     stop when Precision > MaxAbsDiff(result, prev); else prev ← result.
//
// Precision semantics:
//
//	The test compares two consecutive partial sums, component-wise
//	(Chebyshev over real and imaginary parts). A term that is momentarily
//	small stops the loop even if later terms would grow again; the result is
//	then accurate to the series' tail, not to Precision in an absolute sense.
//
// Complexity:
//
//	Time   = O(k·n³), k = refinements performed (<= IterationsLimit-1)
//	Memory = O(n²): two scratch matrices (term, prev) plus the product buffer.
//
// Errors:
//   - ErrNilConfig, ErrZeroBase, ErrIterationsLimit, ErrAliasedResult
//   - ErrRealBase / ErrRealPower (WithRealOnly)
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for the result matrix.
//   - matrix.ErrNaNInf when Power holds a NaN or ±Inf component.
package series

import (
	"fmt"

	"github.com/katalvlaran/matpow/cplx"
	"github.com/katalvlaran/matpow/matrix"
)

const (
	opEvaluate = "Evaluate"
	opPower    = "Power"
)

// seriesErrorf wraps err with an operation tag, preserving it for errors.Is.
func seriesErrorf(tag string, err error) error {
	return fmt.Errorf("series.%s: %w", tag, err)
}

// Evaluate fills result with the series approximation of
// cfg.Base^cfg.Power and returns how the loop ended.
//
// Side effects:
//   - cfg.Power is overwritten with X = Power·ln(Base).
//   - result is overwritten; its previous contents are ignored.
//
// The loop always performs at least one refinement and at most
// IterationsLimit-1 of them.
func Evaluate(cfg *Configuration, result *matrix.Dense, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)
	if err := validate(cfg, result, o); err != nil {
		return Report{}, seriesErrorf(opEvaluate, err)
	}

	x := cfg.Power
	if err := matrix.ScaleInPlace(x, cplx.Log(cfg.Base)); err != nil {
		return Report{}, seriesErrorf(opEvaluate, err)
	}
	// terms 0 and 1
	if err := matrix.ScalarToMatrix(cplx.One, result); err != nil {
		return Report{}, seriesErrorf(opEvaluate, err)
	}
	if err := matrix.AddInPlace(result, x); err != nil {
		return Report{}, seriesErrorf(opEvaluate, err)
	}

	term, err := matrix.ZerosLike(x)
	if err != nil {
		return Report{}, seriesErrorf(opEvaluate, err)
	}
	prev, err := matrix.ZerosLike(result)
	if err != nil {
		return Report{}, seriesErrorf(opEvaluate, err)
	}
	if err = matrix.Copy(term, x); err != nil {
		return Report{}, seriesErrorf(opEvaluate, err)
	}
	if err = matrix.Copy(prev, result); err != nil {
		return Report{}, seriesErrorf(opEvaluate, err)
	}

	rep := Report{
		Reason:    StopLimit,
		Limit:     cfg.IterationsLimit,
		Precision: cfg.Precision,
	}
	var delta float64
	for i := 2; i <= cfg.IterationsLimit; i++ {
		if err = matrix.MulInPlace(term, x); err != nil {
			return Report{}, seriesErrorf(opEvaluate, err)
		}
		if err = matrix.DivStepInPlace(term, i); err != nil {
			return Report{}, seriesErrorf(opEvaluate, err)
		}
		if err = matrix.AddInPlace(result, term); err != nil {
			return Report{}, seriesErrorf(opEvaluate, err)
		}
		if delta, err = matrix.MaxAbsDiff(result, prev); err != nil {
			return Report{}, seriesErrorf(opEvaluate, err)
		}
		rep.Steps = i - 1
		rep.LastDelta = delta
		o.OnStep(Step{Index: i, Delta: delta})

		if cfg.Precision > delta {
			rep.Reason = StopConverged
			break
		}
		if err = matrix.Copy(prev, result); err != nil {
			return Report{}, seriesErrorf(opEvaluate, err)
		}
	}
	rep.Terms = rep.Steps + 2

	return rep, nil
}

// Power allocates the result matrix and runs Evaluate.
// cfg.Power is consumed exactly as in Evaluate.
func Power(cfg *Configuration, opts ...Option) (*matrix.Dense, Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Report{}, seriesErrorf(opPower, err)
	}
	// The series may legitimately overflow to ±Inf; keep the result writable.
	result, err := matrix.NewDense(cfg.MatrixSize(), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, Report{}, seriesErrorf(opPower, err)
	}
	rep, err := Evaluate(cfg, result, opts...)
	if err != nil {
		return nil, Report{}, err
	}

	return result, rep, nil
}

// validate runs the fail-fast checks in priority order:
// config → result → aliasing → finite power → real-only policy.
func validate(cfg *Configuration, result *matrix.Dense, o Options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := matrix.ValidateBinarySameShape(result, cfg.Power); err != nil {
		return err
	}
	if result == cfg.Power {
		return ErrAliasedResult
	}
	if err := matrix.ValidateFinite(cfg.Power); err != nil {
		return err
	}
	if !o.RealOnly {
		return nil
	}
	if !cplx.IsReal(cfg.Base) || real(cfg.Base) <= 0 {
		return fmt.Errorf("%w: got %v", ErrRealBase, cfg.Base)
	}
	var bad error
	cfg.Power.Do(func(i, j int, v complex128) bool {
		if !cplx.IsReal(v) {
			bad = fmt.Errorf("%w: element [%d,%d] = %v", ErrRealPower, i+1, j+1, v)
			return false
		}
		return true
	})

	return bad
}
