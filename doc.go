// Package matpow computes base^M for a complex scalar base and a square
// complex matrix M, through base^M = exp(M·ln base) and the truncated
// Taylor series of the matrix exponential.
//
// Layout:
//
//	cplx/        complex128 scalar kernel (Log/Div fast paths for real values)
//	matrix/      square complex Dense, element-wise ops, product, validators
//	series/      the series evaluator: Configuration, Evaluate, Report, hooks
//	powfile/     input file parser with typed errors
//	render/      console/file printing, read-back, YAML run report
//	settings/    TOML settings file
//	logging/     slog + tint logger
//	cmd/matpow/  the CLI
//
// Quick example:
//
//	m, _ := matrix.NewIdentity(2)
//	cfg := &series.Configuration{Base: 2, Precision: 1e-4, IterationsLimit: 50, Power: m}
//	res, rep, err := series.Power(cfg) // res ≈ 2·I, rep.Reason == series.StopConverged
package matpow
