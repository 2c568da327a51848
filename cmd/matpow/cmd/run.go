// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/matpow/logging"
	"github.com/katalvlaran/matpow/powfile"
	"github.com/katalvlaran/matpow/render"
	"github.com/katalvlaran/matpow/series"
	"github.com/katalvlaran/matpow/settings"
	"github.com/spf13/cobra"
)

const settingsEnv = settings.EnvVar

var errNoFileName = errors.New("no file name given")

// run is one complete evaluation: load, echo, evaluate, print, save.
// The output file is only created once the result exists.
func run(cmd *cobra.Command, o *options, args []string) error {
	start := time.Now()
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	// no logger settings exist until the file is resolved
	log := logging.Discard()
	fail := func(err error) error {
		log.Error("run failed", "err", err)
		fmt.Fprintf(out, "[ERROR] %s\n", errorMessage(err))
		return &exitError{err}
	}

	st, src, err := settings.Resolve(o.settingsPath)
	if err != nil {
		return fail(err)
	}
	applyFlags(cmd, o, st)

	id := uuid.New()
	log = newLogger(cmd.ErrOrStderr(), o, st, id)
	if src != "" {
		log.Debug("settings loaded", "path", src)
	}

	inPath, err := argOrPrompt(args, 0, "Enter INPUT file name: ", in, out)
	if err != nil {
		return fail(err)
	}
	cfg, err := powfile.Load(inPath)
	if err != nil {
		return fail(err)
	}
	log.Info("input loaded", "path", inPath, "size", cfg.MatrixSize(), "limit", cfg.IterationsLimit)

	ropts := []render.Option{
		render.WithThreshold(st.Output.Threshold),
		render.WithWidth(st.Output.Width),
		render.WithDecimals(st.Output.Decimals),
	}
	if err = render.WriteInput(out, cfg, ropts...); err != nil {
		return fail(err)
	}

	var sopts []series.Option
	if st.Run.Trace {
		sopts = append(sopts, series.WithOnStep(func(s series.Step) {
			log.Debug("step", "i", s.Index, "delta", s.Delta)
		}))
	}
	if st.Run.RealOnly {
		sopts = append(sopts, series.WithRealOnly())
	}
	result, rep, err := series.Power(cfg, sopts...)
	if err != nil {
		return fail(err)
	}
	log.Info("series evaluated", "steps", rep.Steps, "terms", rep.Terms,
		"reason", rep.Reason.String(), "delta", rep.LastDelta)

	if err = render.WriteDiagnostics(out, rep); err != nil {
		return fail(err)
	}
	if err = render.WriteResult(out, result, ropts...); err != nil {
		return fail(err)
	}

	outPath, err := argOrPrompt(args, 1, "Enter OUTPUT file name: ", in, out)
	if err != nil {
		return fail(err)
	}
	if err = render.WriteFile(outPath, result, ropts...); err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "\nThe result is saved to %q!\n", outPath)

	if st.Run.Report != "" {
		rr := render.NewRunReport(id, inPath, outPath, cfg, rep, time.Since(start))
		if err = render.WriteReport(st.Run.Report, rr); err != nil {
			return fail(err)
		}
		log.Info("report written", "path", st.Run.Report)
	}

	return nil
}

// applyFlags lets explicitly set flags override the settings file.
func applyFlags(cmd *cobra.Command, o *options, st *settings.Settings) {
	f := cmd.Flags()
	if f.Changed("trace") {
		st.Run.Trace = o.trace
	}
	if f.Changed("real-only") {
		st.Run.RealOnly = o.realOnly
	}
	if f.Changed("report") {
		st.Run.Report = o.reportPath
	}
	if o.noColor {
		st.Log.Color = false
	}
}

func newLogger(w io.Writer, o *options, st *settings.Settings, id uuid.UUID) *slog.Logger {
	lvl, err := st.LogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	if o.verbose || st.Run.Trace {
		lvl = slog.LevelDebug
	}

	return logging.New(w, logging.Config{
		Level:      lvl,
		Color:      st.Log.Color,
		TimeFormat: st.Log.TimeFormat,
	}, id)
}

// argOrPrompt returns args[i], or asks for a whitespace-free name on in.
func argOrPrompt(args []string, i int, prompt string, in io.Reader, out io.Writer) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	fmt.Fprint(out, prompt)
	var name string
	if _, err := fmt.Fscan(in, &name); err != nil {
		return "", fmt.Errorf("%w: %v", errNoFileName, err)
	}

	return name, nil
}
