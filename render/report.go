// SPDX-License-Identifier: MIT

package render

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/matpow/series"
	"gopkg.in/yaml.v3"
)

// Complex is the YAML shape of a complex128.
type Complex struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// RunReport summarises one CLI run.
type RunReport struct {
	RunID     uuid.UUID `yaml:"run_id"`
	Input     string    `yaml:"input"`
	Output    string    `yaml:"output"`
	Base      Complex   `yaml:"base"`
	Precision float64   `yaml:"precision"`
	Limit     int       `yaml:"iterations_limit"`
	Size      int       `yaml:"matrix_size"`
	Steps     int       `yaml:"steps"`
	Terms     int       `yaml:"terms"`
	Reason    string    `yaml:"reason"`
	LastDelta float64   `yaml:"last_delta"`
	Elapsed   string    `yaml:"elapsed"`
}

// NewRunReport fills a report from the evaluated configuration and its
// series report.
func NewRunReport(id uuid.UUID, input, output string, cfg *series.Configuration, rep series.Report, elapsed time.Duration) RunReport {
	rr := RunReport{
		RunID:     id,
		Input:     input,
		Output:    output,
		Precision: rep.Precision,
		Limit:     rep.Limit,
		Steps:     rep.Steps,
		Terms:     rep.Terms,
		Reason:    rep.Reason.String(),
		LastDelta: rep.LastDelta,
		Elapsed:   elapsed.String(),
	}
	if cfg != nil {
		rr.Base = Complex{Re: real(cfg.Base), Im: imag(cfg.Base)}
		rr.Size = cfg.MatrixSize()
	}

	return rr
}

// MarshalReport encodes rr as YAML.
func MarshalReport(rr RunReport) ([]byte, error) {
	b, err := yaml.Marshal(rr)
	if err != nil {
		return nil, renderErrorf("MarshalReport", err)
	}

	return b, nil
}

// WriteReport writes rr as YAML to path.
func WriteReport(path string, rr RunReport) error {
	b, err := MarshalReport(rr)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, b, 0o644); err != nil {
		return renderErrorf("WriteReport", err)
	}

	return nil
}
