// SPDX-License-Identifier: MIT

// Package settings loads the optional TOML settings file of the matpow CLI.
//
//	[log]
//	level = "info"        # debug | info | warn | error
//	color = true
//	time_format = "15:04:05"
//
//	[output]
//	threshold = 10000.0
//	width = 13
//	decimals = 6
//
//	[run]
//	trace = false
//	real_only = false
//	report = ""
//
// Keys missing from the file keep their defaults; unknown keys are an error.
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "MATPOW_SETTINGS"

var (
	// ErrUnknownKey is returned when the file sets a key this package does not know.
	ErrUnknownKey = errors.New("settings: unknown key")

	// ErrInvalid is returned for a value outside its allowed range.
	ErrInvalid = errors.New("settings: invalid value")
)

// Settings is the decoded file.
type Settings struct {
	Log    Log    `toml:"log"`
	Output Output `toml:"output"`
	Run    Run    `toml:"run"`
}

// Log configures the stderr logger.
type Log struct {
	Level      string `toml:"level"`
	Color      bool   `toml:"color"`
	TimeFormat string `toml:"time_format"`
}

// Output configures matrix printing.
type Output struct {
	Threshold float64 `toml:"threshold"`
	Width     int     `toml:"width"`
	Decimals  int     `toml:"decimals"`
}

// Run holds defaults for the run flags.
type Run struct {
	Trace    bool   `toml:"trace"`
	RealOnly bool   `toml:"real_only"`
	Report   string `toml:"report"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Log: Log{
			Level:      "info",
			Color:      true,
			TimeFormat: "15:04:05",
		},
		Output: Output{
			Threshold: 10000,
			Width:     13,
			Decimals:  6,
		},
	}
}

// Load decodes the TOML file at path over the defaults. Environment
// variables in path are expanded.
func Load(path string) (*Settings, error) {
	path = os.ExpandEnv(path)
	s := Default()
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("settings: load %q: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w in %q: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Resolve picks the settings source: an explicit path first, then the
// MATPOW_SETTINGS environment variable, then the defaults. The returned
// string names the file used, or is empty for the defaults.
func Resolve(path string) (*Settings, string, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), "", nil
	}
	s, err := Load(path)
	if err != nil {
		return nil, "", err
	}

	return s, path, nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if _, err := s.LogLevel(); err != nil {
		return err
	}
	if !(s.Output.Threshold > 0) {
		return fmt.Errorf("%w: output.threshold = %v, must be > 0", ErrInvalid, s.Output.Threshold)
	}
	if s.Output.Width < 0 {
		return fmt.Errorf("%w: output.width = %d, must be >= 0", ErrInvalid, s.Output.Width)
	}
	if s.Output.Decimals < 0 || s.Output.Decimals > 17 {
		return fmt.Errorf("%w: output.decimals = %d, must be in [0, 17]", ErrInvalid, s.Output.Decimals)
	}

	return nil
}

// LogLevel parses Log.Level.
func (s *Settings) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level = %q", ErrInvalid, s.Log.Level)
	}

	return lvl, nil
}
