// Package scanner wires the palindrome engine into a runnable scan:
// configuration, logging, progress reporting, optional metrics, and live
// reload of the safe tunables.
package scanner

import (
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// DefaultTarget is the sequence value the scan runs toward: one
// quadrillion.
const DefaultTarget uint64 = 1_000_000_000_000_000

type Config struct {
	// StartBase is the first base examined, minimum 3.
	StartBase uint64
	// Target stops the scan once an emitted value reaches it.
	Target uint64
	// MaxBase defensively bounds the base loop; 0 derives it from Target.
	MaxBase uint64

	// ProgressEvery is how often a progress line is logged while no new
	// sequence entry appears.
	ProgressEvery time.Duration
	LogLevel      string

	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string

	// ConfigPath, when set, is watched for live updates to the tunables
	// that are safe to change mid-scan (progress interval, log level).
	ConfigPath string

	// Quiet suppresses the stdout sequence lines; entries still go to the
	// log.
	Quiet bool

	// Out receives the sequence lines. Defaults to os.Stdout.
	Out io.Writer
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		StartBase:     3,
		Target:        DefaultTarget,
		ProgressEvery: 30 * time.Second,
		LogLevel:      "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.StartBase < 3 {
		return errors.Newf("start base must be at least 3, got %d", c.StartBase)
	}
	if c.Target == 0 {
		return errors.New("target must be positive")
	}
	if c.MaxBase != 0 && c.MaxBase < c.StartBase {
		return errors.Newf("max base %d is below start base %d", c.MaxBase, c.StartBase)
	}
	if c.ProgressEvery <= 0 {
		return errors.New("progress interval must be positive")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}
