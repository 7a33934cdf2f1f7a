// Package cliconfig layers palinscan configuration from file, environment
// and command-line flags, with flags taking precedence.
package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTarget is the sequence value the scan runs toward: one
// quadrillion.
const DefaultTarget uint64 = 1_000_000_000_000_000

type Config struct {
	StartBase uint64
	Target    uint64
	MaxBase   uint64

	ProgressEvery time.Duration
	LogLevel      string
	MetricsAddr   string
	Quiet         bool
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
		return fmt.Errorf("start-base must be at least 3, got %d", c.StartBase)
	}
	if c.Target == 0 {
		return fmt.Errorf("target must be positive")
	}
	if c.MaxBase != 0 && c.MaxBase < c.StartBase {
		return fmt.Errorf("max-base %d is below start-base %d", c.MaxBase, c.StartBase)
	}
	if c.ProgressEvery <= 0 {
		return fmt.Errorf("progress interval must be positive")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("parse log-level: %w", err)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setUint sets a uint64 value if positive and flag not changed.
func (s *configSetter) setUint(flag string, value uint64, dst *uint64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag
// not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not
// changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setUintFromString parses a string to uint64 and sets the destination if
// valid. Used for environment variables that come as strings.
func (s *configSetter) setUintFromString(flag, value string, dst *uint64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	u, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if u == 0 {
		return nil
	}
	*dst = u
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
