package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (PALINSCAN_*). It respects flags that have been explicitly set
// (changed map). Returns an error if any environment variable has an
// invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setUintFromString("start-base", os.Getenv("PALINSCAN_START_BASE"), &cfg.StartBase); err != nil {
		return err
	}
	if err := s.setUintFromString("target", os.Getenv("PALINSCAN_TARGET"), &cfg.Target); err != nil {
		return err
	}
	if err := s.setUintFromString("max-base", os.Getenv("PALINSCAN_MAX_BASE"), &cfg.MaxBase); err != nil {
		return err
	}
	if err := s.setDuration("progress-every", os.Getenv("PALINSCAN_PROGRESS_EVERY"), &cfg.ProgressEvery); err != nil {
		return err
	}

	s.setString("log-level", os.Getenv("PALINSCAN_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("metrics-addr", os.Getenv("PALINSCAN_METRICS_ADDR"), &cfg.MetricsAddr)
	s.setBoolFromString("quiet", os.Getenv("PALINSCAN_QUIET"), &cfg.Quiet)

	return nil
}
