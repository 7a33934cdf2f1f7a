package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML
// friendly.
type FileConfig struct {
	StartBase     uint64 `toml:"start_base"`
	Target        uint64 `toml:"target"`
	MaxBase       uint64 `toml:"max_base"`
	ProgressEvery string `toml:"progress_every"`
	LogLevel      string `toml:"log_level"`
	MetricsAddr   string `toml:"metrics_addr"`
	Quiet         *bool  `toml:"quiet"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.palinscan/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".palinscan", "config.toml")
	}
	return ""
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setUint("start-base", fc.StartBase, &cfg.StartBase)
	s.setUint("target", fc.Target, &cfg.Target)
	s.setUint("max-base", fc.MaxBase, &cfg.MaxBase)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("metrics-addr", fc.MetricsAddr, &cfg.MetricsAddr)
	s.setBool("quiet", fc.Quiet, &cfg.Quiet)

	return s.setDuration("progress-every", fc.ProgressEvery, &cfg.ProgressEvery)
}
