package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("PALINSCAN_START_BASE", "9")
	t.Setenv("PALINSCAN_TARGET", "123456")
	t.Setenv("PALINSCAN_PROGRESS_EVERY", "45s")
	t.Setenv("PALINSCAN_LOG_LEVEL", "warn")
	t.Setenv("PALINSCAN_QUIET", "1")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.StartBase != 9 || cfg.Target != 123456 {
		t.Fatalf("env numbers not applied: %+v", cfg)
	}
	if cfg.ProgressEvery != 45*time.Second {
		t.Fatalf("expected 45s, got %v", cfg.ProgressEvery)
	}
	if cfg.LogLevel != "warn" || !cfg.Quiet {
		t.Fatalf("env values not applied: %+v", cfg)
	}
}

func TestApplyEnvConfigRespectsFlags(t *testing.T) {
	t.Setenv("PALINSCAN_TARGET", "999")

	cfg := DefaultConfig()
	cfg.Target = 1000
	changed := map[string]bool{"target": true}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Target != 1000 {
		t.Fatalf("flag value must win, got %d", cfg.Target)
	}
}

func TestApplyEnvConfigBadValue(t *testing.T) {
	t.Setenv("PALINSCAN_TARGET", "quadrillion")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}
