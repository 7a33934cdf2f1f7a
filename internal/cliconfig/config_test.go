package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.StartBase != 3 {
		t.Fatalf("expected start base 3, got %d", cfg.StartBase)
	}
	if cfg.Target != DefaultTarget {
		t.Fatalf("expected target %d, got %d", DefaultTarget, cfg.Target)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"start base too small", func(c *Config) { c.StartBase = 2 }},
		{"zero target", func(c *Config) { c.Target = 0 }},
		{"max base below start", func(c *Config) { c.StartBase = 10; c.MaxBase = 5 }},
		{"non-positive progress interval", func(c *Config) { c.ProgressEvery = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestConfigSetterRespectsChangedFlags(t *testing.T) {
	s := newConfigSetter(map[string]bool{"target": true})

	var target uint64 = 100
	s.setUint("target", 42, &target)
	if target != 100 {
		t.Fatalf("changed flag must win, got %d", target)
	}

	var start uint64 = 3
	s.setUint("start-base", 7, &start)
	if start != 7 {
		t.Fatalf("unchanged flag must be overridden, got %d", start)
	}

	var d time.Duration
	if err := s.setDuration("progress-every", "bogus", &d); err == nil {
		t.Fatalf("expected duration parse error")
	}
}
