package scanner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/bft-labs/palinscan/internal/engine"
	"github.com/bft-labs/palinscan/internal/metrics"
	"github.com/bft-labs/palinscan/internal/report"
)

// Run executes the scan described by cfg, printing one line per
// newly-maximal P(n) and blocking until the target is reached, the base
// bound is exhausted, the context is cancelled, or the register
// overflows.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Warn().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server")
			}
		}()
		logger.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
	}

	tun := NewTunables(cfg)
	if cfg.ConfigPath != "" {
		go NewConfigWatcher(cfg.ConfigPath, tun).Run(ctx)
	}

	logger.Info().
		Uint64("start_base", cfg.StartBase).
		Uint64("target", cfg.Target).
		Msg("scan starting")

	start := time.Now()
	lastProgress := start

	scanCfg := engine.ScanConfig{
		StartBase: cfg.StartBase,
		Target:    cfg.Target,
		MaxBase:   cfg.MaxBase,
	}

	onBase := func(base, pn, candidates uint64) {
		m.BasesScanned.Inc()
		m.Candidates.Add(float64(candidates))
		m.CurrentBase.Set(float64(base))
		if time.Since(lastProgress) >= tun.ProgressEvery() {
			lastProgress = time.Now()
			logger.Info().
				Uint64("base", base).
				Uint64("pn", pn).
				Str("elapsed", report.Elapsed(time.Since(start))).
				Msg("scan progress")
		}
	}

	onReport := func(r engine.Result) error {
		m.SequenceEntries.Inc()
		m.CurrentMax.Set(float64(r.Value))
		if !cfg.Quiet {
			fmt.Fprintln(out, report.Line(time.Since(start), r.Base, r.Value))
		}
		logger.Info().
			Uint64("index", r.Index).
			Uint64("base", r.Base).
			Uint64("value", r.Value).
			Msg("new sequence maximum")
		return nil
	}

	if err := engine.Scan(ctx, scanCfg, onBase, onReport); err != nil {
		if errors.Is(err, engine.ErrOverflow) {
			logger.Error().Err(err).Msg("64-bit range insufficient, aborting scan")
		}
		return err
	}

	logger.Info().Str("elapsed", report.Elapsed(time.Since(start))).Msg("scan finished")
	return nil
}
