// Package palinscan searches, for each integer base N > 2, the smallest
// integer P(N) exceeding 2N that is palindromic both in base N and in
// base 2, and emits the strictly increasing subsequence of P(N) values
// until one reaches a target threshold.
//
// Example usage:
//
//	cfg := palinscan.DefaultConfig()
//	cfg.Target = 1_000_000
//	if err := palinscan.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package palinscan

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bft-labs/palinscan/internal/engine"
	"github.com/bft-labs/palinscan/internal/scanner"
)

// Config holds the configuration for a scan.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = scanner.Config

// Result is one entry of the emitted sequence: a P(N) value larger than
// every previously emitted value.
type Result = engine.Result

// ErrOverflow is returned when the search exceeds the 64-bit range the
// engine assumes. It is unrecoverable.
var ErrOverflow = engine.ErrOverflow

// DefaultTarget is one quadrillion, the threshold the scan runs toward by
// default.
const DefaultTarget = scanner.DefaultTarget

// Run executes the scan with the given configuration. It blocks until an
// emitted value reaches cfg.Target, the context is cancelled, or an
// overflow occurs.
func Run(ctx context.Context, cfg Config) error {
	return scanner.Run(ctx, cfg)
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return scanner.DefaultConfig()
}

// P returns P(base) on its own, without running a full scan.
func P(ctx context.Context, base uint64) (uint64, error) {
	return engine.SearchBase(ctx, base)
}

// Logger returns the package-level zerolog logger used by the scanner.
func Logger() zerolog.Logger {
	return scanner.Logger()
}
