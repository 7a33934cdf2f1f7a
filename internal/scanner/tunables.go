package scanner

import (
	"sync/atomic"
	"time"
)

// Tunables are the settings safe to change while a scan is running. The
// config watcher writes them from its own goroutine, so access is atomic.
type Tunables struct {
	progressEvery atomic.Int64 // nanoseconds
}

// NewTunables seeds the tunables from a validated config.
func NewTunables(cfg Config) *Tunables {
	t := &Tunables{}
	t.SetProgressEvery(cfg.ProgressEvery)
	return t
}

func (t *Tunables) ProgressEvery() time.Duration {
	return time.Duration(t.progressEvery.Load())
}

func (t *Tunables) SetProgressEvery(d time.Duration) {
	t.progressEvery.Store(int64(d))
}
