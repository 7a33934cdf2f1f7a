package scanner

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/palinscan/internal/cliconfig"
)

// ConfigWatcher monitors the config file via fsnotify and applies the
// runtime-safe settings to a running scan. A multi-hour scan should not
// need a restart just to turn down logging or progress chatter.
type ConfigWatcher struct {
	path string
	tun  *Tunables

	mu       sync.Mutex
	debounce *time.Timer
}

func NewConfigWatcher(path string, tun *Tunables) *ConfigWatcher {
	return &ConfigWatcher{path: path, tun: tun}
}

// Run watches the config file's directory until ctx is cancelled.
// Watching the directory rather than the file survives editors that
// replace the file on save.
func (w *ConfigWatcher) Run(ctx context.Context) {
	if w.path == "" {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn().Err(err).Msg("config watcher: failed to create watcher")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		logger.Warn().Err(err).Str("dir", filepath.Dir(w.path)).Msg("config watcher: failed to watch")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("config watcher: error")
		}
	}
}

func (w *ConfigWatcher) debounceReload(delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(delay, w.reload)
}

// reload re-reads the file and applies the tunables it carries. Settings
// that cannot change mid-scan (start base, target) are ignored here; they
// only take effect on the next run.
func (w *ConfigWatcher) reload() {
	fc, err := cliconfig.LoadFileConfig(w.path)
	if err != nil {
		logger.Warn().Err(err).Str("path", w.path).Msg("config watcher: reload failed")
		return
	}

	if fc.ProgressEvery != "" {
		if d, err := time.ParseDuration(fc.ProgressEvery); err == nil && d > 0 {
			w.tun.SetProgressEvery(d)
			logger.Info().Dur("progress_every", d).Msg("config watcher: applied progress interval")
		} else {
			logger.Warn().Str("progress_every", fc.ProgressEvery).Msg("config watcher: bad progress interval")
		}
	}

	if fc.LogLevel != "" {
		if err := SetLevel(fc.LogLevel); err != nil {
			logger.Warn().Err(err).Str("log_level", fc.LogLevel).Msg("config watcher: bad log level")
		} else {
			logger.Info().Str("log_level", fc.LogLevel).Msg("config watcher: applied log level")
		}
	}
}
