package workers

import (
	"os"
	"time"

	"github.com/dkovalev/go-db-console/internal/config"
	"github.com/dkovalev/go-db-console/internal/logger"
)

// BaseReplacer receives a freshly loaded configuration resolver. The HTTP
// handler implements it; in-flight requests keep their snapshots.
type BaseReplacer interface {
	ReplaceBase(base *config.Resolver)
}

// SiteWatcher re-reads the site configuration file when its modification
// time advances, rebuilding the base resolver and handing it to the target.
//
// A reload that fails (unreadable file, malformed JSON, insecure
// permissions) is logged and the previous configuration stays in effect.
type SiteWatcher struct {
	path     string
	interval time.Duration
	target   BaseReplacer
	logger   *logger.Logger

	lastMTime time.Time
	done      chan struct{}
}

func NewSiteWatcher(path string, interval time.Duration, target BaseReplacer, log *logger.Logger) *SiteWatcher {
	w := &SiteWatcher{
		path:     path,
		interval: interval,
		target:   target,
		logger:   log,
		done:     make(chan struct{}),
	}

	// Remember the mtime the application started with so the first tick
	// does not trigger a spurious reload.
	if info, err := os.Stat(path); err == nil {
		w.lastMTime = info.ModTime()
	}

	return w
}

// Run starts the watch loop in a background goroutine. It is a no-op when
// no site configuration path or interval is configured.
func (w *SiteWatcher) Run() {
	if w.path == "" || w.interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.done:
				return
			case <-ticker.C:
				w.poll()
			}
		}
	}()
}

// Stop terminates the watch loop.
func (w *SiteWatcher) Stop() {
	close(w.done)
}

// poll performs one watch cycle: stat the file, and reload when its
// modification time moved past the last applied one.
func (w *SiteWatcher) poll() {
	info, err := os.Stat(w.path)
	if err != nil {
		// The file may legitimately be absent; nothing to reload.
		return
	}

	mtime := info.ModTime()
	if !mtime.After(w.lastMTime) {
		return
	}

	resolver := config.NewResolver(w.path, w.logger)
	if _, err := resolver.LoadSite(); err != nil {
		w.logger.Err(err).Str("path", w.path).Msg("site configuration reload failed, keeping previous configuration")
		return
	}

	w.target.ReplaceBase(resolver)
	w.lastMTime = mtime
	w.logger.Info().Str("path", w.path).Msg("site configuration reloaded")
}
