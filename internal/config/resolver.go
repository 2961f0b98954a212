// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package config

import (
	"sync"
	"time"

	"github.com/dkovalev/go-db-console/internal/logger"
)

// Resolver owns the layered settings state for one request pipeline:
// compiled-in defaults, the site configuration file, and whatever overlays
// the preference layer applies on top.
//
// The effective record is recomputed as a whole on every layer change and
// swapped in atomically from the caller's point of view: a consumer never
// observes a partially merged state. The resolver itself is not safe for
// concurrent use; the application model is one request, one resolver.
type Resolver struct {
	defaults  Settings
	site      Settings
	effective Settings

	sourcePath  string
	sourceMTime time.Time
	siteLoaded  bool

	serverIndex int
	server      ServerSettings

	tempDirs map[string]string

	logger *logger.Logger
}

// NewResolver constructs a resolver over the compiled-in defaults. The site
// configuration at sourcePath is not loaded until [Resolver.LoadSite] is
// called; until then the effective settings equal the defaults.
func NewResolver(sourcePath string, log *logger.Logger) *Resolver {
	defaults := DefaultSettings()

	return &Resolver{
		defaults:   defaults,
		effective:  defaults.Clone(),
		sourcePath: sourcePath,
		tempDirs:   make(map[string]string),
		logger:     log,
	}
}

// Snapshot returns an independent resolver carrying the same defaults, site
// layer and effective settings. The application model is one request, one
// resolver: a long-lived base resolver is built at startup and every request
// works on a snapshot of it.
//
// Server selection, overlays and temp directory caches are request-scoped
// and start empty on the snapshot.
func (r *Resolver) Snapshot() *Resolver {
	return &Resolver{
		defaults:    r.defaults.Clone(),
		site:        r.site.Clone(),
		effective:   r.effective.Clone(),
		sourcePath:  r.sourcePath,
		sourceMTime: r.sourceMTime,
		siteLoaded:  r.siteLoaded,
		tempDirs:    make(map[string]string),
		logger:      r.logger,
	}
}

var (
	defaultResolver     *Resolver
	defaultResolverOnce sync.Once
)

// Default returns a process-wide resolver constructed lazily over the
// defaults with no site configuration. It exists as a fallback for call
// sites that cannot yet receive a resolver by injection; new code should
// construct one with [NewResolver] and pass it down explicitly.
func Default() *Resolver {
	defaultResolverOnce.Do(func() {
		defaultResolver = NewResolver("", logger.Nop())
	})
	return defaultResolver
}

// LoadSite loads the site configuration file and merges it over the
// defaults. A missing or unconfigured file is a no-op and reports
// loaded == false with a nil error. When the permission check is enabled in
// the merged record, a group/world-writable file fails the load with
// [ErrInsecurePermissions].
//
// On success the source modification time is recorded; the preference layer
// compares overlay timestamps against it for cache invalidation.
func (r *Resolver) LoadSite() (bool, error) {
	partial, mtime, loaded, err := loadSiteFile(r.sourcePath)
	if err != nil {
		return false, err
	}
	if !loaded {
		return false, nil
	}

	merged, err := MergeSettings(r.defaults, partial)
	if err != nil {
		return false, err
	}

	if merged.CheckConfigPermissions != nil && *merged.CheckConfigPermissions {
		if err := checkSitePermissions(r.sourcePath); err != nil {
			return false, err
		}
	}

	r.site = partial
	r.sourceMTime = mtime
	r.siteLoaded = true
	r.effective = merged
	r.logger.Info().Str("path", r.sourcePath).Time("mtime", mtime).Msg("site configuration loaded")

	return true, nil
}

// Effective returns a deep copy of the current effective settings record.
func (r *Resolver) Effective() Settings {
	return r.effective.Clone()
}

// Defaults returns a deep copy of the compiled-in defaults.
func (r *Resolver) Defaults() Settings {
	return r.defaults.Clone()
}

// SiteLoaded reports whether a site configuration file has been merged in.
func (r *Resolver) SiteLoaded() bool {
	return r.siteLoaded
}

// SourceMTime returns the modification time recorded at the last successful
// site load, or the zero time when nothing was loaded.
func (r *Resolver) SourceMTime() time.Time {
	return r.sourceMTime
}

// ApplyOverlay merges a partial settings record over the effective settings
// and, when server is non-nil, a partial descriptor over the currently
// selected server. The new effective record is computed fully before being
// swapped in, so a merge error leaves the previous state intact.
func (r *Resolver) ApplyOverlay(options Settings, server *ServerOverride) error {
	merged, err := MergeSettings(r.effective, options)
	if err != nil {
		return err
	}

	if server != nil && r.serverIndex > 0 {
		r.server = MergeServerOverride(r.server, *server)
		if r.serverIndex <= len(merged.Servers) {
			merged.Servers[r.serverIndex-1] = r.server.Clone()
		}
	}

	r.effective = merged
	return nil
}

// SetEffectiveValue updates one named setting in the effective record. The
// update is unconditional and in-memory only; durable persistence is the
// preference layer's concern.
func (r *Resolver) SetEffectiveValue(path string, value any) error {
	next := r.effective.Clone()
	if err := next.SetValue(path, value); err != nil {
		return err
	}
	r.effective = next
	return nil
}

// EffectiveValue returns the current effective value of one named setting.
func (r *Resolver) EffectiveValue(path string) (any, bool) {
	return r.effective.Value(path)
}

// DefaultValue returns the compiled-in default of one named setting.
func (r *Resolver) DefaultValue(path string) (any, bool) {
	return r.defaults.Value(path)
}
