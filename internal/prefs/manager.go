// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package prefs

import (
	"context"
	"fmt"

	"github.com/dkovalev/go-db-console/internal/config"
	"github.com/dkovalev/go-db-console/internal/logger"
	"github.com/dkovalev/go-db-console/internal/request"
)

// Resolution selects how much work an overlay application does. A minimal
// resolution only merges settings; a full resolution also runs the theme and
// language reconciliation side effects.
type Resolution int

const (
	// ResolutionMinimal merges the overlay and nothing else.
	ResolutionMinimal Resolution = iota
	// ResolutionFull additionally reconciles theme and language between the
	// overlay, the cookie store and the request.
	ResolutionFull
)

// ThemeCookie and LangCookie are the logical cookie names mirroring the
// corresponding user preferences.
const (
	ThemeCookie = "db_console_theme"
	LangCookie  = "db_console_lang"
)

// Manager owns the overlay lifecycle for one resolver: loading overlays
// from a store, caching them per server index, invalidating the cache when
// the site configuration changes, and merging them into the effective
// settings.
//
// Like the resolver it serves, a Manager is bound to one request pipeline
// and is not safe for concurrent use.
type Manager struct {
	resolver *config.Resolver
	store    Store
	themes   ThemeRegistry
	langs    LanguageRegistry
	logger   *logger.Logger

	cache map[int]Overlay
}

// NewManager constructs an overlay manager. The registries may be nil, in
// which case the reconciliation side effects are skipped.
func NewManager(resolver *config.Resolver, store Store, themes ThemeRegistry, langs LanguageRegistry, log *logger.Logger) *Manager {
	return &Manager{
		resolver: resolver,
		store:    store,
		themes:   themes,
		langs:    langs,
		logger:   log,
		cache:    make(map[int]Overlay),
	}
}

// StorageKind reports the channel backing the overlay of the active server,
// StorageNone when nothing is cached yet.
func (m *Manager) StorageKind() StorageKind {
	if overlay, ok := m.cache[m.resolver.ServerIndex()]; ok {
		return overlay.Storage
	}
	return StorageNone
}

// Apply loads (or revalidates) the user's overlay for the currently selected
// server and merges it into the resolver's effective settings. It is meant
// to run after every successful backend connection.
//
// With no server selected and nothing cached the overlay is empty and Apply
// returns immediately; that is the normal path for the server choice page.
// A cached overlay older than the site configuration file is reloaded from
// the store before merging.
func (m *Manager) Apply(ctx context.Context, rc *request.Context, userID int64, res Resolution) error {
	idx := m.resolver.ServerIndex()

	overlay, cached := m.cache[idx]
	if idx == 0 && !cached {
		return nil
	}

	if !cached || overlay.Loaded.Before(m.resolver.SourceMTime()) {
		loaded, err := m.store.Load(ctx, userID)
		if err != nil {
			return fmt.Errorf("error loading preference overlay: %w", err)
		}
		m.cache[idx] = loaded
		overlay = loaded
	}

	if err := m.resolver.ApplyOverlay(overlay.Options, overlay.Server); err != nil {
		return fmt.Errorf("error applying preference overlay: %w", err)
	}

	if res == ResolutionFull {
		m.reconcileTheme(ctx, rc, userID)
		m.reconcileLanguage(ctx, rc, userID)
	}

	return nil
}

// ReconcileCollation aligns the backend connection's collation with the
// configured default, touching the connection only when they differ.
func (m *Manager) ReconcileCollation(ctx context.Context, conn CollationConnection) error {
	want := m.resolver.Effective().DefaultConnectionCollation
	if want == "" || conn == nil {
		return nil
	}

	current, err := conn.Collation(ctx)
	if err != nil {
		return fmt.Errorf("error reading connection collation: %w", err)
	}
	if current == want {
		return nil
	}

	if err := conn.SetCollation(ctx, want); err != nil {
		return fmt.Errorf("error setting connection collation: %w", err)
	}
	return nil
}

// reconcileTheme aligns the active theme between the overlay, the theme
// cookie and the request. A request-observed theme that disagrees with the
// stored one is persisted back; persistence faults are logged, never
// propagated.
func (m *Manager) reconcileTheme(ctx context.Context, rc *request.Context, userID int64) {
	if m.themes == nil || rc == nil {
		return
	}

	requested := rc.Request().URL.Query().Get("theme")
	if requested == "" {
		requested, _ = rc.GetCookie(ThemeCookie)
	}
	if requested == "" || !m.themes.Exists(requested) {
		return
	}

	if current, _ := m.resolver.EffectiveValue(config.PathThemeDefault); current != requested {
		if diag := m.SetUserValue(ctx, rc, userID, ThemeCookie, config.PathThemeDefault, requested, nil); diag != nil {
			m.logger.Warn().Err(diag).Msg("theme preference not persisted")
		}
	}

	if err := m.themes.Activate(requested); err != nil {
		m.logger.Warn().Err(err).Str("theme", requested).Msg("theme activation failed")
	}
}

// reconcileLanguage mirrors reconcileTheme for the display language.
func (m *Manager) reconcileLanguage(ctx context.Context, rc *request.Context, userID int64) {
	if m.langs == nil || rc == nil {
		return
	}

	requested := rc.Request().URL.Query().Get("lang")
	if requested == "" {
		requested, _ = rc.GetCookie(LangCookie)
	}
	if requested == "" || !m.langs.Exists(requested) {
		return
	}

	if current, _ := m.resolver.EffectiveValue(config.PathDefaultLang); current != requested {
		if diag := m.SetUserValue(ctx, rc, userID, LangCookie, config.PathDefaultLang, requested, nil); diag != nil {
			m.logger.Warn().Err(diag).Msg("language preference not persisted")
		}
	}

	if err := m.langs.Activate(requested); err != nil {
		m.logger.Warn().Err(err).Str("lang", requested).Msg("language activation failed")
	}
}

// SetUserValue persists a single setting override, preferring durable
// storage over cookies.
//
// The value goes to the preference store with baseline (or, when nil, the
// compiled-in default) as the store-or-delete reference. When the store is
// not exclusively database-backed and a cookie name is supplied, the value
// is mirrored into that cookie against the current effective value; cookie
// faults are fire-and-forget. The in-memory effective value is updated
// unconditionally.
//
// The returned Diagnostic, when non-nil, carries either an unknown-path
// rejection or the store's write failure; the caller decides whether to
// surface it.
func (m *Manager) SetUserValue(ctx context.Context, rc *request.Context, userID int64, cookieName, path string, value, baseline any) *Diagnostic {
	if _, known := m.resolver.DefaultValue(path); !known {
		return &Diagnostic{Path: path, Err: config.ErrUnknownSettingPath}
	}

	storeBaseline := baseline
	if storeBaseline == nil {
		storeBaseline, _ = m.resolver.DefaultValue(path)
	}

	diag := m.store.PersistOption(ctx, userID, path, value, storeBaseline)

	if m.store.Kind() != StorageDB && cookieName != "" && rc != nil {
		cookieBaseline := baseline
		if cookieBaseline == nil {
			cookieBaseline, _ = m.resolver.EffectiveValue(path)
		}
		rc.SetCookie(cookieName, fmt.Sprint(value), fmt.Sprint(cookieBaseline), request.ConfiguredValidity, true)
	}

	if err := m.resolver.SetEffectiveValue(path, value); err != nil && diag == nil {
		diag = &Diagnostic{Path: path, Err: err}
	}

	// keep the cached overlay coherent with what was just written
	idx := m.resolver.ServerIndex()
	if overlay, ok := m.cache[idx]; ok {
		if err := overlay.Options.SetValue(path, value); err == nil {
			m.cache[idx] = overlay
		}
	}

	return diag
}
