package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/go-db-console/internal/logger"
)

func writeSiteConfig(t *testing.T, body string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestNewResolver_EffectiveEqualsDefaults(t *testing.T) {
	// Act
	r := NewResolver("", logger.Nop())

	// Assert
	assert.Equal(t, DefaultSettings(), r.Effective())
	assert.False(t, r.SiteLoaded())
	assert.True(t, r.SourceMTime().IsZero())
}

func TestLoadSite_NoPathConfigured(t *testing.T) {
	// Arrange
	r := NewResolver("", logger.Nop())

	// Act
	loaded, err := r.LoadSite()

	// Assert
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, DefaultSettings(), r.Effective())
}

func TestLoadSite_MergesOverDefaults(t *testing.T) {
	// Arrange
	p := writeSiteConfig(t, `{"max_rows": 100, "theme_default": "original"}`)
	r := NewResolver(p, logger.Nop())

	// Act
	loaded, err := r.LoadSite()

	// Assert
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.True(t, r.SiteLoaded())
	assert.False(t, r.SourceMTime().IsZero())

	eff := r.Effective()
	assert.Equal(t, 100, eff.MaxRows)
	assert.Equal(t, "original", eff.ThemeDefault)
	assert.Equal(t, "en", eff.DefaultLang, "untouched defaults survive the merge")
}

func TestLoadSite_DecodeFaultKeepsState(t *testing.T) {
	// Arrange
	p := writeSiteConfig(t, `{"max_rows": `)
	r := NewResolver(p, logger.Nop())

	// Act
	loaded, err := r.LoadSite()

	// Assert
	require.ErrorIs(t, err, ErrConfigLoadFailed)
	assert.False(t, loaded)
	assert.False(t, r.SiteLoaded())
	assert.Equal(t, DefaultSettings(), r.Effective())
}

func TestLoadSite_InsecurePermissions(t *testing.T) {
	// Arrange
	p := writeSiteConfig(t, `{"max_rows": 100}`)
	require.NoError(t, os.Chmod(p, 0o666))
	r := NewResolver(p, logger.Nop())

	// Act
	loaded, err := r.LoadSite()

	// Assert
	require.ErrorIs(t, err, ErrInsecurePermissions)
	assert.False(t, loaded)
	assert.Equal(t, DefaultSettings(), r.Effective(), "a rejected file must not leak into the effective state")
}

func TestLoadSite_PermissionCheckDisabled(t *testing.T) {
	// Arrange: the file itself switches the check off
	p := writeSiteConfig(t, `{"max_rows": 100, "check_config_permissions": false}`)
	require.NoError(t, os.Chmod(p, 0o666))
	r := NewResolver(p, logger.Nop())

	// Act
	loaded, err := r.LoadSite()

	// Assert
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, 100, r.Effective().MaxRows)
}

func TestApplyOverlay_Options(t *testing.T) {
	// Arrange
	r := NewResolver("", logger.Nop())

	// Act
	err := r.ApplyOverlay(Settings{ThemeDefault: "metro", MaxRows: 200}, nil)

	// Assert
	require.NoError(t, err)
	eff := r.Effective()
	assert.Equal(t, "metro", eff.ThemeDefault)
	assert.Equal(t, 200, eff.MaxRows)
	assert.Equal(t, "en", eff.DefaultLang)
}

func TestApplyOverlay_ServerOverride(t *testing.T) {
	// Arrange
	r := NewResolver("", logger.Nop())
	r.effective.Servers = []ServerSettings{{Host: "db-1.internal", SSL: true}}
	r.SelectServer("1")

	ssl := false
	verbose := "Primary (user)"

	// Act
	err := r.ApplyOverlay(Settings{}, &ServerOverride{Verbose: &verbose, SSL: &ssl})

	// Assert
	require.NoError(t, err)
	srv := r.Server()
	assert.Equal(t, "Primary (user)", srv.Verbose)
	assert.False(t, srv.SSL)

	// the override is reflected in the effective server list too
	assert.Equal(t, srv, r.Effective().Servers[0])
}

func TestApplyOverlay_ServerOverrideWithoutSelection(t *testing.T) {
	// Arrange
	r := NewResolver("", logger.Nop())
	r.effective.Servers = []ServerSettings{{Host: "db-1.internal"}}

	verbose := "renamed"

	// Act
	err := r.ApplyOverlay(Settings{}, &ServerOverride{Verbose: &verbose})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "db-1.internal", r.Effective().Servers[0].Host)
	assert.Empty(t, r.Effective().Servers[0].Verbose, "no active server, nothing to override")
}

func TestSetEffectiveValue(t *testing.T) {
	// Arrange
	r := NewResolver("", logger.Nop())

	// Act
	err := r.SetEffectiveValue(PathMaxRows, 75)

	// Assert
	require.NoError(t, err)
	got, ok := r.EffectiveValue(PathMaxRows)
	require.True(t, ok)
	assert.Equal(t, 75, got)

	// defaults are untouched
	def, ok := r.DefaultValue(PathMaxRows)
	require.True(t, ok)
	assert.Equal(t, 25, def)
}

func TestSetEffectiveValue_UnknownPathKeepsState(t *testing.T) {
	// Arrange
	r := NewResolver("", logger.Nop())

	// Act
	err := r.SetEffectiveValue("no_such_setting", 1)

	// Assert
	require.ErrorIs(t, err, ErrUnknownSettingPath)
	assert.Equal(t, DefaultSettings(), r.Effective())
}

func TestResolverTempDir(t *testing.T) {
	// Arrange
	r := NewResolver("", logger.Nop())
	r.effective.TempDir = t.TempDir()

	// Act
	dir, ok := r.TempDir("upload")

	// Assert
	require.True(t, ok)
	assert.DirExists(t, dir)

	again, ok := r.TempDir("upload")
	require.True(t, ok)
	assert.Equal(t, dir, again, "resolution is cached per name")
}

func TestResolverTempDir_Unconfigured(t *testing.T) {
	// Arrange
	r := NewResolver("", logger.Nop())
	r.effective.TempDir = ""

	// Act
	_, ok := r.TempDir("upload")

	// Assert
	assert.False(t, ok)

	// the negative result is cached as well
	_, ok = r.TempDir("upload")
	assert.False(t, ok)
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestLoadSite_RecordsMTime(t *testing.T) {
	// Arrange
	p := writeSiteConfig(t, `{"max_rows": 10}`)
	info, err := os.Stat(p)
	require.NoError(t, err)

	r := NewResolver(p, logger.Nop())

	// Act
	_, err = r.LoadSite()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), r.SourceMTime())
	assert.WithinDuration(t, time.Now(), r.SourceMTime(), time.Minute)
}