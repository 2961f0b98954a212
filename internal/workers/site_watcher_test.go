package workers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/go-db-console/internal/config"
	"github.com/dkovalev/go-db-console/internal/logger"
)

// captureReplacer records every resolver handed to it.
type captureReplacer struct {
	replaced []*config.Resolver
}

func (c *captureReplacer) ReplaceBase(base *config.Resolver) {
	c.replaced = append(c.replaced, base)
}

func writeSiteFile(t *testing.T, path, body string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestSiteWatcher_ReloadsOnMTimeAdvance(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.json")
	start := time.Now().Add(-time.Hour)
	writeSiteFile(t, path, `{"max_rows": 50}`, start)

	target := &captureReplacer{}
	watcher := NewSiteWatcher(path, time.Minute, target, logger.Nop())

	writeSiteFile(t, path, `{"max_rows": 75}`, start.Add(time.Minute))

	// Act
	watcher.poll()

	// Assert
	require.Len(t, target.replaced, 1)
	got, _ := target.replaced[0].EffectiveValue(config.PathMaxRows)
	assert.Equal(t, 75, got)
}

func TestSiteWatcher_NoChangeNoReload(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.json")
	writeSiteFile(t, path, `{"max_rows": 50}`, time.Now().Add(-time.Hour))

	target := &captureReplacer{}
	watcher := NewSiteWatcher(path, time.Minute, target, logger.Nop())

	// Act
	watcher.poll()

	// Assert
	assert.Empty(t, target.replaced)
}

func TestSiteWatcher_BrokenFileKeepsPrevious(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.json")
	start := time.Now().Add(-time.Hour)
	writeSiteFile(t, path, `{"max_rows": 50}`, start)

	target := &captureReplacer{}
	watcher := NewSiteWatcher(path, time.Minute, target, logger.Nop())

	writeSiteFile(t, path, `{"max_rows": `, start.Add(time.Minute))

	// Act
	watcher.poll()

	// Assert: no replacement, and the next successful edit still applies
	assert.Empty(t, target.replaced)

	writeSiteFile(t, path, `{"max_rows": 99}`, start.Add(2*time.Minute))
	watcher.poll()
	require.Len(t, target.replaced, 1)
}

func TestSiteWatcher_MissingFileIsQuiet(t *testing.T) {
	// Arrange
	target := &captureReplacer{}
	watcher := NewSiteWatcher(filepath.Join(t.TempDir(), "absent.json"), time.Minute, target, logger.Nop())

	// Act
	watcher.poll()

	// Assert
	assert.Empty(t, target.replaced)
}

func TestSiteWatcher_RunWithoutPathIsNoop(t *testing.T) {
	watcher := NewSiteWatcher("", time.Minute, &captureReplacer{}, logger.Nop())

	// Run must return without spawning a loop; Stop stays callable.
	watcher.Run()
	watcher.Stop()
}
