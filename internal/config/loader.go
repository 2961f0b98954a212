// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"time"
)

// loadSiteFile reads and decodes the site configuration file at path.
//
// Returns:
//   - loaded == false with a nil error when path is empty or the file does
//     not exist. This is the normal "no site configuration" case.
//   - [ErrConfigUnreadable] when the file exists but cannot be read. The
//     first open acts as a readability probe; a second minimal read attempt
//     tolerates filesystems that misreport readability before the error is
//     raised.
//   - [ErrConfigLoadFailed] when the contents cannot be decoded. No partial
//     state is returned.
//   - the decoded partial settings record and the file's modification time
//     on success.
func loadSiteFile(path string) (partial Settings, mtime time.Time, loaded bool, err error) {
	if path == "" {
		return Settings{}, time.Time{}, false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, time.Time{}, false, nil
		}
		return Settings{}, time.Time{}, false, fmt.Errorf("%w: %s: %w", ErrConfigUnreadable, path, err)
	}

	data, err := readSiteFile(path)
	if err != nil {
		return Settings{}, time.Time{}, false, fmt.Errorf("%w: %s: %w", ErrConfigUnreadable, path, err)
	}

	partial, err = parseSiteSettings(data)
	if err != nil {
		return Settings{}, time.Time{}, false, fmt.Errorf("%w: %s: %w", ErrConfigLoadFailed, path, err)
	}

	return partial, info.ModTime(), true, nil
}

// readSiteFile opens the file as a readability probe and falls back to one
// plain read attempt when the open fails. Some network filesystems reject the
// probe yet serve the read.
func readSiteFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return os.ReadFile(path)
	}
	defer f.Close()

	return io.ReadAll(f)
}

// checkSitePermissions fails with [ErrInsecurePermissions] when the site
// configuration file is group or world writable. The check is skipped on
// platforms without meaningful file permission semantics. A missing file is
// not an error: there is nothing to check.
func checkSitePermissions(path string) error {
	if path == "" || runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	if info.Mode().Perm()&0o022 != 0 {
		return fmt.Errorf("%w: %s", ErrInsecurePermissions, path)
	}

	return nil
}
