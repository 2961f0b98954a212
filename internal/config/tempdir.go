package config

import (
	"os"
	"path/filepath"
)

// TempDir resolves a writable scratch subdirectory under the configured temp
// directory, creating it when missing. The resolution is cached per name.
//
// An unusable directory (no temp dir configured, creation fails, or the
// directory is not writable) reports ok == false; it is not an error, the
// caller simply works without scratch space.
func (r *Resolver) TempDir(name string) (string, bool) {
	if dir, ok := r.tempDirs[name]; ok {
		return dir, dir != ""
	}

	dir := r.resolveTempDir(name)
	r.tempDirs[name] = dir
	return dir, dir != ""
}

func (r *Resolver) resolveTempDir(name string) string {
	base := r.effective.TempDir
	if base == "" {
		return ""
	}

	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		r.logger.Warn().Err(err).Str("dir", dir).Msg("cannot create temp directory")
		return ""
	}

	// probe writability, some mounts report a successful mkdir yet reject writes
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		r.logger.Warn().Err(err).Str("dir", dir).Msg("temp directory is not writable")
		return ""
	}
	probe.Close()
	os.Remove(probe.Name())

	return dir
}
