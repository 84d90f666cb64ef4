package project

import (
	"os"
	"path/filepath"

	"litlint/internal/checker"
)

// FindConfig walks up from startDir looking for a litlint.toml. Returns the
// path and true if found.
func FindConfig(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadConfigFor resolves the configuration for a target file or directory:
// the nearest litlint.toml above it, or the defaults when there is none.
// The returned path is empty when no config file was found.
func LoadConfigFor(target string) (checker.Config, string, error) {
	startDir := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		startDir = filepath.Dir(target)
	}

	path, ok := FindConfig(startDir)
	if !ok {
		return checker.DefaultConfig(), "", nil
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return checker.Config{}, path, err
	}
	return cfg, path, nil
}
