//go:build windows

package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// writeFile replaces path with data through a temp file in the same directory.
func writeFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".config-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp config file for %s", path)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return errors.Wrap(err, "write config data")
	}
	if err := tmpFile.Sync(); err != nil {
		return errors.Wrap(err, "sync config data")
	}
	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(err, "close temp config file")
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "replace config file %s", path)
	}
	return nil
}
