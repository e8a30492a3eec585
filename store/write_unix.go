//go:build !windows

package store

import (
	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// writeFile replaces path with data: temp file, fsync, rename.
func writeFile(path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return errors.Wrapf(err, "create pending config file %s", path)
	}
	defer func() {
		// no-op once the file has been committed
		if err := pendingFile.Cleanup(); err != nil {
			logrus.WithError(err).Debug("cleanup pending config file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return errors.Wrap(err, "write config data")
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "replace config file %s", path)
	}
	return nil
}
