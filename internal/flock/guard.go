// Package flock provides advisory file locking for the War Room data
// directory. The document stores assume a single owning process; the
// server takes an exclusive lock on a well-known file at startup so a
// second instance pointed at the same data directory fails fast instead
// of silently interleaving writes.
package flock

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/warroom/internal/constants"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
)

// Guard holds an exclusive lock on a file for the lifetime of the process.
type Guard struct {
	f *os.File
}

// Acquire opens (creating if needed) the lock file at path and takes an
// exclusive non-blocking lock on it. Returns ErrLockHeld if another
// process already holds the lock.
func Acquire(path string) (*Guard, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, constants.FilePerm) //#nosec G304 -- path is constructed from validated config
	if err != nil {
		return nil, warroomerrors.Wrap(err, "failed to open lock file")
	}
	if err := Exclusive(f.Fd()); err != nil {
		_ = f.Close()
		return nil, warroomerrors.ErrLockHeld
	}
	return &Guard{f: f}, nil
}

// Release unlocks and closes the lock file. Safe to call on a nil Guard.
func (g *Guard) Release() error {
	if g == nil || g.f == nil {
		return nil
	}
	if err := Unlock(g.f.Fd()); err != nil {
		_ = g.f.Close()
		return warroomerrors.Wrap(err, "failed to release lock")
	}
	return g.f.Close()
}

// Path returns the lock file path for a data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, constants.ServerLockFile)
}
