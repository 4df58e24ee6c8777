// Package docstore provides the generic read-modify-write primitive that
// every persisted document family is built on. A Document holds one JSON
// file (an object or a list) guarded by its own mutex; the critical
// section of Update spans the whole read-modify-write so two concurrent
// mutations on the same family never interleave and lose an update.
//
// Reads never fail: a missing or corrupt file yields the caller-supplied
// default, favouring availability on the read path. Write failures are
// returned so callers can retry or alert.
package docstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	warroomerrors "github.com/mrz1836/warroom/internal/errors"
)

// File and directory permissions for persisted documents.
const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Document is one JSON-backed document family of shape T.
type Document[T any] struct {
	mu        sync.Mutex
	path      string
	defaultFn func() T
}

// New creates a Document persisted at path. defaultFn supplies the value
// returned when the file is missing or unreadable (typically an empty
// list or map).
func New[T any](path string, defaultFn func() T) *Document[T] {
	return &Document[T]{path: path, defaultFn: defaultFn}
}

// Path returns the backing file path.
func (d *Document[T]) Path() string {
	return d.path
}

// Read returns the current document, or the default when the file is
// missing or does not parse. It never returns an error.
func (d *Document[T]) Read() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readLocked()
}

// Write serializes and persists the document, creating parent
// directories as needed.
func (d *Document[T]) Write(v T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeLocked(v)
}

// Update applies fn to the current document and persists the result,
// holding the family lock across the whole read-modify-write. When fn
// returns an error nothing is written and the error is returned as-is,
// which is how stores signal not-found without touching the file.
func (d *Document[T]) Update(fn func(T) (T, error)) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cur := d.readLocked()
	next, err := fn(cur)
	if err != nil {
		return next, err
	}
	if err := d.writeLocked(next); err != nil {
		return next, err
	}
	return next, nil
}

func (d *Document[T]) readLocked() T {
	data, err := os.ReadFile(d.path) //#nosec G304 -- path is constructed from validated config
	if err != nil {
		return d.defaultFn()
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		// Malformed JSON is treated as document absent.
		return d.defaultFn()
	}
	return v
}

func (d *Document[T]) writeLocked(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return warroomerrors.Wrapf(err, "failed to marshal %s", filepath.Base(d.path))
	}
	if err := os.MkdirAll(filepath.Dir(d.path), dirPerm); err != nil {
		return warroomerrors.Wrap(err, "failed to create data directory")
	}
	return AtomicWrite(d.path, data)
}

// AtomicWrite writes data to a file atomically using write-then-rename,
// so no reader ever observes a half-written document.
func AtomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return warroomerrors.Wrap(err, "failed to create temp file")
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return warroomerrors.Wrap(err, "failed to write data")
	}

	// Ensure data is persisted before rename.
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return warroomerrors.Wrap(err, "failed to sync file")
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return warroomerrors.Wrap(err, "failed to close file")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return warroomerrors.Wrap(err, "failed to rename file")
	}

	return nil
}
