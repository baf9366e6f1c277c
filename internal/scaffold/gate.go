package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Faultbox/roomseed/internal/logger"
)

// Path kind errors.
var (
	ErrNotRegular = errors.New("not a regular file")
	ErrNotDir     = errors.New("not a directory")
)

// EnsureText writes content to path unless the file already holds
// non-blank text. It reports whether a write happened.
func EnsureText(path, content string) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && len(bytes.TrimSpace(existing)) > 0:
		logger.Debug("kept existing text", logger.Path(path))
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := writeAtomic(path, []byte(content)); err != nil {
		return false, err
	}
	logger.Debug("wrote text", logger.Path(path))
	return true, nil
}

// EnsureBinary writes data to path unless the file already exists with
// non-zero size. It reports whether a write happened.
func EnsureBinary(path string, data []byte) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.Mode().IsRegular():
		return false, fmt.Errorf("%s: %w", path, ErrNotRegular)
	case err == nil && info.Size() > 0:
		logger.Debug("kept existing binary", logger.Path(path))
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	if err := writeAtomic(path, data); err != nil {
		return false, err
	}
	logger.Debug("wrote binary", logger.Path(path), logger.Bytes(len(data)))
	return true, nil
}

// writeAtomic writes data to a temp file beside path and renames it into
// place, so readers see either the old file or all of data.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		cleanup()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
