package antora

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
)

// FileWriter performs the filesystem side effects of rendering.
type FileWriter interface {
	// WriteFile creates or truncates path.
	WriteFile(path string, data []byte) error
	// CreateIfMissing writes path only when it does not exist yet and
	// reports whether it was created.
	CreateIfMissing(path string, data []byte) (bool, error)
}

// OSWriter writes to the local filesystem, creating parent directories.
type OSWriter struct{}

func (OSWriter) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	// #nosec G306 -- generated pages are public content
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (OSWriter) CreateIfMissing(path string, data []byte) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, fmt.Errorf("create directory for %s: %w", path, err)
	}
	// #nosec G302,G304 -- generated pages are public content
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// DryRunWriter logs intended writes without touching the filesystem.
type DryRunWriter struct{}

func (DryRunWriter) WriteFile(path string, data []byte) error {
	slog.Info("Would write", logfields.Path(path), slog.Int("bytes", len(data)))
	return nil
}

func (DryRunWriter) CreateIfMissing(path string, data []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	slog.Info("Would create", logfields.Path(path), slog.Int("bytes", len(data)))
	return true, nil
}
