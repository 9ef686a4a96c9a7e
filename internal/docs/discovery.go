package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	derrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs/errors"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/util/sets"
)

// ScanFailure records a path the walk could not visit.
type ScanFailure struct {
	Path string
	Err  error
}

// ScanResult is the outcome of walking a features directory.
type ScanResult struct {
	// Files maps a document filename to the first path seen with that name.
	Files map[string]string
	// Duplicates lists every later path whose filename was already in Files.
	Duplicates []string
	// Failures lists paths that could not be read during the walk.
	Failures []ScanFailure
}

// Failed reports whether any path was unreadable during the walk.
func (r *ScanResult) Failed() bool {
	return len(r.Failures) > 0
}

// Err returns the scan-level failure, if any. Visit failures take precedence
// over duplicates; duplicates are reported all at once.
func (r *ScanResult) Err() error {
	if r.Failed() {
		paths := make([]string, 0, len(r.Failures))
		for _, f := range r.Failures {
			paths = append(paths, f.Path)
		}
		return fmt.Errorf("%w: %s: %w", derrors.ErrScanFailed, strings.Join(paths, ", "), r.Failures[0].Err)
	}
	if len(r.Duplicates) > 0 {
		return r.duplicateError()
	}
	return nil
}

func (r *ScanResult) duplicateError() *DuplicateError {
	conflicts := make(map[string][]string)
	for _, p := range r.Duplicates {
		name := filepath.Base(p)
		if _, ok := conflicts[name]; !ok {
			conflicts[name] = []string{r.Files[name]}
		}
		conflicts[name] = append(conflicts[name], p)
	}
	return &DuplicateError{Conflicts: conflicts}
}

// DuplicateError lists every filename that occurs more than once, with all of its paths.
type DuplicateError struct {
	Conflicts map[string][]string
}

func (e *DuplicateError) Error() string {
	names := make([]string, 0, len(e.Conflicts))
	for name := range e.Conflicts {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString(derrors.ErrDuplicateFeature.Error())
	b.WriteString(". Rename and retry")
	for _, name := range names {
		for _, p := range e.Conflicts[name] {
			b.WriteString("\n")
			b.WriteString(p)
		}
	}
	return b.String()
}

func (e *DuplicateError) Unwrap() error { return derrors.ErrDuplicateFeature }

// Paths returns every conflicting path in filename order.
func (e *DuplicateError) Paths() []string {
	names := make([]string, 0, len(e.Conflicts))
	for name := range e.Conflicts {
		names = append(names, name)
	}
	slices.Sort(names)
	var out []string
	for _, name := range names {
		out = append(out, e.Conflicts[name]...)
	}
	return out
}

// Scanner collects feature documents below a directory.
type Scanner struct {
	suffix  string
	exclude sets.Set[string]
}

// NewScanner creates a scanner matching files ending in suffix. Directories in
// excludeDirs (absolute or relative to the scanned root) are skipped entirely.
func NewScanner(suffix string, excludeDirs ...string) *Scanner {
	return &Scanner{
		suffix:  suffix,
		exclude: sets.New(excludeDirs...),
	}
}

// Scan walks root. It never stops early: every unreadable path and every
// duplicate filename is collected so the caller can report them together.
func (s *Scanner) Scan(root string) (*ScanResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve features directory: %w", err)
	}
	if _, err := os.Stat(absRoot); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", derrors.ErrFeaturesDirNotFound, absRoot)
	}

	result := &ScanResult{Files: make(map[string]string)}

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("Failed to visit path", logfields.Path(path), logfields.Error(err))
			result.Failures = append(result.Failures, ScanFailure{Path: path, Err: err})
			return nil
		}

		if d.IsDir() {
			if path != absRoot && s.excluded(absRoot, path) {
				slog.Debug("Skipping title directory", logfields.Path(path))
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if !strings.HasSuffix(name, s.suffix) {
			return nil
		}

		if _, seen := result.Files[name]; seen {
			slog.Debug("Duplicate feature file", logfields.File(name), logfields.Path(path))
			result.Duplicates = append(result.Duplicates, path)
			return nil
		}

		result.Files[name] = path
		slog.Debug("Discovered feature file", logfields.File(name), logfields.Path(path))
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", absRoot, walkErr)
	}

	slog.Info("Feature files discovered",
		logfields.Path(absRoot),
		logfields.Count(len(result.Files)),
		slog.Int("duplicates", len(result.Duplicates)),
		slog.Int("failures", len(result.Failures)))
	return result, nil
}

func (s *Scanner) excluded(root, dir string) bool {
	if s.exclude.Has(dir) {
		return true
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return s.exclude.Has(rel)
}
