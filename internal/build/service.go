package build

import (
	"context"
	"time"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/classify"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/config"
)

// BuildService executes feature navigation generation.
type BuildService interface {
	// Run executes the full pipeline and writes every generated artifact.
	Run(ctx context.Context, req BuildRequest) (*BuildResult, error)
	// Discover scans and classifies without writing anything.
	Discover(ctx context.Context, req BuildRequest) (*classify.Result, error)
}

// BuildRequest contains all inputs required to execute a run.
type BuildRequest struct {
	// Root is the project directory; configured paths resolve against it.
	Root string

	// Config is the loaded configuration for this run.
	Config *config.Config

	// DryRun logs the files a run would write without touching the output tree.
	DryRun bool
}

// BuildResult reports the outcome of a run.
type BuildResult struct {
	// RunID correlates the run's log lines.
	RunID string

	Status BuildStatus

	// Documents is the number of classified feature documents.
	Documents int

	// Groups counts groups per axis name.
	Groups map[string]int

	// FilesWritten counts generated files per kind (see metrics.Kind*).
	FilesWritten map[string]int

	// IndexCreated and IndexPreserved count group index pages.
	IndexCreated   int
	IndexPreserved int

	// EditURLs is the number of pages in the edit-url manifest, zero when disabled.
	EditURLs int

	Duration  time.Duration
	StartTime time.Time
	EndTime   time.Time
}

// BuildStatus represents the outcome of a run.
type BuildStatus string

const (
	BuildStatusSuccess   BuildStatus = "success"
	BuildStatusFailed    BuildStatus = "failed"
	BuildStatusCancelled BuildStatus = "cancelled"
)

// IsSuccess reports whether the run completed.
func (s BuildStatus) IsSuccess() bool {
	return s == BuildStatusSuccess
}
