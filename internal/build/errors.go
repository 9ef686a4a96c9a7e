package build

import (
	"context"
	"errors"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs"
	derrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs/errors"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/editlink"
	dberrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/foundation/errors"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/partials"
)

// Pipeline stage names, used for logs, metrics and error context.
const (
	StageScan      = "scan"
	StageLoad      = "load"
	StageClassify  = "classify"
	StageRender    = "render"
	StagePublish   = "publish"
	StageEditLinks = "edit_links"
)

// classifyError converts a stage failure into a ClassifiedError. Errors that
// are already classified pass through unchanged.
func classifyError(stage string, err error) error {
	if err == nil || dberrors.IsClassified(err) {
		return err
	}
	if isCanceled(err) {
		return err
	}

	var (
		dup     *docs.DuplicateError
		missing *docs.MissingAttributeError
		invalid *docs.InvalidAttributeError
		b       *dberrors.ErrorBuilder
	)
	switch {
	case errors.As(err, &dup):
		b = dberrors.DuplicateError("duplicate feature files").
			WithContext("paths", dup.Paths())
	case errors.As(err, &missing):
		b = dberrors.AttributeError("feature document is incomplete").
			WithContext("attribute", missing.Attribute).
			WithContext("path", missing.Path)
	case errors.As(err, &invalid):
		b = dberrors.AttributeError("feature document has an unusable label").
			WithContext("attribute", invalid.Attribute).
			WithContext("path", invalid.Path).
			WithContext("value", invalid.Value)
	case errors.Is(err, derrors.ErrFeaturesDirNotFound), errors.Is(err, derrors.ErrScanFailed):
		b = dberrors.ScanError("feature scan failed")
	case errors.Is(err, editlink.ErrNoRepository), errors.Is(err, editlink.ErrNoRemote),
		errors.Is(err, editlink.ErrDetachedHead), errors.Is(err, editlink.ErrNoWebURL):
		b = dberrors.GitError("edit links unavailable").Fatal()
	case errors.Is(err, derrors.ErrFileReadFailed), errors.Is(err, partials.ErrPublishFailed):
		b = dberrors.FileSystemError("file access failed")
	case stage == StageRender || stage == StageEditLinks || stage == StageClassify:
		b = dberrors.FileSystemError(stage + " failed")
	default:
		b = dberrors.InternalError(stage + " failed")
	}
	return b.WithCause(err).WithContext("stage", stage).Build()
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
