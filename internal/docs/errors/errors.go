package errors

// Package errors provides sentinel errors for feature document discovery and
// attribute extraction. Callers wrap them with paths and classify at the
// command boundary.

import "errors"

var (
	// ErrFeaturesDirNotFound indicates the configured features directory does not exist.
	ErrFeaturesDirNotFound = errors.New("features directory not found")

	// ErrScanFailed indicates one or more paths could not be visited during traversal.
	ErrScanFailed = errors.New("unexpected error occurred while searching for feature files")

	// ErrDuplicateFeature indicates two feature documents share a filename.
	ErrDuplicateFeature = errors.New("found duplicate feature files, filenames must be unique")

	// ErrMissingAttribute indicates a required attribute line is absent from a document.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrInvalidAttribute indicates an attribute value would resolve outside its module.
	ErrInvalidAttribute = errors.New("invalid attribute value")

	// ErrMissingTitle indicates a document has no level-1 heading.
	ErrMissingTitle = errors.New("missing title")

	// ErrFileReadFailed indicates reading content from a feature document failed.
	ErrFileReadFailed = errors.New("feature file read failed")
)
