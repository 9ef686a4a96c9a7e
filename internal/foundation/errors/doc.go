// Package errors provides foundational, type-safe error primitives used across featurenav.
//
// This package contains classified error types and helpers for error handling
// at the single process boundary, including a fluent builder API for
// constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (usage, scan, duplicate, attribute, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit code and message presentation for the CLI
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryAttribute, "missing required attribute").
//		WithContext("attribute", ":database-version:").
//		WithContext("path", absPath).
//		Build()
package errors
