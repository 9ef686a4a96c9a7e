package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryAttribute, "missing required attribute").
			WithSeverity(SeverityFatal).
			WithContext("path", "/features/foo.adoc").
			Build()

		if err.Category() != CategoryAttribute {
			t.Errorf("expected category %s, got %s", CategoryAttribute, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "missing required attribute" {
			t.Errorf("expected message 'missing required attribute', got %s", err.Message())
		}

		path, exists := err.Context().GetString("path")
		if !exists || path != "/features/foo.adoc" {
			t.Errorf("expected context path=/features/foo.adoc, got %v", path)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		if !IsClassified(err) {
			t.Error("expected error to be classified")
		}
		if !HasCategory(err, CategoryConfig) {
			t.Error("expected error to have config category")
		}
		if !err.IsFatal() {
			t.Error("expected config error to be fatal")
		}
	})

	t.Run("Detection through wrapping", func(t *testing.T) {
		inner := ScanError("walk failed").Build()
		wrapped := fmt.Errorf("generate: %w", inner)

		if !IsClassified(wrapped) {
			t.Fatal("expected wrapped error to be classified")
		}
		if GetCategory(wrapped) != CategoryScan {
			t.Errorf("expected scan category, got %s", GetCategory(wrapped))
		}
	})

	t.Run("Unclassified defaults to internal", func(t *testing.T) {
		if GetCategory(errors.New("plain")) != CategoryInternal {
			t.Error("expected plain error to map to internal category")
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("permission denied")
		err := WrapError(originalErr, CategoryFileSystem, "write nav").
			Warning().
			WithContext("path", "nav.adoc").
			WithContext("attempt", 1).
			Build()

		if err.Category() != CategoryFileSystem {
			t.Errorf("expected category %s, got %s", CategoryFileSystem, err.Category())
		}
		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}
		if err.Error() != "[filesystem:warning] write nav: permission denied" {
			t.Errorf("unexpected error string %q", err.Error())
		}
	})

	t.Run("Constructor with cause", func(t *testing.T) {
		cause := errors.New("no such file")
		err := FileSystemError("publish partials").WithCause(cause).Build()

		if !errors.Is(err, cause) {
			t.Error("expected error to wrap cause")
		}
		if err.Category() != CategoryFileSystem || !err.IsFatal() {
			t.Errorf("expected fatal filesystem error, got %s:%s", err.Category(), err.Severity())
		}
		if err.Error() != "[filesystem:fatal] publish partials: no such file" {
			t.Errorf("unexpected error string %q", err.Error())
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
		}{
			{"UsageError", UsageError("test"), CategoryUsage, SeverityFatal},
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
			{"ScanError", ScanError("test"), CategoryScan, SeverityFatal},
			{"DuplicateError", DuplicateError("test"), CategoryDuplicate, SeverityFatal},
			{"AttributeError", AttributeError("test"), CategoryAttribute, SeverityFatal},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityFatal},
			{"GitError", GitError("test"), CategoryGit, SeverityError},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
			})
		}
	})
}

func TestErrorContext(t *testing.T) {
	t.Run("Context operations", func(t *testing.T) {
		ctx := make(ErrorContext)
		ctx = ctx.Set("key1", "value1")
		ctx = ctx.Set("key2", 42)

		value1, exists1 := ctx.GetString("key1")
		if !exists1 || value1 != "value1" {
			t.Errorf("expected key1=value1, got %v", value1)
		}

		value2, exists2 := ctx.Get("key2")
		if !exists2 || value2 != 42 {
			t.Errorf("expected key2=42, got %v", value2)
		}

		if _, exists3 := ctx.Get("nonexistent"); exists3 {
			t.Error("expected nonexistent key to not exist")
		}
	})

	t.Run("Context merge", func(t *testing.T) {
		ctx1 := ErrorContext{"key1": "value1", "shared": "original"}
		ctx2 := ErrorContext{"key2": "value2", "shared": "overridden"}

		merged := ctx1.Merge(ctx2)

		shared, _ := merged.GetString("shared")
		if shared != "overridden" {
			t.Errorf("expected shared=overridden, got %s", shared)
		}
		if _, ok := merged.Get("key1"); !ok {
			t.Error("expected key1 to survive merge")
		}
	})

	t.Run("WithContext does not mutate original", func(t *testing.T) {
		base := AttributeError("missing title").WithContext("path", "a.adoc").Build()
		derived := base.WithContext("attribute", "title")

		if _, ok := base.Context().Get("attribute"); ok {
			t.Error("expected original error context to be unchanged")
		}
		if v, _ := derived.Context().GetString("attribute"); v != "title" {
			t.Errorf("expected derived attribute=title, got %q", v)
		}
	})
}
