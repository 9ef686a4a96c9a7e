package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyDocument   = "document"
	KeyAxis       = "axis"
	KeyGroup      = "group"
	KeySubgroup   = "subgroup"
	KeyAttribute  = "attribute"
	KeyCount      = "count"
	KeyLayout     = "layout"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Document(name string) slog.Attr   { return slog.String(KeyDocument, name) }
func Axis(name string) slog.Attr       { return slog.String(KeyAxis, name) }
func Group(key string) slog.Attr       { return slog.String(KeyGroup, key) }
func Subgroup(key string) slog.Attr    { return slog.String(KeySubgroup, key) }
func Attribute(name string) slog.Attr  { return slog.String(KeyAttribute, name) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Layout(name string) slog.Attr     { return slog.String(KeyLayout, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
