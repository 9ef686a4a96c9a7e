package config

import "strings"

// Layout selects how the navigation tree nests documents below a group.
type Layout string

const (
	// LayoutFlat lists member documents directly below each group.
	LayoutFlat Layout = "flat"
	// LayoutNested inserts a level for the opposite axis between group and documents.
	LayoutNested Layout = "nested"
)

// NormalizeLayout canonicalizes user input; returns "" for unknown values.
func NormalizeLayout(raw string) Layout {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(LayoutFlat):
		return LayoutFlat
	case string(LayoutNested):
		return LayoutNested
	default:
		return ""
	}
}
