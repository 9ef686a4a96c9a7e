// Package antora writes the generated parts of the Antora documentation
// modules: per-axis navigation files, group index pages and include stubs
// that pull feature partials into every group a feature belongs to.
package antora
