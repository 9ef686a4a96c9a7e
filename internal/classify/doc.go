// Package classify groups feature documents along independent axes.
//
// Both axes (categories and versions) share one grouping routine,
// parameterized by an Axis: how many labels a document contributes, how a
// label is normalized into a group key, and where group display titles come
// from. Groups are ordered by key and members by title, so every consumer
// iterates the same deterministic structure.
package classify
