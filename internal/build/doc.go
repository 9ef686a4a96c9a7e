// Package build runs feature navigation generation end to end.
//
// DefaultBuildService is the only orchestration path: the generate and watch
// commands and the tests all go through it. A run is one synchronous pass:
//
//	scan → load → classify → render (categories, versions) → publish → edit links
//
// Every stage failure aborts the run and is returned as a ClassifiedError.
// Nothing already written is rolled back.
package build
