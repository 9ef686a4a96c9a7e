package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFatal    ResultLabel = "fatal"
	ResultSkipped  ResultLabel = "skipped"
	ResultCanceled ResultLabel = "canceled"
)

// OutcomeLabel is the final status of one generation run.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeCanceled OutcomeLabel = "canceled"
)

// File kinds reported to AddFilesWritten.
const (
	KindNavigation = "navigation"
	KindIndex      = "index"
	KindStub       = "stub"
	KindPartial    = "partial"
	KindManifest   = "manifest"
)

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncRunOutcome(outcome OutcomeLabel)
	SetDocuments(n int)
	SetGroups(axis string, n int)
	AddFilesWritten(kind string, n int)
	AddIndexPages(axis string, created, preserved int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)           {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)                 {}
func (NoopRecorder) SetDocuments(int)                           {}
func (NoopRecorder) SetGroups(string, int)                      {}
func (NoopRecorder) AddFilesWritten(string, int)                {}
func (NoopRecorder) AddIndexPages(string, int, int)             {}
