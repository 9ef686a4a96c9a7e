package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopRecorderSatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	assert.NotPanics(t, func() {
		r.ObserveStageDuration("scan", time.Second)
		r.ObserveRunDuration(time.Second)
		r.IncStageResult("scan", ResultFatal)
		r.IncRunOutcome(OutcomeCanceled)
		r.SetDocuments(1)
		r.SetGroups("versions", 1)
		r.AddFilesWritten(KindNavigation, 2)
		r.AddIndexPages("versions", 0, 1)
	})
}

var _ Recorder = (*PrometheusRecorder)(nil)
