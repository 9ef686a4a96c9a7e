package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("scan", 150*time.Millisecond)
	pr.ObserveRunDuration(500 * time.Millisecond)
	pr.IncStageResult("scan", ResultSuccess)
	pr.IncRunOutcome(OutcomeSuccess)
	pr.SetDocuments(3)
	pr.SetGroups("categories", 2)
	pr.AddFilesWritten(KindStub, 4)
	pr.AddFilesWritten(KindStub, 0)
	pr.AddIndexPages("versions", 1, 2)

	assert.InDelta(t, 3, testutil.ToFloat64(pr.documents), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.groups.WithLabelValues("categories")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(pr.filesWritten.WithLabelValues(KindStub)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.indexPages.WithLabelValues("versions", "created")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.indexPages.WithLabelValues("versions", "preserved")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.runOutcome.WithLabelValues(string(OutcomeSuccess))), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.SetDocuments(7)

	path := filepath.Join(t.TempDir(), "textfile", "featurenav.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "featurenav_documents 7"), string(data))
}

func TestNilPrometheusRecorder(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.SetDocuments(1)
		pr.IncRunOutcome(OutcomeFailed)
		pr.AddIndexPages("categories", 1, 1)
	})
}
