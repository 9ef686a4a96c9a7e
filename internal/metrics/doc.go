// Package metrics records generation metrics.
//
// Components receive a Recorder and default to NoopRecorder, so callers
// never check for nil:
//
//	svc := build.NewService().WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// A CLI run has no scrape endpoint. When metrics.textfile is configured the
// registry is flushed once per run with WriteTextfile, in the node_exporter
// textfile collector format.
package metrics
