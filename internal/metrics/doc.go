// Package metrics records generation metrics behind a small Recorder
// interface.
//
// Components hold a Recorder and default to NoopRecorder, so no nil checks
// are needed at call sites. The watch command swaps in a PrometheusRecorder
// and serves it with HTTPHandler:
//
//	reg := prometheus.NewRegistry()
//	gen := generator.New(outDir, generator.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//	http.Handle("/metrics", metrics.HTTPHandler(reg))
package metrics
