package metrics

import "time"

// Outcome enumerates render result categories for counters.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Recorder defines observability hooks for config generation. Implementations
// may forward to Prometheus or anything else; NoopRecorder is the default.
type Recorder interface {
	ObserveRenderDuration(format string, d time.Duration)
	IncRenderOutcome(format string, outcome Outcome)
	IncFileWrite(format string, changed bool)
	SetNavEntries(n int)
	IncConfigReload(success bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncRenderOutcome(string, Outcome)            {}
func (NoopRecorder) IncFileWrite(string, bool)                   {}
func (NoopRecorder) SetNavEntries(int)                           {}
func (NoopRecorder) IncConfigReload(bool)                        {}
