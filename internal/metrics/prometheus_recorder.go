package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renderDuration *prom.HistogramVec
	renderOutcome  *prom.CounterVec
	fileWrites     *prom.CounterVec
	navEntries     prom.Gauge
	reloads        *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of rendering one output format",
			Buckets:   prom.DefBuckets,
		}, []string{"format"}),
		renderOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_outcomes_total",
			Help:      "Render outcomes by format and final status",
		}, []string{"format", "outcome"}),
		fileWrites: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "output_files_total",
			Help:      "Generated files by format, split by whether content changed",
		}, []string{"format", "result"}),
		navEntries: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "nav_entries",
			Help:      "Navigation entries in the last resolved site",
		}),
		reloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "config_reloads_total",
			Help:      "Configuration reloads triggered by the watcher",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.renderDuration, pr.renderOutcome, pr.fileWrites, pr.navEntries, pr.reloads)
	return pr
}

func (p *PrometheusRecorder) ObserveRenderDuration(format string, d time.Duration) {
	if p == nil {
		return
	}
	p.renderDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRenderOutcome(format string, outcome Outcome) {
	if p == nil {
		return
	}
	p.renderOutcome.WithLabelValues(format, string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncFileWrite(format string, changed bool) {
	if p == nil {
		return
	}
	res := "unchanged"
	if changed {
		res = "written"
	}
	p.fileWrites.WithLabelValues(format, res).Inc()
}

func (p *PrometheusRecorder) SetNavEntries(n int) {
	if p == nil {
		return
	}
	p.navEntries.Set(float64(n))
}

func (p *PrometheusRecorder) IncConfigReload(success bool) {
	if p == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.reloads.WithLabelValues(res).Inc()
}
