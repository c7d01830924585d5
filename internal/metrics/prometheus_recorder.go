package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg              *prom.Registry
	loadDuration     prom.Histogram
	loadResults      *prom.CounterVec
	validationIssues *prom.CounterVec
	navFindings      *prom.CounterVec
	locales          prom.Gauge
}

// NewPrometheusRecorder constructs and registers the metrics on reg (a fresh
// registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.loadDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "siteconf",
		Name:      "load_duration_seconds",
		Help:      "Duration of configuration load and validation",
		Buckets:   prom.DefBuckets,
	})
	pr.loadResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "siteconf",
		Name:      "loads_total",
		Help:      "Configuration loads by result",
	}, []string{"result"})
	pr.validationIssues = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "siteconf",
		Name:      "validation_issues_total",
		Help:      "Validation issues by top-level configuration section",
	}, []string{"section"})
	pr.navFindings = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "siteconf",
		Name:      "nav_findings_total",
		Help:      "Navigation links that do not resolve to a page, by locale",
	}, []string{"locale"})
	pr.locales = prom.NewGauge(prom.GaugeOpts{
		Namespace: "siteconf",
		Name:      "locales",
		Help:      "Number of configured locales in the last successful load",
	})
	reg.MustRegister(pr.loadDuration, pr.loadResults, pr.validationIssues, pr.navFindings, pr.locales)
	return pr
}

func (p *PrometheusRecorder) ObserveLoadDuration(d time.Duration) {
	p.loadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLoadResult(result ResultLabel) {
	p.loadResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncValidationIssue(field string) {
	p.validationIssues.WithLabelValues(Section(field)).Inc()
}

func (p *PrometheusRecorder) IncNavFinding(locale string) {
	p.navFindings.WithLabelValues(locale).Inc()
}

func (p *PrometheusRecorder) SetLocales(n int) {
	p.locales.Set(float64(n))
}

// Registry exposes the underlying registry.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile writes all metrics in text exposition format to path, for the
// node-exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
