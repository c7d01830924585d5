package metrics

import (
	"strings"
	"time"
)

// ResultLabel enumerates load outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultInvalid ResultLabel = "invalid"
)

// Recorder defines observability hooks for configuration loads.
type Recorder interface {
	ObserveLoadDuration(d time.Duration)
	IncLoadResult(result ResultLabel)
	IncValidationIssue(field string)
	IncNavFinding(locale string)
	SetLocales(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveLoadDuration(time.Duration) {}
func (NoopRecorder) IncLoadResult(ResultLabel)         {}
func (NoopRecorder) IncValidationIssue(string)         {}
func (NoopRecorder) IncNavFinding(string)              {}
func (NoopRecorder) SetLocales(int)                    {}

// Section reduces an issue field path to its top-level key so label
// cardinality stays bounded: "themeConfig.locales[/].nav[0].link" -> "themeConfig".
func Section(field string) string {
	if i := strings.IndexAny(field, ".["); i >= 0 {
		return field[:i]
	}
	return field
}
