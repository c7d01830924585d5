package lint

import (
	"errors"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/docsource"
	"git.home.luguber.info/inful/siteconf/internal/gitcheck"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
)

// Linter loads a configuration file and reports every problem it finds.
type Linter struct {
	cfg      *Config
	recorder metrics.Recorder
}

// NewLinter creates a new linter. A nil recorder disables metrics.
func NewLinter(cfg *Config, recorder metrics.Recorder) *Linter {
	if cfg == nil {
		cfg = &Config{Format: "text"}
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Linter{cfg: cfg, recorder: recorder}
}

// LintFile loads configPath and collects load, invariant and nav-target issues.
// Configuration problems are reported as issues; the error return is reserved
// for an unusable docs directory or git checkout.
func (l *Linter) LintFile(configPath string) (*Result, error) {
	result := &Result{ConfigPath: configPath, Issues: []Issue{}}

	start := time.Now()
	cfg, warnings, err := config.LoadWithWarnings(configPath)
	l.recorder.ObserveLoadDuration(time.Since(start))

	for _, w := range warnings {
		result.Issues = append(result.Issues, Issue{Severity: SeverityInfo, Rule: RuleNormalize, Message: w})
	}

	if err != nil {
		l.recorder.IncLoadResult(metrics.ResultInvalid)
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			for _, is := range verr.Issues {
				l.recorder.IncValidationIssue(is.Field)
				result.Issues = append(result.Issues, Issue{
					Severity: SeverityError,
					Rule:     RuleInvariant,
					Field:    is.Field,
					Message:  is.Message,
				})
			}
		} else {
			result.Issues = append(result.Issues, Issue{Severity: SeverityError, Rule: RuleLoad, Message: err.Error()})
		}
		slog.Debug("Configuration rejected", logfields.Path(configPath), logfields.Count(result.ErrorCount()))
		return l.filter(result), nil
	}

	l.recorder.IncLoadResult(metrics.ResultSuccess)
	l.recorder.SetLocales(len(cfg.Locales))
	result.Config = cfg
	result.Snapshot = cfg.Snapshot()

	if l.cfg.DocsDir != "" {
		tree, err := docsource.Open(l.cfg.DocsDir)
		if err != nil {
			return nil, err
		}
		for _, f := range tree.CheckNav(cfg) {
			l.recorder.IncNavFinding(f.Locale)
			result.Issues = append(result.Issues, Issue{
				Severity: SeverityWarning,
				Rule:     RuleNavTarget,
				Field:    "themeConfig.locales[" + f.Locale + "].nav",
				Message:  f.Text + " (" + f.Link + "): " + f.Message,
			})
		}
	}
	if l.cfg.RepoDir != "" {
		findings, err := gitcheck.Check(l.cfg.RepoDir, cfg.ThemeConfig)
		if err != nil {
			return nil, err
		}
		for _, f := range findings {
			result.Issues = append(result.Issues, Issue{Severity: SeverityWarning, Rule: RuleSource, Field: f.Field, Message: f.Message})
		}
	}
	return l.filter(result), nil
}

func (l *Linter) filter(r *Result) *Result {
	if !l.cfg.Quiet {
		return r
	}
	kept := r.Issues[:0]
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			kept = append(kept, is)
		}
	}
	r.Issues = kept
	return r
}
