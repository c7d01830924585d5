package lint

import "git.home.luguber.info/inful/siteconf/internal/config"

// Severity indicates the importance level of a linting issue.
type Severity int

const (
	// SeverityInfo marks value rewrites performed by normalization.
	SeverityInfo Severity = iota
	// SeverityWarning marks problems the generator tolerates (dangling nav targets).
	SeverityWarning
	// SeverityError marks problems that make the configuration unloadable.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Rule identifiers.
const (
	RuleLoad      = "load"       // file missing or malformed
	RuleInvariant = "invariant"  // structural invariant violated
	RuleNavTarget = "nav-target" // internal nav link has no page
	RuleNormalize = "normalize"  // value was canonicalized
	RuleSource    = "source"     // repo settings disagree with the git checkout
)

// Issue represents a single problem found in the configuration.
type Issue struct {
	Severity Severity
	Rule     string
	Field    string // configuration path, e.g. themeConfig.locales[/].nav[0].link
	Message  string
}

// Result contains all issues found for one configuration file.
type Result struct {
	ConfigPath string
	Config     *config.SiteConfig // nil when the file failed to load
	Snapshot   string
	Issues     []Issue
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool { return r.ErrorCount() > 0 }

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

// InfoCount returns the number of info-level issues.
func (r *Result) InfoCount() int { return r.count(SeverityInfo) }

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Config contains configuration for the linter.
type Config struct {
	// DocsDir enables nav target checks against this documentation tree.
	DocsDir string

	// RepoDir enables docsBranch/docsDir/repo checks against this git checkout.
	RepoDir string

	// Quiet suppresses warnings and info, only showing errors.
	Quiet bool

	// Format specifies output format (text, json).
	Format string
}
