package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats linting results for output.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter returns the formatter for "text" or "json".
func NewFormatter(format string) Formatter {
	if strings.EqualFold(format, "json") {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Checking site configuration: %s\n", result.ConfigPath)
	b.WriteString(strings.Repeat("━", 60) + "\n")

	for _, issue := range result.Issues {
		icon := "ℹ"
		switch issue.Severity {
		case SeverityError:
			icon = "✗"
		case SeverityWarning:
			icon = "⚠"
		}
		if issue.Field != "" {
			fmt.Fprintf(&b, "%s %s [%s] %s: %s\n", icon, issue.Severity, issue.Rule, issue.Field, issue.Message)
		} else {
			fmt.Fprintf(&b, "%s %s [%s] %s\n", icon, issue.Severity, issue.Rule, issue.Message)
		}
	}
	if len(result.Issues) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("━", 60) + "\n")
	b.WriteString("Results:\n")
	if result.Config != nil {
		fmt.Fprintf(&b, "  %d locales: %s\n", len(result.Config.Locales), strings.Join(result.Config.LocaleKeys(), ", "))
		fmt.Fprintf(&b, "  snapshot %s\n", shortSnapshot(result.Snapshot))
	}
	if n := result.ErrorCount(); n > 0 {
		fmt.Fprintf(&b, "  %d error%s (configuration rejected)\n", n, pluralize(n))
	}
	if n := result.WarningCount(); n > 0 {
		fmt.Fprintf(&b, "  %d warning%s (should fix)\n", n, pluralize(n))
	}
	if n := result.InfoCount(); n > 0 {
		fmt.Fprintf(&b, "  %d info (normalized values)\n", n)
	}
	b.WriteString("\n")

	switch {
	case result.HasErrors():
		b.WriteString("❌ Site configuration is invalid.\n")
	case result.WarningCount() > 0:
		b.WriteString("⚠️  Site configuration loads, with warnings.\n")
	default:
		b.WriteString("✨ Site configuration is valid.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func shortSnapshot(s string) string {
	if len(s) > 12 {
		return s[:12]
	}
	return s
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Path         string      `json:"path"`
	Valid        bool        `json:"valid"`
	Snapshot     string      `json:"snapshot,omitempty"`
	Locales      []string    `json:"locales,omitempty"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	InfoCount    int         `json:"info_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

// Format outputs results as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	out := JSONOutput{
		Path:         result.ConfigPath,
		Valid:        !result.HasErrors(),
		Snapshot:     result.Snapshot,
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		InfoCount:    result.InfoCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}
	if result.Config != nil {
		out.Locales = result.Config.LocaleKeys()
	}
	for _, is := range result.Issues {
		out.Issues = append(out.Issues, JSONIssue{
			Severity: strings.ToLower(is.Severity.String()),
			Rule:     is.Rule,
			Field:    is.Field,
			Message:  is.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
