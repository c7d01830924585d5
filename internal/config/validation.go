package config

import (
	"fmt"
	"math"
	"net/url"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Issue is a single invariant violation.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string { return i.Field + ": " + i.Message }

// ValidationError collects every issue found in one validation pass.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}
	noun := "issue"
	if len(e.Issues) != 1 {
		noun = "issues"
	}
	return fmt.Sprintf("%d configuration %s: %s", len(e.Issues), noun, strings.Join(parts, "; "))
}

// Validate checks the structural invariants of the site configuration and
// returns a *ValidationError listing all violations, or nil.
func Validate(cfg *SiteConfig) error {
	if cfg == nil {
		return &ValidationError{Issues: []Issue{{Field: "config", Message: "configuration is nil"}}}
	}
	v := &validator{cfg: cfg}
	v.validateSite()
	v.validateLocales()
	v.validateThemeLocales()
	v.validateTheme()
	v.validateHead()
	v.validatePlugins()
	if len(v.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: v.issues}
}

type validator struct {
	cfg    *SiteConfig
	issues []Issue
}

func (v *validator) add(field, format string, args ...any) {
	v.issues = append(v.issues, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) validateSite() {
	if v.cfg.Title == "" {
		v.add("title", "must not be empty")
	}
}

func (v *validator) validateLocales() {
	if len(v.cfg.Locales) == 0 {
		v.add("locales", "at least the root locale %q must be configured", RootLocale)
		return
	}
	if _, ok := v.cfg.Locales[RootLocale]; !ok {
		v.add("locales", "missing default locale %q", RootLocale)
	}
	for _, key := range v.cfg.LocaleKeys() {
		field := fmt.Sprintf("locales[%s]", key)
		if msg := checkLocaleKey(key); msg != "" {
			v.add(field, "%s", msg)
		}
		entry := v.cfg.Locales[key]
		if entry.Lang == "" {
			v.add(field+".lang", "must not be empty")
		} else if _, err := language.Parse(entry.Lang); err != nil {
			v.add(field+".lang", "malformed language tag %q", entry.Lang)
		}
	}
}

// checkLocaleKey returns a description of what is wrong with key, or "".
func checkLocaleKey(key string) string {
	if key == RootLocale {
		return ""
	}
	if !strings.HasPrefix(key, "/") || !strings.HasSuffix(key, "/") {
		return "locale path must begin and end with \"/\""
	}
	if strings.Trim(key, "/") == "" || path.Clean(key)+"/" != key {
		return "locale path must be a clean path"
	}
	if strings.ContainsAny(key, " \t?#") {
		return "locale path must not contain whitespace, '?' or '#'"
	}
	return ""
}

func (v *validator) validateThemeLocales() {
	themeKeys := make([]string, 0, len(v.cfg.ThemeConfig.Locales))
	for k := range v.cfg.ThemeConfig.Locales {
		themeKeys = append(themeKeys, k)
	}
	sort.Strings(themeKeys)

	for _, key := range v.cfg.LocaleKeys() {
		if _, ok := v.cfg.ThemeConfig.Locales[key]; !ok {
			v.add(fmt.Sprintf("themeConfig.locales[%s]", key), "missing theme text for configured locale")
		}
	}
	for _, key := range themeKeys {
		if _, ok := v.cfg.Locales[key]; !ok {
			v.add(fmt.Sprintf("themeConfig.locales[%s]", key), "theme text for unknown locale")
		}
		text := v.cfg.ThemeConfig.Locales[key]
		v.validateNav(fmt.Sprintf("themeConfig.locales[%s].nav", key), text.Nav)
		if sw := text.ServiceWorker; sw != nil {
			if sw.UpdatePopup.Message == "" || sw.UpdatePopup.ButtonText == "" {
				v.add(fmt.Sprintf("themeConfig.locales[%s].serviceWorker.updatePopup", key), "message and buttonText are required")
			}
		}
		if text.Algolia != nil {
			if msg := checkOptionValue(map[string]any(*text.Algolia)); msg != "" {
				v.add(fmt.Sprintf("themeConfig.locales[%s].algolia", key), "%s", msg)
			}
		}
	}
}

func (v *validator) validateNav(field string, entries []NavEntry) {
	for i, e := range entries {
		f := fmt.Sprintf("%s[%d]", field, i)
		if e.Text == "" {
			v.add(f+".text", "must not be empty")
		}
		switch {
		case e.Link == "" && len(e.Items) == 0:
			v.add(f+".link", "nav entry needs a link or items")
		case e.Link != "":
			if msg := CheckLink(e.Link); msg != "" {
				v.add(f+".link", "%s", msg)
			}
		}
		v.validateNav(f+".items", e.Items)
	}
}

// CheckLink reports why link is neither an internal path ("/...") nor a
// well-formed absolute URL; "" means the link is acceptable.
func CheckLink(link string) string {
	if IsInternalLink(link) {
		if strings.ContainsAny(link, " \t") {
			return fmt.Sprintf("internal link %q must not contain whitespace", link)
		}
		p, _, _ := strings.Cut(link, "#")
		p, _, _ = strings.Cut(p, "?")
		for _, seg := range strings.Split(p, "/") {
			if seg == ".." {
				return fmt.Sprintf("internal link %q must not contain \"..\" segments", link)
			}
		}
		return ""
	}
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Sprintf("malformed link %q", link)
	}
	if !u.IsAbs() {
		return fmt.Sprintf("link %q must be a path beginning with \"/\" or an absolute URL", link)
	}
	if u.Scheme == "mailto" {
		if u.Opaque == "" {
			return fmt.Sprintf("mailto link %q has no address", link)
		}
		return ""
	}
	if u.Host == "" {
		return fmt.Sprintf("link %q has no host", link)
	}
	return ""
}

// IsInternalLink reports whether link points into the site itself.
func IsInternalLink(link string) bool {
	return strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//")
}

func (v *validator) validateTheme() {
	tc := v.cfg.ThemeConfig
	if tc.Repo != "" {
		if msg := checkRepo(tc.Repo); msg != "" {
			v.add("themeConfig.repo", "%s", msg)
		}
	}
	if tc.EditLinks && tc.Repo == "" {
		v.add("themeConfig.editLinks", "edit links require themeConfig.repo")
	}
	if tc.DocsDir != "" {
		if path.IsAbs(tc.DocsDir) || strings.HasPrefix(path.Clean(tc.DocsDir), "..") {
			v.add("themeConfig.docsDir", "must be a path relative to the repository root")
		}
	}
	if strings.ContainsAny(tc.DocsBranch, " \t~^:") {
		v.add("themeConfig.docsBranch", "invalid branch name %q", tc.DocsBranch)
	}
}

func checkRepo(repo string) string {
	if strings.Contains(repo, "://") {
		u, err := url.Parse(repo)
		if err != nil || u.Host == "" {
			return fmt.Sprintf("malformed repository URL %q", repo)
		}
		return ""
	}
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Sprintf("repository %q must be a URL or owner/name", repo)
	}
	return ""
}

func (v *validator) validateHead() {
	for i, h := range v.cfg.Head {
		f := fmt.Sprintf("head[%d]", i)
		if h.Name == "" {
			v.add(f, "tag name must not be empty")
		}
		for k := range h.Attrs {
			if strings.TrimSpace(k) == "" {
				v.add(f, "attribute names must not be empty")
				break
			}
		}
	}
}

func (v *validator) validatePlugins() {
	seen := make(map[string]bool, len(v.cfg.Plugins))
	for i, p := range v.cfg.Plugins {
		f := fmt.Sprintf("plugins[%d]", i)
		if p.Name == "" {
			v.add(f, "plugin name must not be empty")
			continue
		}
		if seen[p.Name] {
			v.add(f, "duplicate plugin %q", p.Name)
		}
		seen[p.Name] = true
		if p.Options != nil {
			if msg := checkOptionValue(p.Options); msg != "" {
				v.add(f+".options", "%s", msg)
			}
		}
	}
}

// checkOptionValue reports free-form option values the generator formats
// (JSON, CommonJS) cannot represent: mappings with non-string keys and
// non-finite numbers.
func checkOptionValue(value any) string {
	switch t := value.(type) {
	case map[string]any:
		for _, k := range sortedKeys(t) {
			if msg := checkOptionValue(t[k]); msg != "" {
				return k + ": " + msg
			}
		}
	case []any:
		for i, e := range t {
			if msg := checkOptionValue(e); msg != "" {
				return fmt.Sprintf("[%d]: %s", i, msg)
			}
		}
	case map[any]any:
		return "mapping keys must be strings"
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "numbers must be finite"
		}
	}
	return ""
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
