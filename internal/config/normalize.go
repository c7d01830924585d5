package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/siteconf/internal/foundation/normalization"
)

// NormalizationResult reports value rewrites performed by Normalize.
type NormalizationResult struct {
	Warnings []string
}

func (r *NormalizationResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Normalize trims surrounding whitespace and canonicalizes language tags in place.
// It never rewrites locale keys or links: invariant violations are left for Validate.
func Normalize(cfg *SiteConfig) *NormalizationResult {
	res := &NormalizationResult{}
	if cfg == nil {
		return res
	}
	cfg.Title = strings.TrimSpace(cfg.Title)
	cfg.Description = strings.TrimSpace(cfg.Description)

	for _, key := range cfg.LocaleKeys() {
		e := cfg.Locales[key]
		e.Title = strings.TrimSpace(e.Title)
		e.Description = strings.TrimSpace(e.Description)
		if tag, err := normalization.LanguageTag(e.Lang); err == nil && tag != e.Lang {
			res.warnf("normalized locales[%s].lang from '%s' to '%s'", key, e.Lang, tag)
			e.Lang = tag
		} else if err != nil {
			e.Lang = strings.TrimSpace(e.Lang)
		}
		cfg.Locales[key] = e
	}

	tc := &cfg.ThemeConfig
	tc.Repo = strings.TrimSpace(tc.Repo)
	tc.DocsBranch = strings.TrimSpace(tc.DocsBranch)
	tc.DocsDir = strings.TrimSpace(tc.DocsDir)
	for key, text := range tc.Locales {
		text.Nav = normalizeNav(text.Nav)
		tc.Locales[key] = text
	}
	for i := range cfg.Plugins {
		cfg.Plugins[i].Name = strings.TrimSpace(cfg.Plugins[i].Name)
	}
	return res
}

func normalizeNav(entries []NavEntry) []NavEntry {
	for i := range entries {
		entries[i].Text = strings.TrimSpace(entries[i].Text)
		entries[i].Link = strings.TrimSpace(entries[i].Link)
		entries[i].Items = normalizeNav(entries[i].Items)
	}
	return entries
}
