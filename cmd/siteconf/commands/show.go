package commands

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"git.home.luguber.info/inful/siteconf/internal/config"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Builtin bool `help:"Show the built-in default configuration instead of loading --config"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	cfg := config.Default()
	if !s.Builtin {
		var err error
		if cfg, err = config.Load(root.Config); err != nil {
			return err
		}
	}
	return writeSummary(g.out(), cfg)
}

func writeSummary(w io.Writer, cfg *config.SiteConfig) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", cfg.Title)
	if cfg.Description != "" {
		fmt.Fprintf(&b, "  %s\n", cfg.Description)
	}
	fmt.Fprintf(&b, "snapshot: %s\n", cfg.Snapshot())
	if repo := cfg.ThemeConfig.Repo; repo != "" {
		fmt.Fprintf(&b, "repo: %s (branch %s, dir %s, edit links %t)\n",
			repo, orDash(cfg.ThemeConfig.DocsBranch), orDash(cfg.ThemeConfig.DocsDir), cfg.ThemeConfig.EditLinks)
	}

	for _, key := range cfg.LocaleKeys() {
		entry, _ := cfg.Locale(key)
		fmt.Fprintf(&b, "\nlocale %s  %s (%s)\n", key, entry.Lang, languageName(entry.Lang))
		text, ok := cfg.ThemeText(key)
		if !ok {
			continue
		}
		writeNav(&b, text.Nav, "  ")
	}

	if len(cfg.Plugins) > 0 {
		b.WriteString("\nplugins:\n")
		for _, p := range cfg.Plugins {
			state := "enabled"
			if !p.Enabled {
				state = "disabled"
			}
			fmt.Fprintf(&b, "  %s (%s)\n", p.Name, state)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNav(b *strings.Builder, entries []config.NavEntry, indent string) {
	for _, e := range entries {
		if e.Link != "" {
			fmt.Fprintf(b, "%s%s -> %s\n", indent, e.Text, e.Link)
		} else {
			fmt.Fprintf(b, "%s%s\n", indent, e.Text)
		}
		writeNav(b, e.Items, indent+"  ")
	}
}

// languageName renders the English name of lang followed by its own name,
// e.g. "Chinese (China), 中文（中国）".
func languageName(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	en := display.English.Tags().Name(tag)
	self := display.Self.Name(tag)
	if self == "" || self == en {
		return en
	}
	return en + ", " + self
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
