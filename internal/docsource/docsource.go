// Package docsource checks internal navigation links against the Markdown
// pages of the documentation source tree.
package docsource

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/frontmatter"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/markdown"
)

// Page is a resolved navigation target.
type Page struct {
	Link  string // nav link as configured
	Path  string // Markdown file under the docs root
	Title string // frontmatter title, else first level-1 heading
}

// Finding describes a nav link that does not resolve cleanly.
type Finding struct {
	Locale  string `json:"locale"`
	Text    string `json:"text"`
	Link    string `json:"link"`
	Message string `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %q -> %s: %s", f.Locale, f.Text, f.Link, f.Message)
}

// Tree is a documentation source directory.
type Tree struct {
	root string
}

// Open returns a Tree rooted at dir, which must exist.
func Open(dir string) (*Tree, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("docs directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs directory: %s is not a directory", dir)
	}
	return &Tree{root: dir}, nil
}

// Candidates lists, in lookup order, the files an internal link may be served from:
// "/guide/" -> guide/README.md, guide/index.md; "/guide/intro.html" -> guide/intro.md;
// "/guide/intro" -> guide/intro.md, guide/intro/README.md.
func Candidates(link string) []string {
	p, _ := splitAnchor(link)
	p = strings.TrimPrefix(p, "/")
	switch {
	case p == "" || strings.HasSuffix(p, "/"):
		return []string{p + "README.md", p + "index.md"}
	case strings.HasSuffix(p, ".html"):
		return []string{strings.TrimSuffix(p, ".html") + ".md"}
	case strings.HasSuffix(p, ".md"):
		return []string{p}
	default:
		return []string{p + ".md", p + "/README.md", p + "/index.md"}
	}
}

// Resolve finds the Markdown page an internal link points at.
func (t *Tree) Resolve(link string) (Page, error) {
	if !config.IsInternalLink(link) {
		return Page{}, fmt.Errorf("%s is not an internal link", link)
	}
	for _, rel := range Candidates(link) {
		full := filepath.Join(t.root, filepath.FromSlash(rel))
		if !t.contains(full) {
			return Page{}, fmt.Errorf("%s points outside the docs directory", link)
		}
		data, err := os.ReadFile(full)
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			continue
		}
		if err != nil {
			return Page{}, err
		}
		title, err := pageTitle(data)
		if err != nil {
			return Page{}, fmt.Errorf("%s: %w", rel, err)
		}
		return Page{Link: link, Path: full, Title: title}, nil
	}
	return Page{}, os.ErrNotExist
}

func (t *Tree) contains(p string) bool {
	rel, err := filepath.Rel(t.root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// CheckNav resolves every internal nav link of every locale and returns a
// finding for each link that has no page or points at a missing anchor.
// External links are not checked.
func (t *Tree) CheckNav(cfg *config.SiteConfig) []Finding {
	var findings []Finding
	for _, key := range cfg.LocaleKeys() {
		text, ok := cfg.ThemeText(key)
		if !ok {
			continue
		}
		text.Walk(func(e config.NavEntry) {
			if e.Link == "" || !config.IsInternalLink(e.Link) {
				return
			}
			if f, bad := t.checkLink(key, e); bad {
				slog.Debug("Nav link does not resolve", logfields.Locale(key), logfields.Link(e.Link))
				findings = append(findings, f)
			}
		})
	}
	return findings
}

func (t *Tree) checkLink(locale string, e config.NavEntry) (Finding, bool) {
	f := Finding{Locale: locale, Text: e.Text, Link: e.Link}
	if !strings.HasPrefix(e.Link, locale) {
		f.Message = fmt.Sprintf("link leaves locale %s", locale)
		return f, true
	}
	page, err := t.Resolve(e.Link)
	if errors.Is(err, os.ErrNotExist) {
		f.Message = "no page found (tried " + strings.Join(Candidates(e.Link), ", ") + ")"
		return f, true
	}
	if err != nil {
		f.Message = err.Error()
		return f, true
	}
	if _, anchor := splitAnchor(e.Link); anchor != "" {
		data, err := os.ReadFile(page.Path)
		if err != nil {
			f.Message = err.Error()
			return f, true
		}
		_, body, _, _ := frontmatter.Split(data)
		if !markdown.HasAnchor(body, anchor) {
			f.Message = fmt.Sprintf("page %s has no heading #%s", filepath.Base(page.Path), anchor)
			return f, true
		}
	}
	return f, false
}

func pageTitle(data []byte) (string, error) {
	fm, body, _, err := frontmatter.Split(data)
	if err != nil {
		return "", err
	}
	fields, err := frontmatter.ParseYAML(fm)
	if err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	if title := frontmatter.Title(fields); title != "" {
		return title, nil
	}
	return markdown.Title(body), nil
}

func splitAnchor(link string) (string, string) {
	if i := strings.IndexByte(link, '?'); i >= 0 {
		rest := link[i:]
		link = link[:i]
		if j := strings.IndexByte(rest, '#'); j >= 0 {
			return link, rest[j+1:]
		}
		return link, ""
	}
	p, anchor, _ := strings.Cut(link, "#")
	return p, anchor
}
