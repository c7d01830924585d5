package docsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/siteconf/internal/config"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func docsTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "README.md", "# Velox\n")
	writeFile(t, root, "guide/README.md", "---\ntitle: Guide\n---\n# Introduction\n\n## Installation\n")
	writeFile(t, root, "zh-cn/guide/README.md", "# 指南\n")
	return root
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, []string{"README.md", "index.md"}, Candidates("/"))
	assert.Equal(t, []string{"guide/README.md", "guide/index.md"}, Candidates("/guide/#install"))
	assert.Equal(t, []string{"guide/intro.md"}, Candidates("/guide/intro.html"))
	assert.Equal(t, []string{"guide/intro.md"}, Candidates("/guide/intro.md"))
	assert.Equal(t, []string{"api.md", "api/README.md", "api/index.md"}, Candidates("/api?x=1"))
}

func TestResolve(t *testing.T) {
	tree, err := Open(docsTree(t))
	require.NoError(t, err)

	page, err := tree.Resolve("/guide/")
	require.NoError(t, err)
	assert.Equal(t, "Guide", page.Title, "frontmatter title wins")

	page, err = tree.Resolve("/zh-cn/guide/")
	require.NoError(t, err)
	assert.Equal(t, "指南", page.Title)

	_, err = tree.Resolve("/api/")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = tree.Resolve("https://example.com")
	assert.Error(t, err)
}

func TestResolveStaysInsideRoot(t *testing.T) {
	parent := t.TempDir()
	writeFile(t, parent, "secret/README.md", "# Secret\n")
	root := filepath.Join(parent, "docs")
	writeFile(t, root, "README.md", "# Home\n")

	tree, err := Open(root)
	require.NoError(t, err)

	_, err = tree.Resolve("/../secret/")
	require.Error(t, err)
	assert.NotErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "outside the docs directory")

	_, err = tree.Resolve("/../../../../../../etc/hostname")
	assert.Error(t, err)
}

func TestResolveFileShadowingDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "guide", "not a directory")

	tree, err := Open(root)
	require.NoError(t, err)

	_, err = tree.Resolve("/guide/intro")
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg := config.Default()
	en := cfg.ThemeConfig.Locales[config.RootLocale]
	en.Nav = []config.NavEntry{{Text: "Intro", Link: "/guide/intro"}}
	cfg.ThemeConfig.Locales[config.RootLocale] = en
	zh := cfg.ThemeConfig.Locales["/zh-cn/"]
	zh.Nav = nil
	cfg.ThemeConfig.Locales["/zh-cn/"] = zh

	findings := tree.CheckNav(cfg)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "no page found")
}

func TestOpen(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	f := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(f, nil, 0o644))
	_, err = Open(f)
	assert.Error(t, err)
}

func TestCheckNav(t *testing.T) {
	tree, err := Open(docsTree(t))
	require.NoError(t, err)

	cfg := config.Default()
	en := cfg.ThemeConfig.Locales[config.RootLocale]
	en.Nav = append(en.Nav,
		config.NavEntry{Text: "Install", Link: "/guide/#installation"},
		config.NavEntry{Text: "Missing anchor", Link: "/guide/#nope"},
		config.NavEntry{Text: "Chinese", Link: "/zh-cn/guide/"},
	)
	cfg.ThemeConfig.Locales[config.RootLocale] = en

	findings := tree.CheckNav(cfg)
	links := map[string]string{}
	for _, f := range findings {
		links[f.Locale+" "+f.Link] = f.Message
	}

	assert.Contains(t, links, "/zh-cn/ /zh-cn/", "no zh-cn/README.md")
	assert.Contains(t, links, "/ /guide/#nope")
	assert.NotContains(t, links, "/ /")
	assert.NotContains(t, links, "/ /guide/#installation")
	assert.NotContains(t, links, "/ /guide/")
	assert.NotContains(t, links, "/zh-cn/ /zh-cn/guide/")
	assert.Len(t, findings, 2)
}

func TestCheckNavFlagsCrossLocaleLinks(t *testing.T) {
	tree, err := Open(docsTree(t))
	require.NoError(t, err)

	cfg := config.Default()
	zh := cfg.ThemeConfig.Locales["/zh-cn/"]
	zh.Nav = []config.NavEntry{{Text: "Guide", Link: "/guide/"}}
	cfg.ThemeConfig.Locales["/zh-cn/"] = zh

	findings := tree.CheckNav(cfg)
	var found bool
	for _, f := range findings {
		if f.Locale == "/zh-cn/" && f.Link == "/guide/" {
			found = true
			assert.Contains(t, f.Message, "leaves locale")
		}
	}
	assert.True(t, found)
}
