package config

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestDefaultLocaleKeysAreSlashDelimited(t *testing.T) {
	for _, key := range Default().LocaleKeys() {
		assert.True(t, strings.HasPrefix(key, "/"), key)
		assert.True(t, strings.HasSuffix(key, "/"), key)
	}
}

func TestDefaultLocaleKeySetsAgree(t *testing.T) {
	cfg := Default()
	themeKeys := make([]string, 0)
	for k := range cfg.ThemeConfig.Locales {
		themeKeys = append(themeKeys, k)
	}
	assert.ElementsMatch(t, cfg.LocaleKeys(), themeKeys)
}

func TestDefaultNavLinks(t *testing.T) {
	cfg := Default()
	for _, key := range cfg.LocaleKeys() {
		text, ok := cfg.ThemeText(key)
		require.True(t, ok, key)
		text.Walk(func(e NavEntry) {
			if e.Link == "" {
				return
			}
			if strings.HasPrefix(e.Link, "/") {
				return
			}
			u, err := url.Parse(e.Link)
			require.NoError(t, err)
			assert.True(t, u.IsAbs() && u.Host != "", e.Link)
		})
	}
}

func TestDefaultChineseLocale(t *testing.T) {
	cfg := Default()
	zh, ok := cfg.Locale("/zh-cn/")
	require.True(t, ok)
	assert.Equal(t, "zh-CN", zh.Lang)

	text, ok := cfg.ThemeText("/zh-cn/")
	require.True(t, ok)
	var links []string
	text.Walk(func(e NavEntry) { links = append(links, e.Link) })
	assert.Contains(t, links, "/zh-cn/guide/")
}

func TestDefaultReturnsFreshValue(t *testing.T) {
	a := Default()
	a.Title = "changed"
	a.ThemeConfig.Locales[RootLocale] = LocaleThemeText{}
	a.Head[2].Attrs["content"] = "IE=8"
	zh := a.ThemeConfig.Locales["/zh-cn/"]
	(*zh.Algolia)["indexName"] = "changed"

	b := Default()
	assert.Equal(t, "Bottle", b.Title)
	assert.NotEmpty(t, b.ThemeConfig.Locales[RootLocale].Nav)
	assert.Equal(t, "IE=edge, chrome=1", b.Head[2].Attrs["content"])
	assert.Empty(t, *b.ThemeConfig.Locales["/zh-cn/"].Algolia)
	assert.Equal(t, Default().Snapshot(), b.Snapshot())
}

func TestDefaultHead(t *testing.T) {
	head := Default().Head
	require.Len(t, head, 9)
	assert.Equal(t, HeadTag{Name: "meta", Attrs: map[string]string{
		"http-equiv": "X-UA-Compatible",
		"content":    "IE=edge, chrome=1",
	}}, head[2])
	assert.Equal(t, HeadTag{Name: "link", Attrs: map[string]string{"rel": "icon", "href": "/favicon.ico"}}, head[8])
	for _, h := range head[:8] {
		assert.Equal(t, "meta", h.Name)
	}
}

func TestDefaultHomeLinks(t *testing.T) {
	cfg := Default()
	for key, home := range map[string]string{RootLocale: "Home", "/zh-cn/": "首页"} {
		text, ok := cfg.ThemeText(key)
		require.True(t, ok, key)
		require.NotEmpty(t, text.Nav, key)
		assert.Equal(t, NavEntry{Text: home, Link: key}, text.Nav[0])
	}
}

func TestDefaultThemeAndPlugins(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "main", cfg.ThemeConfig.DocsBranch)
	assert.Equal(t, "docs/", cfg.ThemeConfig.DocsDir)
	assert.Equal(t, []Plugin{{Name: "@vuepress/plugin-back-to-top", Enabled: true}}, cfg.Plugins)

	en, _ := cfg.ThemeText(RootLocale)
	assert.Equal(t, "Languages", en.AriaLabel)
	for _, key := range cfg.LocaleKeys() {
		text, _ := cfg.ThemeText(key)
		assert.NotNil(t, text.Algolia, key)
	}
}

func TestSnapshotDetectsChange(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	b.ThemeConfig.Locales["/zh-cn/"].Nav[0].Link = "/zh-cn/guide/intro.html"
	assert.NotEqual(t, a.Snapshot(), b.Snapshot())

	var nilCfg *SiteConfig
	assert.Empty(t, nilCfg.Snapshot())
}
