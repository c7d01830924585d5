package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorMatchesJSONShape(t *testing.T) {
	for name, cfg := range map[string]*SiteConfig{
		"default": Default(),
		"fixture": mustLoad(t, filepath.Join("testdata", "siteconf.yaml")),
	} {
		t.Run(name, func(t *testing.T) {
			want, err := json.Marshal(cfg)
			require.NoError(t, err)
			got, err := json.Marshal(cfg.Generator())
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}

func TestGeneratorTopLevelKeys(t *testing.T) {
	g := Default().Generator()
	for _, key := range []string{"title", "description", "locales", "head", "themeConfig", "plugins"} {
		assert.Contains(t, g, key)
	}
	theme := g["themeConfig"].(map[string]any)
	for _, key := range []string{"repo", "docsBranch", "docsDir", "editLinks", "locales"} {
		assert.Contains(t, theme, key)
	}
}

func TestGeneratorDoesNotAlias(t *testing.T) {
	cfg := Default()
	en := cfg.ThemeConfig.Locales[RootLocale]
	en.Algolia = &DocSearch{"algoliaOptions": map[string]any{"facetFilters": []any{"lang:en-US"}}}
	cfg.ThemeConfig.Locales[RootLocale] = en
	cfg.Plugins = append(cfg.Plugins, Plugin{Name: "search", Enabled: true, Options: map[string]any{"searchMaxSuggestions": 10}})
	g := cfg.Generator()

	theme := g["themeConfig"].(map[string]any)
	algolia := theme["locales"].(map[string]any)[RootLocale].(map[string]any)["algolia"].(map[string]any)
	algolia["algoliaOptions"].(map[string]any)["facetFilters"].([]any)[0] = "lang:zh-CN"
	search := g["plugins"].([]any)[1].([]any)[1].(map[string]any)
	search["searchMaxSuggestions"] = 5
	head := g["head"].([]any)[8].([]any)[1].(map[string]string)
	head["href"] = "/changed.png"

	opts := (*cfg.ThemeConfig.Locales[RootLocale].Algolia)["algoliaOptions"].(map[string]any)
	assert.Equal(t, "lang:en-US", opts["facetFilters"].([]any)[0])
	p, _ := cfg.Plugin("search")
	assert.Equal(t, 10, p.Options["searchMaxSuggestions"])
	assert.Equal(t, "/favicon.ico", cfg.Head[8].Attrs["href"])
}

func TestGeneratorOmitsEmptyOptional(t *testing.T) {
	g := minimalCfg().Generator()
	assert.NotContains(t, g, "description")
	assert.NotContains(t, g, "head")
	assert.NotContains(t, g, "plugins")
	theme := g["themeConfig"].(map[string]any)
	assert.Equal(t, false, theme["editLinks"])
	assert.NotContains(t, theme, "repo")
}

func mustLoad(t *testing.T, path string) *SiteConfig {
	t.Helper()
	cfg, err := Load(path)
	require.NoError(t, err)
	return cfg
}
