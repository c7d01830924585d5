package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHeadTagYAML(t *testing.T) {
	var tags []HeadTag
	doc := `
- [link, { rel: icon, href: /logo.png }]
- [meta]
- [script, {}, "console.log(1)"]
- [meta, { name: viewport, width: 100 }]
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &tags))
	require.Len(t, tags, 4)
	assert.Equal(t, HeadTag{Name: "link", Attrs: map[string]string{"rel": "icon", "href": "/logo.png"}}, tags[0])
	assert.Equal(t, HeadTag{Name: "meta"}, tags[1])
	assert.Equal(t, "console.log(1)", tags[2].Content)
	assert.Equal(t, "100", tags[3].Attrs["width"])

	for _, bad := range []string{"- link", "- []", "- [link, a, b, c]", "- [[x], {}]", "- [link, {}, [x]]"} {
		var out []HeadTag
		assert.Error(t, yaml.Unmarshal([]byte(bad), &out), bad)
	}
}

func TestHeadTagJSON(t *testing.T) {
	data, err := json.Marshal(HeadTag{Name: "meta", Attrs: map[string]string{"name": "theme-color", "content": "#fff"}})
	require.NoError(t, err)
	assert.JSONEq(t, `["meta", {"name": "theme-color", "content": "#fff"}]`, string(data))

	data, err = json.Marshal(HeadTag{Name: "script", Content: "x()"})
	require.NoError(t, err)
	assert.JSONEq(t, `["script", {}, "x()"]`, string(data))
}

func TestPluginYAML(t *testing.T) {
	var plugins []Plugin
	doc := `
- "@vuepress/back-to-top"
- ["@vuepress/medium-zoom"]
- ["@vuepress/google-analytics", false]
- ["@vuepress/pwa", { serviceWorker: true, popupComponent: MySWUpdatePopup }]
- ["@vuepress/search", {}]
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &plugins))
	require.Len(t, plugins, 5)
	assert.Equal(t, Plugin{Name: "@vuepress/back-to-top", Enabled: true}, plugins[0])
	assert.Equal(t, Plugin{Name: "@vuepress/medium-zoom", Enabled: true}, plugins[1])
	assert.Equal(t, Plugin{Name: "@vuepress/google-analytics", Enabled: false}, plugins[2])
	assert.Equal(t, map[string]any{"serviceWorker": true, "popupComponent": "MySWUpdatePopup"}, plugins[3].Options)
	assert.NotNil(t, plugins[4].Options)

	for _, bad := range []string{`- ""`, "- []", `- [pwa, "yes"]`, "- [pwa, [1]]", "- {pwa: true}"} {
		var out []Plugin
		assert.Error(t, yaml.Unmarshal([]byte(bad), &out), bad)
	}
}

func TestPluginJSON(t *testing.T) {
	data, err := json.Marshal([]Plugin{
		{Name: "a", Enabled: true},
		{Name: "b", Enabled: false},
		{Name: "c", Enabled: true, Options: map[string]any{"x": 1}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[["a", true], ["b", false], ["c", {"x": 1}]]`, string(data))
}
