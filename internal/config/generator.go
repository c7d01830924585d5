package config

// Generator returns the configuration in the shape the site generator reads:
// title, description, locales, head, themeConfig and plugins, with head tags and
// plugins in tuple form. The result shares no mutable state with c.
func (c *SiteConfig) Generator() map[string]any {
	root := map[string]any{
		"title":       c.Title,
		"locales":     generatorLocales(c.Locales),
		"themeConfig": generatorTheme(c.ThemeConfig),
	}
	if c.Description != "" {
		root["description"] = c.Description
	}
	if len(c.Head) > 0 {
		head := make([]any, 0, len(c.Head))
		for _, h := range c.Head {
			t := h.tuple()
			t[1] = copyStrings(t[1].(map[string]string))
			head = append(head, t)
		}
		root["head"] = head
	}
	if len(c.Plugins) > 0 {
		plugins := make([]any, 0, len(c.Plugins))
		for _, p := range c.Plugins {
			if p.Options != nil {
				plugins = append(plugins, []any{p.Name, deepCopy(p.Options)})
				continue
			}
			plugins = append(plugins, []any{p.Name, p.Enabled})
		}
		root["plugins"] = plugins
	}
	return root
}

func generatorLocales(locales map[string]LocaleEntry) map[string]any {
	out := make(map[string]any, len(locales))
	for key, e := range locales {
		m := map[string]any{"lang": e.Lang}
		putString(m, "title", e.Title)
		putString(m, "description", e.Description)
		out[key] = m
	}
	return out
}

func generatorTheme(tc ThemeConfig) map[string]any {
	out := map[string]any{"editLinks": tc.EditLinks}
	putString(out, "repo", tc.Repo)
	putString(out, "docsBranch", tc.DocsBranch)
	putString(out, "docsDir", tc.DocsDir)

	locales := make(map[string]any, len(tc.Locales))
	for key, text := range tc.Locales {
		m := map[string]any{}
		putString(m, "selectText", text.SelectText)
		putString(m, "label", text.Label)
		putString(m, "ariaLabel", text.AriaLabel)
		putString(m, "editLinkText", text.EditLinkText)
		putString(m, "lastUpdated", text.LastUpdated)
		if sw := text.ServiceWorker; sw != nil {
			m["serviceWorker"] = map[string]any{
				"updatePopup": map[string]any{
					"message":    sw.UpdatePopup.Message,
					"buttonText": sw.UpdatePopup.ButtonText,
				},
			}
		}
		if text.Algolia != nil {
			m["algolia"] = deepCopy(*text.Algolia)
		}
		if len(text.Nav) > 0 {
			m["nav"] = generatorNav(text.Nav)
		}
		locales[key] = m
	}
	out["locales"] = locales
	return out
}

func generatorNav(entries []NavEntry) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		m := map[string]any{"text": e.Text}
		putString(m, "link", e.Link)
		if len(e.Items) > 0 {
			m["items"] = generatorNav(e.Items)
		}
		out = append(out, m)
	}
	return out
}

func putString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func copyStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func deepCopy(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopy(t)
	case []any:
		s := make([]any, len(t))
		for i := range t {
			s[i] = deepCopyValue(t[i])
		}
		return s
	default:
		return v
	}
}
