package config

import "sort"

// RootLocale is the path key of the default locale.
const RootLocale = "/"

// SiteConfig represents the configuration object handed to the site generator.
type SiteConfig struct {
	Title       string                 `yaml:"title" json:"title"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Locales     map[string]LocaleEntry `yaml:"locales" json:"locales"`
	Head        []HeadTag              `yaml:"head,omitempty" json:"head,omitempty"`
	ThemeConfig ThemeConfig            `yaml:"themeConfig" json:"themeConfig"`
	Plugins     []Plugin               `yaml:"plugins,omitempty" json:"plugins,omitempty"`
}

// LocaleEntry describes one language variant, keyed by URL path prefix.
type LocaleEntry struct {
	Lang        string `yaml:"lang" json:"lang"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ThemeConfig holds repository links, edit links and per-locale UI text.
type ThemeConfig struct {
	Repo       string                     `yaml:"repo,omitempty" json:"repo,omitempty"` // URL or owner/name shorthand
	DocsBranch string                     `yaml:"docsBranch,omitempty" json:"docsBranch,omitempty"`
	DocsDir    string                     `yaml:"docsDir,omitempty" json:"docsDir,omitempty"`
	EditLinks  bool                       `yaml:"editLinks" json:"editLinks"`
	Locales    map[string]LocaleThemeText `yaml:"locales" json:"locales"`
}

// LocaleThemeText is the UI text and navigation for one locale.
type LocaleThemeText struct {
	SelectText    string             `yaml:"selectText,omitempty" json:"selectText,omitempty"`
	Label         string             `yaml:"label,omitempty" json:"label,omitempty"`
	AriaLabel     string             `yaml:"ariaLabel,omitempty" json:"ariaLabel,omitempty"`
	EditLinkText  string             `yaml:"editLinkText,omitempty" json:"editLinkText,omitempty"`
	LastUpdated   string             `yaml:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
	ServiceWorker *ServiceWorkerText `yaml:"serviceWorker,omitempty" json:"serviceWorker,omitempty"`
	Algolia       *DocSearch         `yaml:"algolia,omitempty" json:"algolia,omitempty"`
	Nav           []NavEntry         `yaml:"nav,omitempty" json:"nav,omitempty"`
}

// ServiceWorkerText is the prompt shown when a new site build is available.
type ServiceWorkerText struct {
	UpdatePopup UpdatePopup `yaml:"updatePopup" json:"updatePopup"`
}

// UpdatePopup is the message/button pair of the service-worker refresh prompt.
type UpdatePopup struct {
	Message    string `yaml:"message" json:"message"`
	ButtonText string `yaml:"buttonText" json:"buttonText"`
}

// DocSearch holds the Algolia DocSearch options of a locale (apiKey,
// indexName, algoliaOptions, ...). A pointer keeps an empty `algolia: {}`
// distinct from an absent block.
type DocSearch map[string]any

// NavEntry is a navbar item. Link is an internal path or an absolute URL;
// entries with Items render as a dropdown and may omit Link.
type NavEntry struct {
	Text  string     `yaml:"text" json:"text"`
	Link  string     `yaml:"link,omitempty" json:"link,omitempty"`
	Items []NavEntry `yaml:"items,omitempty" json:"items,omitempty"`
}

// LocaleKeys returns the locale path keys sorted, root first.
func (c *SiteConfig) LocaleKeys() []string {
	keys := make([]string, 0, len(c.Locales))
	for k := range c.Locales {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Locale looks up a locale entry by path key.
func (c *SiteConfig) Locale(key string) (LocaleEntry, bool) {
	e, ok := c.Locales[key]
	return e, ok
}

// ThemeText looks up the theme text for a locale path key.
func (c *SiteConfig) ThemeText(key string) (LocaleThemeText, bool) {
	t, ok := c.ThemeConfig.Locales[key]
	return t, ok
}

// Walk calls fn for every nav entry of the locale, depth first.
func (t LocaleThemeText) Walk(fn func(NavEntry)) {
	var visit func([]NavEntry)
	visit = func(entries []NavEntry) {
		for _, e := range entries {
			fn(e)
			visit(e.Items)
		}
	}
	visit(t.Nav)
}

// Plugin returns the plugin with the given name.
func (c *SiteConfig) Plugin(name string) (Plugin, bool) {
	for _, p := range c.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}
