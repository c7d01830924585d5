package config

// Repository coordinates of the documentation source.
const (
	defaultRepo       = "doudoudzj/bottlepy"
	defaultDocsBranch = "main"
	defaultDocsDir    = "docs/"
)

const (
	siteTitle        = "Bottle"
	siteTagline      = "Python Web Framework"
	siteDescription  = "Bottle is a fast, simple and lightweight WSGI micro web-framework for Python."
	upstreamHomepage = "http://bottlepy.org"
)

// Default returns the authoritative site configuration: an English root locale
// and a Simplified Chinese locale under /zh-cn/. Every call builds a fresh
// value, so callers may not observe each other's changes.
func Default() *SiteConfig {
	return &SiteConfig{
		Title:       siteTitle,
		Description: siteTagline,
		Locales: map[string]LocaleEntry{
			RootLocale: {
				Lang:        "en-US",
				Title:       siteTitle,
				Description: siteDescription,
			},
			"/zh-cn/": {
				Lang:        "zh-CN",
				Title:       siteTitle,
				Description: siteTagline,
			},
		},
		Head: []HeadTag{
			meta("name", "renderer", "webkit"),
			meta("name", "force-rendering", "webkit"),
			meta("http-equiv", "X-UA-Compatible", "IE=edge, chrome=1"),
			meta("name", "author", "Jackson Dou"),
			meta("name", "keywords", "Bottle, Python Web Framework"),
			meta("name", "description", siteDescription),
			meta("name", "apple-mobile-web-app-capable", "yes"),
			meta("name", "apple-mobile-web-app-status-bar-style", "black"),
			{Name: "link", Attrs: map[string]string{"rel": "icon", "href": "/favicon.ico"}},
		},
		ThemeConfig: ThemeConfig{
			Repo:       defaultRepo,
			DocsBranch: defaultDocsBranch,
			DocsDir:    defaultDocsDir,
			EditLinks:  true,
			Locales: map[string]LocaleThemeText{
				RootLocale: englishText(),
				"/zh-cn/":  chineseText(),
			},
		},
		Plugins: []Plugin{
			{Name: "@vuepress/plugin-back-to-top", Enabled: true},
		},
	}
}

func meta(key, value, content string) HeadTag {
	return HeadTag{Name: "meta", Attrs: map[string]string{key: value, "content": content}}
}

// englishText is the single English UI text block. Earlier revisions carried
// two diverging copies; this one is kept.
func englishText() LocaleThemeText {
	return LocaleThemeText{
		SelectText:   "Languages",
		Label:        "English",
		AriaLabel:    "Languages",
		EditLinkText: "Edit this page on GitHub",
		LastUpdated:  "Last Updated",
		ServiceWorker: &ServiceWorkerText{UpdatePopup: UpdatePopup{
			Message:    "New content is available.",
			ButtonText: "Refresh",
		}},
		Algolia: &DocSearch{},
		Nav: []NavEntry{
			{Text: "Home", Link: "/"},
			{Text: "Guide", Link: "/guide/"},
		},
	}
}

func chineseText() LocaleThemeText {
	return LocaleThemeText{
		SelectText:   "选择语言",
		Label:        "简体中文",
		AriaLabel:    "选择语言",
		EditLinkText: "在 GitHub 上编辑此页",
		LastUpdated:  "上次更新",
		ServiceWorker: &ServiceWorkerText{UpdatePopup: UpdatePopup{
			Message:    "发现新内容可用.",
			ButtonText: "刷新",
		}},
		Algolia: &DocSearch{},
		Nav: []NavEntry{
			{Text: "首页", Link: "/zh-cn/"},
			{Text: "用户指南", Link: "/zh-cn/guide/"},
			{Text: "Bottlepy官网", Link: upstreamHomepage},
		},
	}
}
