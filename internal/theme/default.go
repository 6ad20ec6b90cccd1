package theme

import "git.home.luguber.info/inful/docsite/internal/nav"

// Default returns the site's theme configuration.
func Default() Config {
	return Config{
		Navbar:        nav.Default(),
		Sidebar:       Sidebar{{Prefix: "/", Structure: true}},
		Footer:        `<a href="https://beian.miit.gov.cn/" target="_blank" rel="nofollow">陕ICP备20010345号-5</a>`,
		DisplayFooter: true,
		Breadcrumb:    false,
		DarkMode:      DarkModeSwitch,
		Favicon:       "/favicon.ico",
		Logo:          "/logo.png",
		Hostname:      "https://www.golangclouds.com",
		Repo:          "https://github.com/codermast/golang-clouds",
		DocsDir:       "docs",
		DocsBranch:    "main",
		Author: Author{
			Name:  "友人",
			URL:   "https://www.codermast.com",
			Email: "codermast@163.com",
		},
		MetaLocales: map[string]string{"editLink": "编辑此页"},
		Markdown:    defaultMarkdown(),
		Plugins: Plugins{
			PluginIcon:       IconPlugin("iconify"),
			PluginSlimsearch: SearchPlugin(true),
			PluginComponents: ComponentsPlugin(
				"ArtPlayer", "Badge", "BiliBili", "CodePen", "PDF", "Share",
				"SiteInfo", "StackBlitz", "VPBanner", "VPCard", "VidStack",
			),
			PluginComment: GiscusComment(GiscusOptions{
				Repo:       "codermast/codermast-notes",
				RepoID:     "R_kgDOIetRIw",
				Category:   "Announcements",
				CategoryID: "DIC_kwDOIetRI84CVg1f",
			}),
		},
	}
}

func defaultMarkdown() MarkdownOptions {
	features := map[string]bool{}
	for _, name := range []string{
		FeatureAlign, FeatureAttrs, FeatureChartJS, FeatureCodeTabs, FeatureComponent,
		FeatureDemo, FeatureECharts, FeatureFigure, FeatureFlowchart, FeatureGFM,
		FeatureImgLazyload, FeatureImgSize, FeatureInclude, FeatureMark, FeatureMath,
		FeatureMermaid, FeatureSub, FeatureSup, FeatureTabs, FeatureVPre, FeatureVuePlayground,
	} {
		features[name] = true
	}
	return MarkdownOptions{
		Features:   features,
		Playground: &PlaygroundOptions{Presets: []string{"ts", "vue"}},
		Revealjs: &RevealjsOptions{
			Plugins: []string{"highlight", "math", "search", "notes", "zoom"},
			Themes: []string{
				"auto", "beige", "black", "blood", "league", "moon",
				"night", "serif", "simple", "sky", "solarized", "white",
			},
		},
		Stylize: []StylizeRule{{
			Matcher: "Recommended",
			WhenTag: "em",
			Replace: Replacement{Tag: "Badge", Attrs: map[string]string{"type": "tip"}, Content: "Recommended"},
		}},
	}
}
