package hugo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/generator"
	"git.home.luguber.info/inful/docsite/internal/generator/hugo"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/theme"
)

type menuItem struct {
	Identifier string `yaml:"identifier"`
	Parent     string `yaml:"parent"`
	Name       string `yaml:"name"`
	URL        string `yaml:"url"`
	Pre        string `yaml:"pre"`
	Weight     int    `yaml:"weight"`
}

type hugoConfig struct {
	Title          string                `yaml:"title"`
	BaseURL        string                `yaml:"baseURL"`
	LanguageCode   string                `yaml:"languageCode"`
	HasCJKLanguage bool                  `yaml:"hasCJKLanguage"`
	Copyright      string                `yaml:"copyright"`
	Menu           map[string][]menuItem `yaml:"menu"`
	Params         map[string]any        `yaml:"params"`
	Markup         map[string]any        `yaml:"markup"`
	Languages      map[string]any        `yaml:"languages"`
}

func render(t *testing.T, cfg site.Config) (hugoConfig, []byte) {
	t.Helper()
	doc, err := generator.Resolve(cfg)
	require.NoError(t, err)
	files, err := hugo.Flavor{}.Files(doc)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, hugo.FileName, files[0].Path)

	var out hugoConfig
	require.NoError(t, yaml.Unmarshal(files[0].Data, &out))
	return out, files[0].Data
}

func TestRegistered(t *testing.T) {
	require.NotNil(t, generator.Get(hugo.Format))
}

func TestFiles_DefaultSite(t *testing.T) {
	out, _ := render(t, site.Default())

	require.Equal(t, "Golang 全栈指南", out.Title)
	require.Equal(t, "https://www.golangclouds.com/", out.BaseURL)
	require.Equal(t, "zh-CN", out.LanguageCode)
	require.True(t, out.HasCJKLanguage)
	require.Equal(t, "陕ICP备20010345号-5", out.Copyright)
	require.Empty(t, out.Languages)

	require.Equal(t, "https://github.com/codermast/golang-clouds/edit/main/docs/", out.Params["editURL"])
	require.Equal(t, true, out.Params["mermaid"])
	require.Equal(t, "switch", out.Params["darkmode"])
	require.Contains(t, out.Params["customHead"], `<meta name="keywords"`)

	goldmark := out.Markup["goldmark"].(map[string]any)
	require.Contains(t, goldmark, "extensions")
}

func TestFiles_MenuIsFlattened(t *testing.T) {
	cfg := site.Default()
	cfg.Theme.Navbar = nav.Entries{
		nav.Group{Text: "Go", Icon: "golang", Prefix: "/golang/", Children: nav.Entries{
			nav.Link{Text: "Core", Link: "core/"},
			nav.Group{Text: "Web", Prefix: "web/", Children: nav.Entries{nav.Link{Text: "Gin", Link: "gin/", Icon: "gin"}}},
		}},
		nav.Link{Text: "Project", Link: "/project/"},
	}

	out, _ := render(t, cfg)
	require.Equal(t, []menuItem{
		{Identifier: "nav-0", Name: "Go", URL: "/golang/", Pre: "golang", Weight: 1},
		{Identifier: "nav-0-0", Parent: "nav-0", Name: "Core", URL: "/golang/core/", Weight: 1},
		{Identifier: "nav-0-1", Parent: "nav-0", Name: "Web", URL: "/golang/web/", Weight: 2},
		{Identifier: "nav-0-1-0", Parent: "nav-0-1", Name: "Gin", URL: "/golang/web/gin/", Pre: "gin", Weight: 1},
		{Identifier: "nav-1", Name: "Project", URL: "/project/", Weight: 2},
	}, out.Menu["main"])
}

func TestFiles_MathToggle(t *testing.T) {
	cfg := site.Default()
	cfg.Theme.Markdown.Features = map[string]bool{theme.FeatureGFM: true}

	out, _ := render(t, cfg)
	goldmark := out.Markup["goldmark"].(map[string]any)
	require.NotContains(t, goldmark, "extensions")
	require.Equal(t, false, out.Params["math"])
}

func TestFiles_Languages(t *testing.T) {
	cfg := site.Default()
	cfg.Locales["/en/"] = site.Locale{Lang: "en-US", Title: "Go Full Stack Guide"}

	out, _ := render(t, cfg)
	require.Len(t, out.Languages, 2)
	en := out.Languages["en-us"].(map[string]any)
	require.Equal(t, "content/en", en["contentDir"])
	require.Equal(t, "Go Full Stack Guide", en["title"])
	require.NotEmpty(t, en["languageName"])
}

func TestFiles_LanguagesSharingATag(t *testing.T) {
	cfg := site.Default()
	cfg.Locales["/archive/old/"] = site.Locale{Lang: "zh-CN", Title: "归档"}

	out, _ := render(t, cfg)
	require.Len(t, out.Languages, 2)
	require.Contains(t, out.Languages, "zh-cn")
	archive := out.Languages["archive-old"].(map[string]any)
	require.Equal(t, "归档", archive["title"])
	require.Equal(t, "content/archive/old", archive["contentDir"])
}

func TestFiles_DarkModeDisabled(t *testing.T) {
	cfg := site.Default()
	cfg.Theme.DarkMode = theme.DarkModeDisable

	out, _ := render(t, cfg)
	require.NotContains(t, out.Params, "darkmode")
}

func TestFiles_Deterministic(t *testing.T) {
	_, first := render(t, site.Default())
	_, second := render(t, site.Default())
	require.Equal(t, first, second)
}
