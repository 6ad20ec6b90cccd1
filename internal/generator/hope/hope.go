// Package hope emits the JSON config document consumed by the VuePress
// theme-hope build: user config, theme config and theme options.
package hope

import (
	"bytes"
	"encoding/json"

	"git.home.luguber.info/inful/docsite/internal/generator"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/theme"
)

// Format is the name this flavor registers under.
const Format generator.Format = "hope"

// FileName is the generated document, relative to the output directory.
const FileName = "docsite.config.json"

func init() { generator.Register(Flavor{}) }

// Flavor implements generator.Flavor.
type Flavor struct{}

func (Flavor) Name() generator.Format { return Format }

type document struct {
	UserConfig   userConfig   `json:"userConfig"`
	ThemeConfig  themeConfig  `json:"themeConfig"`
	ThemeOptions themeOptions `json:"themeOptions"`
}

type userConfig struct {
	Base        string            `json:"base"`
	Lang        string            `json:"lang"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Locales     map[string]locale `json:"locales,omitempty"`
	Head        []site.HeadTag    `json:"head"`
	Bundler     bundler           `json:"bundler"`
}

type locale struct {
	Lang        string `json:"lang"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type bundler struct {
	Name             string         `json:"name"`
	ViteOptions      map[string]any `json:"viteOptions"`
	VuePluginOptions map[string]any `json:"vuePluginOptions"`
}

type author struct {
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

type themeConfig struct {
	Hostname      string                         `json:"hostname,omitempty"`
	Author        author                         `json:"author"`
	Favicon       string                         `json:"favicon,omitempty"`
	Logo          string                         `json:"logo,omitempty"`
	Repo          string                         `json:"repo,omitempty"`
	DocsDir       string                         `json:"docsDir,omitempty"`
	DocsBranch    string                         `json:"docsBranch,omitempty"`
	Navbar        nav.Entries                    `json:"navbar"`
	Sidebar       map[string]any                 `json:"sidebar,omitempty"`
	Footer        string                         `json:"footer,omitempty"`
	DisplayFooter bool                           `json:"displayFooter"`
	Breadcrumb    bool                           `json:"breadcrumb"`
	DarkMode      theme.DarkMode                 `json:"darkmode"`
	MetaLocales   map[string]string              `json:"metaLocales,omitempty"`
	Markdown      map[string]any                 `json:"markdown,omitempty"`
	Plugins       map[string]theme.PluginOptions `json:"plugins,omitempty"`
}

type themeOptions struct {
	Custom bool `json:"custom"`
}

// Files renders the config document.
func (Flavor) Files(doc *generator.Document) ([]generator.File, error) {
	cfg := doc.Site
	t := cfg.Theme

	out := document{
		UserConfig: userConfig{
			Base:        cfg.Base,
			Lang:        cfg.Lang,
			Title:       cfg.Title,
			Description: cfg.Description,
			Locales:     locales(cfg.Locales),
			Head:        cfg.Head,
			Bundler: bundler{
				Name:             cfg.Bundler.Name,
				ViteOptions:      orEmpty(cfg.Bundler.ViteOptions),
				VuePluginOptions: orEmpty(cfg.Bundler.VuePluginOptions),
			},
		},
		ThemeConfig: themeConfig{
			Hostname:      t.Hostname,
			Author:        author(t.Author),
			Favicon:       t.Favicon,
			Logo:          t.Logo,
			Repo:          t.Repo,
			DocsDir:       t.DocsDir,
			DocsBranch:    t.DocsBranch,
			Navbar:        t.Navbar,
			Sidebar:       sidebar(doc.Sidebar),
			Footer:        t.Footer,
			DisplayFooter: t.DisplayFooter,
			Breadcrumb:    t.Breadcrumb,
			DarkMode:      t.Mode(),
			MetaLocales:   t.MetaLocales,
			Markdown:      markdownOptions(t.Markdown),
			Plugins:       t.Plugins,
		},
		ThemeOptions: themeOptions{Custom: true},
	}
	if out.UserConfig.Head == nil {
		out.UserConfig.Head = []site.HeadTag{}
	}
	if out.ThemeConfig.Navbar == nil {
		out.ThemeConfig.Navbar = nav.Entries{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return []generator.File{{Path: FileName, Data: buf.Bytes()}}, nil
}

func locales(in map[string]site.Locale) map[string]locale {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]locale, len(in))
	for path, l := range in {
		out[path] = locale(l)
	}
	return out
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

// sidebar maps each route to "structure" or its entry list, with entries
// already mounted below the route prefix.
func sidebar(routes []generator.SidebarRoute) map[string]any {
	if len(routes) == 0 {
		return nil
	}
	out := make(map[string]any, len(routes))
	for _, r := range routes {
		if r.Structure {
			out[r.Prefix] = "structure"
			continue
		}
		out[r.Prefix] = r.Entries
	}
	return out
}

func markdownOptions(m theme.MarkdownOptions) map[string]any {
	out := make(map[string]any, len(m.Features)+3)
	for name, on := range m.Features {
		out[name] = on
	}
	if m.Playground != nil {
		out["playground"] = map[string]any{"presets": m.Playground.Presets}
	}
	if m.Revealjs != nil {
		out["revealjs"] = map[string]any{"plugins": m.Revealjs.Plugins, "themes": m.Revealjs.Themes}
	}
	if len(m.Stylize) > 0 {
		rules := make([]map[string]any, 0, len(m.Stylize))
		for _, r := range m.Stylize {
			rule := map[string]any{
				"matcher": r.Matcher,
				"replace": map[string]any{"tag": r.Replace.Tag, "attrs": r.Replace.Attrs, "content": r.Replace.Content},
			}
			if r.WhenTag != "" {
				rule["whenTag"] = r.WhenTag
			}
			rules = append(rules, rule)
		}
		out["stylize"] = rules
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
