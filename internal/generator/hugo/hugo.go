// Package hugo emits a hugo.yaml for sites built with Hugo instead of the
// VuePress theme. Navigation becomes the main menu and theme settings land
// in params.
package hugo

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/generator"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/theme"
)

const Format generator.Format = "hugo"

const FileName = "hugo.yaml"

func init() { generator.Register(Flavor{}) }

// Flavor implements generator.Flavor.
type Flavor struct{}

func (Flavor) Name() generator.Format { return Format }

// Files renders hugo.yaml.
func (Flavor) Files(doc *generator.Document) ([]generator.File, error) {
	cfg := doc.Site
	t := cfg.Theme

	params := map[string]any{
		"description": cfg.Description,
		"breadcrumb":  t.Breadcrumb,
		"author":      map[string]any{"name": t.Author.Name, "url": t.Author.URL, "email": t.Author.Email},
		"mermaid":     t.Markdown.Enabled(theme.FeatureMermaid),
		"math":        t.Markdown.Enabled(theme.FeatureMath),
	}
	if mode := t.Mode(); mode.Enabled() {
		params["darkmode"] = string(mode)
	}
	if t.DisplayFooter && t.Footer != "" {
		params["footer"] = t.Footer
	}
	if doc.EditLink != "" {
		// Hugo themes append the page path themselves.
		params["editURL"] = strings.TrimSuffix(doc.EditLink, ":path")
	}
	if doc.Head != "" {
		params["customHead"] = doc.Head
	}
	if names := t.Plugins.Names(); len(names) > 0 {
		plugins := make(map[string]any, len(names))
		for _, name := range names {
			plugins[name] = map[string]any(t.Plugins[name])
		}
		params["plugins"] = plugins
	}
	if t.Logo != "" {
		params["logo"] = t.Logo
	}
	if t.Favicon != "" {
		params["favicon"] = t.Favicon
	}

	goldmark := map[string]any{"renderer": map[string]any{"unsafe": true}}
	if t.Markdown.Enabled(theme.FeatureMath) {
		goldmark["extensions"] = map[string]any{
			"passthrough": map[string]any{
				"delimiters": map[string]any{
					"block":  [][]string{{"\\[", "\\]"}, {"$$", "$$"}},
					"inline": [][]string{{"\\(", "\\)"}},
				},
				"enable": true,
			},
		}
	}
	if t.Markdown.Enabled(theme.FeatureAttrs) {
		goldmark["parser"] = map[string]any{"attribute": map[string]any{"block": true, "title": true}}
	}

	root := map[string]any{
		"title":        cfg.Title,
		"baseURL":      baseURL(t.Hostname, cfg.Base),
		"languageCode": cfg.Lang,
		"markup":       map[string]any{"goldmark": goldmark},
		"menu":         map[string]any{"main": menu(doc.Navbar)},
		"params":       params,
	}
	if site.IsCJK(cfg.Language()) {
		root["hasCJKLanguage"] = true
	}
	if text := t.FooterText(); text != "" {
		root["copyright"] = text
	}
	if langs := languages(cfg); len(langs) > 0 {
		root["languages"] = langs
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Hugo config: %w", err)
	}
	return []generator.File{{Path: FileName, Data: data}}, nil
}

func baseURL(hostname, base string) string {
	if hostname == "" {
		return base
	}
	return strings.TrimSuffix(hostname, "/") + base
}

// menu flattens the resolved navbar into Hugo menu entries. Identifiers are
// positional so repeated renders are byte-identical.
func menu(tree []nav.Resolved) []map[string]any {
	var out []map[string]any
	var walk func(nodes []nav.Resolved, parent string)
	walk = func(nodes []nav.Resolved, parent string) {
		for i, n := range nodes {
			id := fmt.Sprintf("nav-%d", i)
			if parent != "" {
				id = fmt.Sprintf("%s-%d", parent, i)
			}
			item := map[string]any{
				"identifier": id,
				"name":       n.Text,
				"weight":     i + 1,
			}
			if parent != "" {
				item["parent"] = parent
			}
			if n.Icon != "" {
				item["pre"] = n.Icon
			}
			switch {
			case !n.IsGroup():
				item["url"] = n.Link
			case n.Prefix != "":
				item["url"] = n.Prefix
			}
			out = append(out, item)
			if n.IsGroup() {
				walk(n.Children, id)
			}
		}
	}
	walk(tree, "")
	return out
}

func languages(cfg site.Config) map[string]any {
	paths := cfg.LocalePaths()
	if len(paths) < 2 {
		return nil
	}
	out := make(map[string]any, len(paths))
	for i, p := range paths {
		l := cfg.Locales[p]
		tag := language.Make(l.Lang)
		entry := map[string]any{
			"languageCode": l.Lang,
			"languageName": display.Self.Name(tag),
			"title":        l.Title,
			"weight":       i + 1,
			"params":       map[string]any{"description": l.Description},
		}
		if p != "/" {
			entry["contentDir"] = "content" + strings.TrimSuffix(p, "/")
		}
		out[languageKey(out, tag, p)] = entry
	}
	return out
}

// languageKey names a locale after its language tag. A second route with the
// same language is named after the route instead.
func languageKey(seen map[string]any, tag language.Tag, route string) string {
	key := strings.ToLower(tag.String())
	if _, taken := seen[key]; !taken {
		return key
	}
	return strings.ReplaceAll(strings.Trim(route, "/"), "/", "-")
}
