package theme

import "sort"

// Plugin names recognized by the theme's plugin system.
const (
	PluginIcon       = "icon"
	PluginSlimsearch = "slimsearch"
	PluginComponents = "components"
	PluginComment    = "comment"
)

var knownPlugins = map[string]bool{
	PluginIcon:       true,
	PluginSlimsearch: true,
	PluginComponents: true,
	PluginComment:    true,
}

// PluginOptions is an opaque option bag passed through to a plugin. Values
// are kept YAML-native (string, bool, []any, map[string]any).
type PluginOptions map[string]any

// Plugins maps plugin name to its options.
type Plugins map[string]PluginOptions

// Names returns plugin names in sorted order.
func (p Plugins) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unknown returns configured plugin names outside the documented set.
func (p Plugins) Unknown() []string {
	var out []string
	for _, name := range p.Names() {
		if !knownPlugins[name] {
			out = append(out, name)
		}
	}
	return out
}

// IconPlugin configures icon asset resolution.
func IconPlugin(assets string) PluginOptions {
	return PluginOptions{"assets": assets}
}

// SearchPlugin configures the client-side search index.
func SearchPlugin(indexContent bool) PluginOptions {
	return PluginOptions{"indexContent": indexContent}
}

// ComponentsPlugin registers the named markdown components.
func ComponentsPlugin(names ...string) PluginOptions {
	list := make([]any, 0, len(names))
	for _, n := range names {
		list = append(list, n)
	}
	return PluginOptions{"components": list}
}

// GiscusOptions identifies the GitHub Discussions category backing comments.
type GiscusOptions struct {
	Repo       string
	RepoID     string
	Category   string
	CategoryID string
}

// GiscusComment configures the comment widget with the Giscus provider.
func GiscusComment(o GiscusOptions) PluginOptions {
	return PluginOptions{
		"provider":   "Giscus",
		"repo":       o.Repo,
		"repoId":     o.RepoID,
		"category":   o.Category,
		"categoryId": o.CategoryID,
	}
}
