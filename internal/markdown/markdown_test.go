package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/theme"
)

func TestRender_FeatureSwitches(t *testing.T) {
	table := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	t.Run("gfm enabled renders tables", func(t *testing.T) {
		r := New(theme.MarkdownOptions{Features: map[string]bool{theme.FeatureGFM: true}}, false)
		out, err := r.Render([]byte(table))
		require.NoError(t, err)
		require.Contains(t, string(out), "<table>")
	})

	t.Run("gfm disabled leaves pipes as text", func(t *testing.T) {
		r := New(theme.MarkdownOptions{}, false)
		out, err := r.Render([]byte(table))
		require.NoError(t, err)
		require.NotContains(t, string(out), "<table>")
	})

	t.Run("footnotes", func(t *testing.T) {
		r := New(theme.MarkdownOptions{Features: map[string]bool{theme.FeatureFootnote: true}}, false)
		out, err := r.Render([]byte("text[^1]\n\n[^1]: note\n"))
		require.NoError(t, err)
		require.Contains(t, string(out), `class="footnotes"`)
	})

	t.Run("attributes", func(t *testing.T) {
		r := New(theme.MarkdownOptions{Features: map[string]bool{theme.FeatureAttrs: true}}, false)
		out, err := r.Render([]byte("# Title {#custom}\n"))
		require.NoError(t, err)
		require.Contains(t, string(out), `<h1 id="custom">Title</h1>`)
	})

	t.Run("raw html passes through", func(t *testing.T) {
		r := New(theme.MarkdownOptions{}, false)
		out, err := r.Render([]byte("<Badge text=\"x\" />\n"))
		require.NoError(t, err)
		require.Contains(t, string(out), `<Badge text="x" />`)
	})
}

func TestThemeOnly(t *testing.T) {
	r := New(theme.Default().Markdown, true)
	only := r.ThemeOnly()
	require.Contains(t, only, theme.FeatureMermaid)
	require.Contains(t, only, theme.FeatureMath)
	require.NotContains(t, only, theme.FeatureGFM)
	require.NotContains(t, only, theme.FeatureFootnote)
	require.NotContains(t, only, theme.FeatureAttrs)
}

func TestStylize(t *testing.T) {
	opts := theme.MarkdownOptions{Stylize: []theme.StylizeRule{{
		Matcher: "Recommended",
		WhenTag: "em",
		Replace: theme.Replacement{Tag: "Badge", Attrs: map[string]string{"type": "tip"}, Content: "Recommended"},
	}}}
	r := New(opts, false)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"matching em", "Use *Recommended* here", `Use <Badge type="tip">Recommended</Badge> here`},
		{"strong is not em", "**Recommended**", "<strong>Recommended</strong>"},
		{"other text untouched", "*Optional*", "<em>Optional</em>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render([]byte(tt.in))
			require.NoError(t, err)
			require.Contains(t, string(out), tt.want)
		})
	}
}

func TestLinks(t *testing.T) {
	r := New(theme.MarkdownOptions{}, false)
	src := strings.Join([]string{
		"See [guide](/golang/basic/) and ![logo](/logo.png).",
		"",
		"<https://example.com>",
		"",
		"[ref][b] [other][a]",
		"",
		"[b]: /b/",
		"[a]: /a/",
	}, "\n")

	require.Equal(t, []Link{
		{Kind: LinkKindInline, Destination: "/golang/basic/"},
		{Kind: LinkKindImage, Destination: "/logo.png"},
		{Kind: LinkKindAuto, Destination: "https://example.com"},
		{Kind: LinkKindInline, Destination: "/b/"},
		{Kind: LinkKindInline, Destination: "/a/"},
		{Kind: LinkKindReferenceDefinition, Destination: "/a/"},
		{Kind: LinkKindReferenceDefinition, Destination: "/b/"},
	}, r.Links([]byte(src)))
}

func TestHeadings(t *testing.T) {
	r := New(theme.MarkdownOptions{}, false)
	got := r.Headings([]byte("# Getting Started\n\ntext\n\n## Install *Go*\n"))
	require.Equal(t, []Heading{
		{Level: 1, Text: "Getting Started", ID: "getting-started"},
		{Level: 2, Text: "Install Go", ID: "install-go"},
	}, got)
}
