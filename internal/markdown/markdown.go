// Package markdown renders site pages with goldmark, configured from the
// theme's markdown feature switches.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/theme"
)

// Renderer converts markdown to HTML for previews and analysis.
type Renderer struct {
	md        goldmark.Markdown
	themeOnly []string
}

// New builds a renderer for the given options. Features that only the theme's
// client bundle can render are passed through untouched and reported by
// ThemeOnly.
func New(opts theme.MarkdownOptions, cjk bool) *Renderer {
	var exts []goldmark.Extender
	var themeOnly []string
	for _, name := range opts.EnabledFeatures() {
		switch name {
		case theme.FeatureGFM:
			exts = append(exts, extension.GFM)
		case theme.FeatureFootnote:
			exts = append(exts, extension.Footnote)
		case theme.FeatureAttrs:
			// handled through parser options below
		default:
			themeOnly = append(themeOnly, name)
		}
	}
	if cjk {
		exts = append(exts, extension.CJK)
	}

	parserOpts := []parser.Option{parser.WithAutoHeadingID()}
	if opts.Enabled(theme.FeatureAttrs) {
		parserOpts = append(parserOpts, parser.WithAttribute())
	}
	if len(opts.Stylize) > 0 {
		parserOpts = append(parserOpts, parser.WithASTTransformers(
			util.Prioritized(&stylizer{rules: opts.Stylize}, 500),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Renderer{md: md, themeOnly: themeOnly}
}

// ThemeOnly lists enabled features this renderer leaves to the theme.
func (r *Renderer) ThemeOnly() []string { return r.themeOnly }

// Render converts a markdown body (frontmatter already removed) to HTML.
func (r *Renderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to render markdown").Build()
	}
	return buf.Bytes(), nil
}
