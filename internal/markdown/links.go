package markdown

import (
	"sort"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// Heading is a section heading with the anchor id the renderer assigns it.
type Heading struct {
	Level int
	Text  string
	ID    string
}

func (r *Renderer) parse(src []byte) (ast.Node, parser.Context) {
	ctx := parser.NewContext()
	root := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))
	return root, ctx
}

// Links extracts link-like constructs from a markdown body, in document
// order, followed by reference definitions sorted by label.
func (r *Renderer) Links(src []byte) []Link {
	root, ctx := r.parse(src)

	links := make([]Link, 0)
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(src))})
		case *ast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *ast.Link:
			// reference-style links arrive here already resolved
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return ast.WalkContinue, nil
	})

	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}
	return links
}

// Headings lists the headings of a markdown body in document order.
func (r *Renderer) Headings(src []byte) []Heading {
	root, _ := r.parse(src)

	var out []Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		heading := Heading{Level: h.Level, Text: plainText(h, src)}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				heading.ID = string(b)
			}
		}
		out = append(out, heading)
		return ast.WalkSkipChildren, nil
	})
	return out
}
