package markdown

import (
	"html"
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docsite/internal/theme"
)

// stylizer swaps emphasis spans whose text matches a rule for the rule's
// replacement element, e.g. **Recommended** becomes a Badge component.
type stylizer struct {
	rules []theme.StylizeRule
}

func (s *stylizer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()

	var targets []*ast.Emphasis
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if em, ok := n.(*ast.Emphasis); ok && entering {
			targets = append(targets, em)
		}
		return ast.WalkContinue, nil
	})

	for _, em := range targets {
		tag := "em"
		if em.Level == 2 {
			tag = "strong"
		}
		content := plainText(em, src)
		for _, rule := range s.rules {
			if rule.Matcher != content || (rule.WhenTag != "" && rule.WhenTag != tag) {
				continue
			}
			repl := ast.NewString([]byte(replacementHTML(rule.Replace)))
			// code strings are written verbatim by the html renderer
			repl.SetCode(true)
			em.Parent().ReplaceChild(em.Parent(), em, repl)
			break
		}
	}
}

func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(plainText(c, src))
		}
	}
	return b.String()
}

func replacementHTML(r theme.Replacement) string {
	keys := make([]string, 0, len(r.Attrs))
	for k := range r.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<" + r.Tag)
	for _, k := range keys {
		b.WriteString(" " + k + `="` + html.EscapeString(r.Attrs[k]) + `"`)
	}
	b.WriteString(">" + html.EscapeString(r.Content) + "</" + r.Tag + ">")
	return b.String()
}
