package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/markdown"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// PreviewCmd implements the 'preview' command.
type PreviewCmd struct {
	File     string `arg:"" help:"Markdown file to render" type:"existingfile"`
	Headings bool   `help:"Print the heading outline instead of HTML"`
	Links    bool   `help:"Print the links found in the page instead of HTML"`
	Sidebar  string `help:"Print the sidebar serving the given page route instead of HTML" placeholder:"ROUTE"`
}

func (p *PreviewCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(p.File)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to read page").
			Path(p.File).Build()
	}
	page, err := markdown.ParsePage(content)
	if err != nil {
		return err
	}

	r := markdown.New(cfg.Site.Theme.Markdown, site.IsCJK(cfg.Site.Language()))
	if only := r.ThemeOnly(); len(only) > 0 {
		slog.Debug("Some markdown features are left to the theme", logfields.Path(p.File), slog.Any("features", only))
	}

	switch {
	case p.Sidebar != "":
		return printSidebar(g, cfg.Site, p.Sidebar)
	case p.Headings:
		for _, h := range r.Headings(page.Body) {
			_, _ = fmt.Fprintf(g.Out, "%s%s #%s\n", strings.Repeat("  ", h.Level-1), h.Text, h.ID)
		}
		return nil
	case p.Links:
		tree, err := nav.Resolve(cfg.Site.Theme.Navbar)
		if err != nil {
			return err
		}
		known := make(map[string]bool)
		for _, l := range nav.Links(tree) {
			known[l.Link] = true
		}
		for _, l := range r.Links(page.Body) {
			mark := ""
			if known[l.Destination] {
				mark = " (navbar)"
			}
			_, _ = fmt.Fprintf(g.Out, "%-20s %s%s\n", l.Kind, l.Destination, mark)
		}
		return nil
	}

	if title := page.Frontmatter.Title; title != "" {
		_, _ = fmt.Fprintf(g.Out, "<!-- %s -->\n", title)
	}
	html, err := r.Render(page.Body)
	if err != nil {
		return err
	}
	_, err = g.Out.Write(html)
	return err
}

func printSidebar(g *Global, cfg *site.Config, route string) error {
	r, ok := cfg.Theme.Sidebar.Match(route)
	if !ok {
		_, _ = fmt.Fprintf(g.Out, "no sidebar serves %s\n", route)
		return nil
	}
	if r.Structure {
		_, _ = fmt.Fprintf(g.Out, "%s file structure\n", r.Prefix)
		return nil
	}
	tree, err := nav.ResolveAt(fmt.Sprintf("sidebar[%s]", r.Prefix), r.Prefix, r.Entries)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Out, "%s\n", r.Prefix)
	printTree(g.Out, tree, 1)
	return nil
}
