// Package generator turns a site configuration into the files a static site
// generator consumes. Resolution happens once into a Document; registered
// flavors then serialize that document into their own file formats.
package generator

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/markdown"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Document is a validated site with every derived value computed. Resolving
// the same site twice yields equal documents.
type Document struct {
	Site     site.Config
	Navbar   []nav.Resolved
	Sidebar  []SidebarRoute
	Head     string
	EditLink string
	// ThemeOnly lists enabled markdown features left to the theme bundle.
	ThemeOnly []string
}

// SidebarRoute is a sidebar route with its explicit entries resolved.
type SidebarRoute struct {
	Prefix    string
	Structure bool
	Entries   []nav.Resolved
}

// Resolve validates cfg and derives the document.
func Resolve(cfg site.Config) (*Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	navbar, err := nav.Resolve(cfg.Theme.Navbar)
	if err != nil {
		return nil, err
	}

	sidebar := make([]SidebarRoute, 0, len(cfg.Theme.Sidebar))
	for _, r := range cfg.Theme.Sidebar {
		route := SidebarRoute{Prefix: r.Prefix, Structure: r.Structure}
		if !r.Structure {
			route.Entries, err = nav.ResolveAt(fmt.Sprintf("sidebar[%s]", r.Prefix), r.Prefix, r.Entries)
			if err != nil {
				return nil, err
			}
		}
		sidebar = append(sidebar, route)
	}

	head := site.RenderHead(cfg.Head)

	md := markdown.New(cfg.Theme.Markdown, site.IsCJK(cfg.Language()))

	return &Document{
		Site:      cfg,
		Navbar:    navbar,
		Sidebar:   sidebar,
		Head:      head,
		EditLink:  cfg.Theme.EditLinkPattern(),
		ThemeOnly: md.ThemeOnly(),
	}, nil
}
