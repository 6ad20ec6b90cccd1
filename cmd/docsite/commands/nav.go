package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/nav"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	Format string `short:"f" help:"Output format (tree|json|yaml)" enum:"tree,json,yaml" default:"tree"`
	Flat   bool   `help:"Print only leaf links"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	tree, err := nav.Resolve(cfg.Site.Theme.Navbar)
	if err != nil {
		return err
	}
	if n.Flat {
		tree = nav.Links(tree)
	}
	return writeNav(g.Out, tree, n.Format)
}

func writeNav(w io.Writer, tree []nav.Resolved, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	default:
		printTree(w, tree, 0)
		return nil
	}
}

func printTree(w io.Writer, tree []nav.Resolved, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, r := range tree {
		if r.IsGroup() {
			if r.Prefix != "" {
				_, _ = fmt.Fprintf(w, "%s%s/ (%s)\n", indent, r.Text, r.Prefix)
			} else {
				_, _ = fmt.Fprintf(w, "%s%s/\n", indent, r.Text)
			}
			printTree(w, r.Children, depth+1)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s%s -> %s\n", indent, r.Text, r.Link)
	}
}
