package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/generator"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	doc, err := generator.Resolve(*cfg.Site)
	if err != nil {
		return err
	}

	for _, name := range formats(cfg, nil) {
		if generator.Get(name) == nil {
			slog.Warn("Configured output format is not available", logfields.Format(string(name)))
		}
	}
	if len(doc.ThemeOnly) > 0 {
		slog.Debug("Markdown features rendered by the theme only", slog.Any("features", doc.ThemeOnly))
	}

	_, _ = fmt.Fprintf(g.Out, "Configuration %s is valid\n", root.Config)
	_, _ = fmt.Fprintf(g.Out, "  site:    %s (%s)\n", cfg.Site.Title, cfg.Site.Lang)
	_, _ = fmt.Fprintf(g.Out, "  navbar:  %d entries, %d links\n", nav.Count(cfg.Site.Theme.Navbar), len(nav.Links(doc.Navbar)))
	_, _ = fmt.Fprintf(g.Out, "  sidebar: %d routes\n", len(doc.Sidebar))
	_, _ = fmt.Fprintf(g.Out, "  plugins: %v\n", cfg.Site.Theme.Plugins.Names())
	return nil
}
