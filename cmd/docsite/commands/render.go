package commands

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/generator"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Output string   `short:"o" help:"Output directory; overrides output.directory"`
	Format []string `short:"f" help:"Output formats; overrides output.formats"`
	Clean  bool     `help:"Remove files an earlier run wrote that this run did not produce"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen := generator.New(outputDir(r.Output, cfg)).SetClean(r.Clean || cfg.Output.Clean).Protect(root.Config)
	return runRender(ctx, g, gen, cfg, r.Format)
}

func runRender(ctx context.Context, g *Global, gen *generator.Generator, cfg *config.Config, override []string) error {
	report, err := gen.Generate(ctx, *cfg.Site, formats(cfg, override))
	if err != nil {
		return err
	}
	for _, f := range report.Files {
		state := "unchanged"
		if f.Changed {
			state = "written"
		}
		_, _ = fmt.Fprintf(g.Out, "%-6s %-10s %s\n", f.Format, state, f.Path)
	}
	for _, p := range report.Removed {
		_, _ = fmt.Fprintf(g.Out, "%-6s %-10s %s\n", "-", "removed", p)
	}
	return nil
}

func formats(cfg *config.Config, override []string) []generator.Format {
	names := cfg.Output.Formats
	if len(override) > 0 {
		names = override
	}
	out := make([]generator.Format, 0, len(names))
	for _, n := range names {
		out = append(out, generator.Format(strings.ToLower(strings.TrimSpace(n))))
	}
	return out
}
