package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/repoinfo"
)

// Global carries state shared by all subcommands.
type Global struct {
	Out io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path" default:"docsite.yaml" type:"path"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text|json); overrides logging.format"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render   RenderCmd   `cmd:"" help:"Generate site configuration files for the selected formats"`
	Validate ValidateCmd `cmd:"" help:"Load and validate the configuration without writing anything"`
	Nav      NavCmd      `cmd:"" help:"Print the resolved navigation bar"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Preview  PreviewCmd  `cmd:"" help:"Render a markdown page with the site's markdown settings"`
	Watch    WatchCmd    `cmd:"" help:"Re-render whenever the configuration file changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	setupLogging(level, config.NormalizeLogFormat(c.LogFormat))
	return nil
}

func setupLogging(level slog.Level, format config.LogFormat) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// loadConfig loads the configuration file and applies its logging section
// unless flags already decided. With repository detection on, empty
// repository fields of the theme are filled from the git checkout.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level.SlogLevel()
	if root.Verbose {
		level = slog.LevelDebug
	}
	format := cfg.Logging.Format
	if root.LogFormat != "" {
		format = config.NormalizeLogFormat(root.LogFormat)
	}
	setupLogging(level, format)

	for _, name := range cfg.Site.Theme.Plugins.Unknown() {
		slog.Warn("Passing through options for unknown plugin", logfields.Plugin(name))
	}

	if cfg.Repository.Detect {
		info, err := repoinfo.Detect(cfg.Repository.Path)
		if err != nil {
			slog.Warn("Repository detection failed", logfields.Path(cfg.Repository.Path), logfields.Error(err))
			return cfg, nil
		}
		if set := repoinfo.Apply(&cfg.Site.Theme, info); len(set) > 0 {
			slog.Info("Filled repository settings from git", slog.Any("fields", set), slog.String("branch", info.Branch))
		}
	}
	return cfg, nil
}

func outputDir(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Output.Directory
}
