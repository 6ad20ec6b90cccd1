package generator

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Generator writes flavor output for a site into a directory.
type Generator struct {
	outputDir string
	clean     bool
	protected []string
	recorder  metrics.Recorder
}

// FileResult records what happened to one generated file.
type FileResult struct {
	Format  Format
	Path    string
	Changed bool
}

// Report summarizes one Generate call.
type Report struct {
	Files   []FileResult
	Removed []string
}

// Written returns the number of files whose content changed.
func (r Report) Written() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// New creates a generator writing to outputDir.
func New(outputDir string) *Generator {
	return &Generator{outputDir: filepath.Clean(outputDir), recorder: metrics.NoopRecorder{}}
}

// SetRecorder injects a metrics recorder (optional). Returns the generator for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		g.recorder = metrics.NoopRecorder{}
		return g
	}
	g.recorder = r
	return g
}

// SetClean makes Generate delete files that an earlier run wrote to the
// output directory and the current run did not produce.
func (g *Generator) SetClean(clean bool) *Generator {
	g.clean = clean
	return g
}

// Protect names files (typically the config file) whose presence in the
// output directory makes clean mode refuse to run.
func (g *Generator) Protect(paths ...string) *Generator {
	g.protected = append(g.protected, paths...)
	return g
}

// OutputDir returns the directory files are written to.
func (g *Generator) OutputDir() string { return g.outputDir }

// Generate resolves cfg once and writes the files of each requested format.
// Files whose content is unchanged are left untouched.
func (g *Generator) Generate(ctx context.Context, cfg site.Config, formats []Format) (*Report, error) {
	doc, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}
	g.recorder.SetNavEntries(nav.Count(cfg.Theme.Navbar))

	if g.clean {
		if err := g.checkCleanTarget(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(g.outputDir, 0o750); err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			Path(g.outputDir).Build()
	}

	report := &Report{}
	produced := make(map[string]bool)
	for _, name := range formats {
		if err := ctx.Err(); err != nil {
			g.recorder.IncRenderOutcome(string(name), metrics.OutcomeCanceled)
			return report, err
		}
		flavor := Get(name)
		if flavor == nil {
			return report, errors.ConfigError(fmt.Sprintf("unknown output format %q", name)).
				WithContext("formats", Formats()).Build()
		}

		start := time.Now()
		results, err := g.writeFlavor(flavor, doc)
		elapsed := time.Since(start)
		g.recorder.ObserveRenderDuration(string(name), elapsed)
		if err != nil {
			g.recorder.IncRenderOutcome(string(name), metrics.OutcomeFailed)
			return report, err
		}
		g.recorder.IncRenderOutcome(string(name), metrics.OutcomeSuccess)

		for _, r := range results {
			produced[r.Path] = true
		}
		report.Files = append(report.Files, results...)
		slog.Info("Generated site config", logfields.Format(string(name)), logfields.Files(len(results)), logfields.Duration(elapsed))
	}

	previous := g.readManifest()
	owned := make([]string, 0, len(produced)+len(previous))
	for p := range produced {
		owned = append(owned, p)
	}
	if g.clean {
		removed, err := g.removeStale(previous, produced)
		report.Removed = removed
		if err != nil {
			return report, err
		}
	} else {
		for _, p := range previous {
			if rel, ok := ownedPath(p); ok && !produced[rel] {
				owned = append(owned, rel)
			}
		}
	}
	return report, g.writeManifest(owned)
}

func (g *Generator) writeFlavor(f Flavor, doc *Document) ([]FileResult, error) {
	files, err := f.Files(doc)
	if err != nil {
		return nil, errors.RenderError("failed to render output").WithCause(err).
			WithContext("format", string(f.Name())).Build()
	}

	results := make([]FileResult, 0, len(files))
	for _, file := range files {
		changed, err := g.writeFile(file)
		if err != nil {
			return nil, err
		}
		g.recorder.IncFileWrite(string(f.Name()), changed)
		if changed {
			slog.Debug("Wrote file", logfields.Format(string(f.Name())), logfields.Path(file.Path))
		}
		results = append(results, FileResult{Format: f.Name(), Path: filepath.ToSlash(file.Path), Changed: changed})
	}
	return results, nil
}

// writeFile replaces the target through a temp file and rename so readers
// never observe a partial config.
func (g *Generator) writeFile(file File) (bool, error) {
	target := filepath.Join(g.outputDir, filepath.FromSlash(file.Path))
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, file.Data) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return false, errors.WrapError(err, errors.CategoryFileSystem, "failed to create directory").
			Path(filepath.Dir(target)).Build()
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, file.Data, 0o600); err != nil {
		return false, errors.WrapError(err, errors.CategoryFileSystem, "failed to write file").
			Path(tmp).Build()
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return false, errors.WrapError(err, errors.CategoryFileSystem, "failed to replace file").
			Path(target).Build()
	}
	return true, nil
}
