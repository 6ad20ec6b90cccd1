package generator

import (
	"encoding/json"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// ManifestName is the file in the output directory listing what docsite
// wrote there. Clean mode only ever removes files named in it.
const ManifestName = ".docsite-manifest.json"

type manifest struct {
	Files []string `json:"files"`
}

// readManifest returns the files recorded by earlier runs. A missing or
// unreadable manifest yields none, so nothing is considered stale.
func (g *Generator) readManifest() []string {
	data, err := os.ReadFile(filepath.Join(g.outputDir, ManifestName))
	if err != nil {
		return nil
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		slog.Warn("Ignoring unreadable output manifest", logfields.Path(ManifestName), logfields.Error(err))
		return nil
	}
	return m.Files
}

func (g *Generator) writeManifest(files []string) error {
	sort.Strings(files)
	data, err := json.MarshalIndent(manifest{Files: files}, "", "  ")
	if err != nil {
		return errors.InternalError("failed to encode output manifest").WithCause(err).Build()
	}
	_, err = g.writeFile(File{Path: ManifestName, Data: append(data, '\n')})
	return err
}

// ownedPath validates a manifest entry: relative, inside the output
// directory and not the manifest itself.
func ownedPath(rel string) (string, bool) {
	clean := path.Clean(rel)
	if rel == "" || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") || clean == ManifestName {
		return "", false
	}
	return clean, true
}

// checkCleanTarget refuses clean mode for directories that look like a
// project root: a git checkout, or one holding a protected file.
func (g *Generator) checkCleanTarget() error {
	if _, err := os.Stat(filepath.Join(g.outputDir, ".git")); err == nil {
		return errors.ConfigError("refusing to clean an output directory that contains .git").
			Path(g.outputDir).Build()
	}
	outAbs, err := filepath.Abs(g.outputDir)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve output directory").
			Path(g.outputDir).Build()
	}
	for _, p := range g.protected {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(outAbs, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return errors.ConfigError("refusing to clean an output directory that contains "+filepath.Base(p)).
			Path(g.outputDir).WithContext("protected", p).Build()
	}
	return nil
}

// removeStale deletes files listed by earlier runs that this run did not
// produce.
func (g *Generator) removeStale(previous []string, produced map[string]bool) ([]string, error) {
	var removed []string
	for _, entry := range previous {
		rel, ok := ownedPath(entry)
		if !ok {
			return removed, errors.FileSystemError("output manifest names a path outside the output directory").
				Path(entry).Build()
		}
		if produced[rel] {
			continue
		}
		err := os.Remove(filepath.Join(g.outputDir, filepath.FromSlash(rel)))
		if err != nil && !os.IsNotExist(err) {
			return removed, errors.WrapError(err, errors.CategoryFileSystem, "failed to remove stale file").
				Path(rel).Build()
		}
		if err == nil {
			slog.Debug("Removed stale file", logfields.Path(rel))
			removed = append(removed, rel)
		}
	}
	return removed, nil
}
