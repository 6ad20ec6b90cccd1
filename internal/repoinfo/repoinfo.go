// Package repoinfo reads branch and remote details from the git checkout
// that holds the docs, so edit links can be derived without configuration.
package repoinfo

import (
	stdErrors "errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/theme"
)

// Info describes the checkout containing a docs directory.
type Info struct {
	Branch string // short branch name, empty for a detached HEAD
	Commit string // HEAD commit, empty before the first commit
	Origin string // web URL of the origin remote
	Dir    string // docs directory relative to the worktree root
}

// Detect opens the repository containing path, searching parent directories.
func Detect(path string) (Info, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Info{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve docs path").
			Path(path).Build()
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Info{}, errors.GitError("failed to open repository").WithCause(err).
			Path(abs).Build()
	}

	var info Info

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return Info{}, errors.GitError("failed to read HEAD").WithCause(err).
			Path(abs).Build()
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		info.Branch = head.Target().Short()
	}
	if resolved, rerr := repo.Head(); rerr == nil {
		info.Commit = resolved.Hash().String()
	}

	remote, err := repo.Remote("origin")
	switch {
	case err == nil:
		if urls := remote.Config().URLs; len(urls) > 0 {
			info.Origin = WebURL(urls[0])
		}
	case !stdErrors.Is(err, git.ErrRemoteNotFound):
		return Info{}, errors.GitError("failed to read origin remote").WithCause(err).Build()
	}

	if wt, werr := repo.Worktree(); werr == nil {
		if rel, rerr := filepath.Rel(wt.Filesystem.Root(), abs); rerr == nil && rel != "." {
			info.Dir = filepath.ToSlash(rel)
		}
	}
	return info, nil
}

var scpLike = regexp.MustCompile(`^[\w.-]+@([\w.-]+):(.+)$`)

// WebURL turns a clone URL into the https address of the repository page.
func WebURL(remote string) string {
	u := strings.TrimSpace(remote)
	if m := scpLike.FindStringSubmatch(u); m != nil {
		u = "https://" + m[1] + "/" + m[2]
	}
	if rest, ok := strings.CutPrefix(u, "ssh://"); ok {
		if at := strings.Index(rest, "@"); at >= 0 {
			rest = rest[at+1:]
		}
		host, path, _ := strings.Cut(rest, "/")
		if h, _, ok := strings.Cut(host, ":"); ok {
			host = h
		}
		u = "https://" + host + "/" + path
	}
	u = strings.TrimSuffix(u, "/")
	return strings.TrimSuffix(u, ".git")
}

// Apply fills repository fields of the theme that are still empty and
// returns the names of the fields it set.
func Apply(cfg *theme.Config, info Info) []string {
	var set []string
	if cfg.Repo == "" && info.Origin != "" {
		cfg.Repo = info.Origin
		set = append(set, "repo")
	}
	if cfg.DocsBranch == "" && info.Branch != "" {
		cfg.DocsBranch = info.Branch
		set = append(set, "docs_branch")
	}
	if cfg.DocsDir == "" && info.Dir != "" {
		cfg.DocsDir = info.Dir
		set = append(set, "docs_dir")
	}
	return set
}
