package repoinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/theme"
)

func initRepo(t *testing.T, branch string) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(branch)},
	})
	require.NoError(t, err)
	return dir, repo
}

func TestDetect_BeforeFirstCommit(t *testing.T) {
	dir, repo := initRepo(t, "main")
	_, err := repo.CreateRemote(&ggitcfg.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:codermast/golang-clouds.git"},
	})
	require.NoError(t, err)

	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o750))

	info, err := Detect(docs)
	require.NoError(t, err)
	require.Equal(t, "main", info.Branch)
	require.Empty(t, info.Commit)
	require.Equal(t, "https://github.com/codermast/golang-clouds", info.Origin)
	require.Equal(t, "docs", info.Dir)
}

func TestDetect_WithCommitAndNoRemote(t *testing.T) {
	dir, repo := initRepo(t, "pages")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# docs\n"), 0o600))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	hash, err := wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "docs", Email: "docs@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	info, err := Detect(dir)
	require.NoError(t, err)
	require.Equal(t, "pages", info.Branch)
	require.Equal(t, hash.String(), info.Commit)
	require.Empty(t, info.Origin)
	require.Empty(t, info.Dir)
}

func TestDetect_NotARepository(t *testing.T) {
	_, err := Detect(t.TempDir())
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryGit))
}

func TestWebURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"https://github.com/codermast/golang-clouds.git", "https://github.com/codermast/golang-clouds"},
		{"https://github.com/codermast/golang-clouds/", "https://github.com/codermast/golang-clouds"},
		{"git@github.com:codermast/golang-clouds.git", "https://github.com/codermast/golang-clouds"},
		{"ssh://git@git.example.com/team/docs.git", "https://git.example.com/team/docs"},
		{"ssh://git@git.example.com:22/team/docs.git", "https://git.example.com/team/docs"},
		{"ssh://git.example.com:2222/team/docs", "https://git.example.com/team/docs"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, WebURL(tt.in))
		})
	}
}

func TestApply(t *testing.T) {
	info := Info{Branch: "main", Origin: "https://github.com/x/y", Dir: "docs"}

	t.Run("fills empty fields", func(t *testing.T) {
		var cfg theme.Config
		require.Equal(t, []string{"repo", "docs_branch", "docs_dir"}, Apply(&cfg, info))
		require.Equal(t, "https://github.com/x/y/edit/main/docs/:path", cfg.EditLinkPattern())
	})

	t.Run("keeps configured values", func(t *testing.T) {
		cfg := theme.Default()
		require.Empty(t, Apply(&cfg, info))
		require.Equal(t, "https://github.com/codermast/golang-clouds", cfg.Repo)
	})
}
