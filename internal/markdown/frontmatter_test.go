package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func TestParsePage(t *testing.T) {
	t.Run("no frontmatter", func(t *testing.T) {
		p, err := ParsePage([]byte("# Title\n"))
		require.NoError(t, err)
		require.Equal(t, "# Title\n", string(p.Body))
		require.Empty(t, p.Frontmatter.Title)
	})

	t.Run("theme fields", func(t *testing.T) {
		p, err := ParsePage([]byte("---\ntitle: 核心基础\nicon: golang\norder: 2\ntag: [go, basics]\nsidebar: false\n---\nbody\n"))
		require.NoError(t, err)
		require.Equal(t, "body\n", string(p.Body))
		require.Equal(t, "核心基础", p.Frontmatter.Title)
		require.Equal(t, "golang", p.Frontmatter.Icon)
		require.Equal(t, 2, p.Frontmatter.Order)
		require.Equal(t, []string{"go", "basics"}, p.Frontmatter.Tag)
		require.Equal(t, map[string]any{"sidebar": false}, p.Frontmatter.Extra)
	})

	t.Run("crlf", func(t *testing.T) {
		p, err := ParsePage([]byte("---\r\ntitle: x\r\n---\r\nbody\r\n"))
		require.NoError(t, err)
		require.Equal(t, "x", p.Frontmatter.Title)
		require.Equal(t, "body\r\n", string(p.Body))
	})

	t.Run("empty header", func(t *testing.T) {
		p, err := ParsePage([]byte("---\n---\nbody"))
		require.NoError(t, err)
		require.Equal(t, "body", string(p.Body))
	})

	t.Run("missing closing delimiter", func(t *testing.T) {
		_, err := ParsePage([]byte("---\ntitle: x\nbody\n"))
		require.Error(t, err)
		require.True(t, errors.HasCategory(err, errors.CategoryValidation))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParsePage([]byte("---\ntitle: [x\n---\n"))
		require.Error(t, err)
	})
}
