package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func TestResolveGroupPrefix(t *testing.T) {
	tree := Entries{Group{
		Text:     "Golang指南",
		Prefix:   "/golang/",
		Children: Entries{Link{Text: "核心基础", Link: "core/"}},
	}}

	got, err := Resolve(tree)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "/golang/", got[0].Prefix)
	require.True(t, got[0].IsGroup())
	require.Equal(t, "/golang/core/", got[0].Children[0].Link)
}

func TestResolveDefaultNavbar(t *testing.T) {
	got, err := Resolve(Default())
	require.NoError(t, err)

	texts := make([]string, 0, len(got))
	for _, r := range got {
		texts = append(texts, r.Text)
	}
	require.Equal(t, []string{"Golang指南", "云原生", "面试宝典", "项目实战"}, texts)

	var links []string
	for _, l := range Links(got) {
		links = append(links, l.Link)
	}
	require.Equal(t, []string{
		"/golang/core/", "/golang/advanced/", "/golang/engineering/", "/golang/distributed/",
		"/golang/web/gin/", "/golang/web/gorm/",
		"/golang/stdlib/",
		"/tutorials/database/mysql/", "/tutorials/database/redis/",
		"/tutorials/mq/kafka/", "/tutorials/mq/rabbitmq/", "/tutorials/mq/rocketmq/",
		"/tutorials/cloud/docker/", "/tutorials/cloud/kubernetes/", "/tutorials/cloud/linux/",
		"/interview/golang", "/interview/mysql", "/interview/redis", "/interview/rocketmq", "/interview/k8s",
		"/project/",
	}, links)

	// "云原生" declares no prefix of its own; its children carry absolute ones.
	require.Empty(t, got[1].Prefix)
	require.Equal(t, "/tutorials/mq/", got[1].Children[1].Prefix)
}

func TestResolveRootsRelativeLinks(t *testing.T) {
	got, err := Resolve(Entries{Link{Text: "About", Link: "about/"}})
	require.NoError(t, err)
	require.Equal(t, "/about/", got[0].Link)
}

func TestResolveAtMountsUnderPrefix(t *testing.T) {
	got, err := ResolveAt("sidebar[/golang/]", "/golang/", Entries{
		Link{Text: "简介", Link: "README.md"},
		Group{Text: "Web", Prefix: "web/", Children: Entries{Link{Text: "Gin", Link: "gin/"}}},
		Link{Text: "首页", Link: "/"},
	})
	require.NoError(t, err)
	require.Equal(t, "/golang/README.md", got[0].Link)
	require.Equal(t, "/golang/web/", got[1].Prefix)
	require.Equal(t, "/golang/web/gin/", got[1].Children[0].Link)
	require.Equal(t, "/", got[2].Link)

	_, err = ResolveAt("sidebar[/x/]", "/x/", Entries{Link{Text: "broken"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "has no target")
}

func TestResolveIsIdempotent(t *testing.T) {
	first, err := Resolve(Default())
	require.NoError(t, err)
	second, err := Resolve(Default())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, Default(), Default())
}

func TestValidateRejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name  string
		tree  Entries
		entry string
		msg   string
	}{
		{
			name:  "group without children",
			tree:  Entries{Group{Text: "Golang指南", Prefix: "/golang/"}},
			entry: "navbar[0]",
			msg:   "has no children",
		},
		{
			name:  "empty text on nested link",
			tree:  Entries{Group{Text: "g", Children: Entries{Link{Text: "ok", Link: "a"}, Link{Link: "b"}}}},
			entry: "navbar[0].children[1]",
			msg:   "text must not be empty",
		},
		{
			name:  "blank group text",
			tree:  Entries{Group{Text: "  ", Children: Entries{Link{Text: "a", Link: "a"}}}},
			entry: "navbar[0]",
			msg:   "text must not be empty",
		},
		{
			name:  "link without target",
			tree:  Entries{Link{Text: "Home"}},
			entry: "navbar[0]",
			msg:   "has no target",
		},
		{
			name:  "nil entry",
			tree:  Entries{nil},
			entry: "navbar[0]",
			msg:   "entry is nil",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.tree)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.msg)

			var classified *ferrors.ClassifiedError
			require.True(t, errors.As(err, &classified))
			require.Equal(t, ferrors.CategoryValidation, classified.Category())
			entry, _ := classified.Context().GetString("entry")
			require.Equal(t, tt.entry, entry)
		})
	}
}

func TestWalkAndCount(t *testing.T) {
	tree := Entries{
		Group{Text: "a", Children: Entries{
			Link{Text: "a1", Link: "x"},
			Group{Text: "a2", Children: Entries{Link{Text: "a2i", Link: "y"}}},
		}},
		Link{Text: "b", Link: "/b/"},
	}

	var visited []string
	var depths []int
	err := Walk(tree, func(e Entry, depth int) error {
		visited = append(visited, e.Label())
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "a1", "a2", "a2i", "b"}, visited)
	require.Equal(t, []int{0, 1, 1, 2, 0}, depths)
	require.Equal(t, 5, Count(tree))

	stop := errors.New("stop")
	n := 0
	err = Walk(tree, func(Entry, int) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 2, n)
}
