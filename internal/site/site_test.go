package site

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, Default(), Default(), "assembly must be idempotent")
	require.Equal(t, []string{"/"}, cfg.LocalePaths())
	require.True(t, IsCJK(cfg.Language()))
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"base without slash", func(c *Config) { c.Base = "docs" }, "site.base"},
		{"empty title", func(c *Config) { c.Title = " " }, "site.title"},
		{"bad lang", func(c *Config) { c.Lang = "not a tag!" }, "site.lang"},
		{"bad locale path", func(c *Config) { c.Locales["en"] = Locale{Lang: "en-US"} }, "site.locales[en]"},
		{"bad locale lang", func(c *Config) { c.Locales["/en/"] = Locale{Lang: "??"} }, "site.locales[/en/]"},
		{"unnamed head tag", func(c *Config) { c.Head = append(c.Head, HeadTag{Tag: " "}) }, "site.head[3]"},
		{"unknown bundler", func(c *Config) { c.Bundler.Name = "rollup" }, "site.bundler.name"},
		{"theme error", func(c *Config) { c.Theme.Author.Name = "" }, "theme.author.name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			classified, ok := ferrors.AsClassified(err)
			require.True(t, ok)
			require.Equal(t, ferrors.CategoryValidation, classified.Category())
			field, _ := classified.Context().GetString("field")
			require.Equal(t, tt.field, field)
		})
	}
}

func TestIsCJK(t *testing.T) {
	require.True(t, IsCJK(language.MustParse("ja")))
	require.True(t, IsCJK(language.MustParse("zh-Hant-TW")))
	require.False(t, IsCJK(language.MustParse("en-US")))
	require.False(t, IsCJK(language.Und))
}

func TestRenderHead(t *testing.T) {
	want := `<meta name="keywords" content="Golang,Go语言,云原生,Docker,Kubernetes,微服务,MySQL,Redis,gRPC"/>` + "\n" +
		`<meta name="baidu-site-verification" content="codeva-GfqTd2Cs0w"/>` + "\n" +
		`<script><script charset="UTF-8" id="LA_COLLECT" src="//sdk.51.la/js-sdk-pro.min.js"></script><script>LA.init({id:"JWxCHZQ6MtnZPBkF",ck:"JWxCHZQ6MtnZPBkF"})</script></script>` + "\n"
	require.Equal(t, want, RenderHead(Default().Head))

	tests := []struct {
		name string
		tag  HeadTag
		want string
	}{
		{"title content", HeadTag{Tag: "title", Content: "A & <B>"}, "<title>A & <B></title>\n"},
		{"attribute value", HeadTag{Tag: "meta", Attrs: Attrs{{"content", "a&b 'q'"}}}, `<meta content="a&b 'q'"/>` + "\n"},
		{"any tag", HeadTag{Tag: "template", Content: "<p>x</p>"}, "<template><p>x</p></template>\n"},
		{"void with content", HeadTag{Tag: "meta", Content: "x"}, "<meta>x</meta>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RenderHead([]HeadTag{tt.tag}))
		})
	}
}

func TestValidateAcceptsAnyNamedHeadTag(t *testing.T) {
	cfg := Default()
	cfg.Head = append(cfg.Head, HeadTag{Tag: "template"}, HeadTag{Tag: "noscript", Content: "a & b"})
	require.NoError(t, cfg.Validate())
}

func TestHeadTagJSON(t *testing.T) {
	data, err := json.Marshal(Default().Head)
	require.NoError(t, err)
	require.JSONEq(t, `[
		["meta", {"name": "keywords", "content": "Golang,Go语言,云原生,Docker,Kubernetes,微服务,MySQL,Redis,gRPC"}],
		["meta", {"name": "baidu-site-verification", "content": "codeva-GfqTd2Cs0w"}],
		["script", {}, "<script charset=\"UTF-8\" id=\"LA_COLLECT\" src=\"//sdk.51.la/js-sdk-pro.min.js\"></script><script>LA.init({id:\"JWxCHZQ6MtnZPBkF\",ck:\"JWxCHZQ6MtnZPBkF\"})</script>"]
	]`, string(data))

	// attribute order is preserved, not sorted
	data, err = json.Marshal(Attrs{{Key: "name", Value: "a"}, {Key: "content", Value: "b"}})
	require.NoError(t, err)
	require.Equal(t, `{"name":"a","content":"b"}`, string(data))
}

func TestAttrsYAMLKeepsOrder(t *testing.T) {
	src := "tag: link\nattrs:\n  rel: icon\n  href: /favicon.ico\n  type: image/x-icon\n"
	var tag HeadTag
	require.NoError(t, yaml.Unmarshal([]byte(src), &tag))
	require.Equal(t, Attrs{{"rel", "icon"}, {"href", "/favicon.ico"}, {"type", "image/x-icon"}}, tag.Attrs)

	out, err := yaml.Marshal(tag)
	require.NoError(t, err)
	require.Equal(t, "tag: link\nattrs:\n    rel: icon\n    href: /favicon.ico\n    type: image/x-icon\n", string(out))

	require.Error(t, yaml.Unmarshal([]byte("tag: link\nattrs: [a, b]\n"), &tag))
}

func TestDefaultSurvivesYAML(t *testing.T) {
	data, err := yaml.Marshal(Default())
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Equal(t, Default(), back)
}
