package site

import "git.home.luguber.info/inful/docsite/internal/theme"

const (
	defaultTitle       = "Golang 全栈指南"
	defaultDescription = "Golang 全栈指南 - 专注 Golang 云原生技术栈，涵盖 Go 语言、Docker、Kubernetes、微服务等核心技术！"
)

// Default returns the site configuration.
func Default() Config {
	return Config{
		Base:        "/",
		Lang:        "zh-CN",
		Title:       defaultTitle,
		Description: defaultDescription,
		Locales: map[string]Locale{
			"/": {Lang: "zh-CN", Title: defaultTitle, Description: defaultDescription},
		},
		Head: []HeadTag{
			{Tag: "meta", Attrs: Attrs{
				{Key: "name", Value: "keywords"},
				{Key: "content", Value: "Golang,Go语言,云原生,Docker,Kubernetes,微服务,MySQL,Redis,gRPC"},
			}},
			{Tag: "meta", Attrs: Attrs{
				{Key: "name", Value: "baidu-site-verification"},
				{Key: "content", Value: "codeva-GfqTd2Cs0w"},
			}},
			{Tag: "script", Content: `<script charset="UTF-8" id="LA_COLLECT" src="//sdk.51.la/js-sdk-pro.min.js"></script><script>LA.init({id:"JWxCHZQ6MtnZPBkF",ck:"JWxCHZQ6MtnZPBkF"})</script>`},
		},
		Theme:   theme.Default(),
		Bundler: Bundler{Name: "vite"},
	}
}
