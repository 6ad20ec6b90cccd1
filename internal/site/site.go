// Package site is the top-level site configuration handed to the generator:
// locale metadata, head-tag injections, the theme record and bundler options.
package site

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/theme"
)

// Config is the site configuration. It is assembled once per build and never
// mutated afterwards.
type Config struct {
	Base        string            `yaml:"base"`
	Lang        string            `yaml:"lang"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description,omitempty"`
	Locales     map[string]Locale `yaml:"locales,omitempty"`
	Head        []HeadTag         `yaml:"head,omitempty"`
	Theme       theme.Config      `yaml:"theme"`
	Bundler     Bundler           `yaml:"bundler"`
}

// Locale holds per-locale metadata, keyed by the locale's route path.
type Locale struct {
	Lang        string `yaml:"lang"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Bundler selects the bundler and passes its options through verbatim.
type Bundler struct {
	Name             string         `yaml:"name"`
	ViteOptions      map[string]any `yaml:"vite_options,omitempty"`
	VuePluginOptions map[string]any `yaml:"vue_plugin_options,omitempty"`
}

var bundlers = map[string]bool{"vite": true, "webpack": true}

// LocalePaths returns locale route keys in sorted order.
func (c *Config) LocalePaths() []string {
	paths := make([]string, 0, len(c.Locales))
	for p := range c.Locales {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Language returns the parsed site language, language.Und if unparsable.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.Und
	}
	return tag
}

// Validate checks site metadata, head tags and the embedded theme.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Base, "/") || !strings.HasSuffix(c.Base, "/") {
		return invalid("site.base", fmt.Sprintf("base %q must start and end with /", c.Base))
	}
	if strings.TrimSpace(c.Title) == "" {
		return invalid("site.title", "title must not be empty")
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return invalid("site.lang", fmt.Sprintf("invalid language tag %q", c.Lang))
	}
	for _, p := range c.LocalePaths() {
		field := fmt.Sprintf("site.locales[%s]", p)
		if !strings.HasPrefix(p, "/") || !strings.HasSuffix(p, "/") {
			return invalid(field, fmt.Sprintf("locale path %q must start and end with /", p))
		}
		if _, err := language.Parse(c.Locales[p].Lang); err != nil {
			return invalid(field, fmt.Sprintf("invalid language tag %q", c.Locales[p].Lang))
		}
	}
	for i, h := range c.Head {
		if err := h.Validate(); err != nil {
			return invalid(fmt.Sprintf("site.head[%d]", i), err.Error())
		}
	}
	if !bundlers[c.Bundler.Name] {
		return invalid("site.bundler.name", fmt.Sprintf("unsupported bundler %q", c.Bundler.Name))
	}
	return c.Theme.Validate()
}

func invalid(field, msg string) error {
	return errors.ValidationError(msg).Field(field).Build()
}

// IsCJK reports whether tag's base language is Chinese, Japanese or Korean.
func IsCJK(tag language.Tag) bool {
	base, _ := tag.Base()
	switch base.String() {
	case "zh", "ja", "ko":
		return true
	}
	return false
}
