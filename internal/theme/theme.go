// Package theme holds the theme configuration record: navbar, sidebar,
// branding, author metadata, feature toggles, markdown options and the
// opaque plugin option bags handed to the theme's plugin system.
package theme

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

// Config is the theme configuration. One exists per site build.
type Config struct {
	Navbar        nav.Entries       `yaml:"navbar"`
	Sidebar       Sidebar           `yaml:"sidebar,omitempty"`
	Footer        string            `yaml:"footer,omitempty"`
	DisplayFooter bool              `yaml:"display_footer"`
	Breadcrumb    bool              `yaml:"breadcrumb"`
	DarkMode      DarkMode          `yaml:"dark_mode,omitempty"`
	Favicon       string            `yaml:"favicon,omitempty"`
	Logo          string            `yaml:"logo,omitempty"`
	Hostname      string            `yaml:"hostname,omitempty"`
	Repo          string            `yaml:"repo,omitempty"`
	DocsDir       string            `yaml:"docs_dir,omitempty"`
	DocsBranch    string            `yaml:"docs_branch,omitempty"`
	Author        Author            `yaml:"author"`
	MetaLocales   map[string]string `yaml:"meta_locales,omitempty"`
	Markdown      MarkdownOptions   `yaml:"markdown,omitempty"`
	Plugins       Plugins           `yaml:"plugins,omitempty"`
}

// Author is the site-wide default author.
type Author struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Validate checks the theme record. Plugin option bags are not inspected.
func (c *Config) Validate() error {
	if err := nav.Validate(c.Navbar); err != nil {
		return err
	}
	if err := c.Sidebar.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Author.Name) == "" {
		return errors.ValidationError("author name must not be empty").Field("theme.author.name").Build()
	}
	if _, err := ParseDarkMode(string(c.DarkMode)); err != nil {
		return errors.ValidationError(err.Error()).Field("theme.dark_mode").Build()
	}
	if _, err := parseFragment(c.Footer); err != nil {
		return errors.ValidationError("footer is not valid HTML").Field("theme.footer").Build()
	}
	if err := c.Markdown.Validate(); err != nil {
		return err
	}
	for name := range c.Plugins {
		if strings.TrimSpace(name) == "" {
			return errors.ValidationError("plugin name must not be empty").Field("theme.plugins").Build()
		}
	}
	return nil
}

// EditLinkPattern returns the repository URL pattern used for "edit this
// page" links, or "" when the repository is unknown.
func (c *Config) EditLinkPattern() string {
	if c.Repo == "" || c.DocsBranch == "" {
		return ""
	}
	repo := strings.TrimSuffix(strings.TrimSuffix(c.Repo, "/"), ".git")
	dir := strings.Trim(c.DocsDir, "/")
	if dir == "" {
		return fmt.Sprintf("%s/edit/%s/:path", repo, c.DocsBranch)
	}
	return fmt.Sprintf("%s/edit/%s/%s/:path", repo, c.DocsBranch, dir)
}
