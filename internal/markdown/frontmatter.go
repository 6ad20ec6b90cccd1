package markdown

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Frontmatter holds the page fields the theme reads from a page header.
// Unrecognized keys are kept in Extra.
type Frontmatter struct {
	Title    string         `yaml:"title,omitempty"`
	Icon     string         `yaml:"icon,omitempty"`
	Order    int            `yaml:"order,omitempty"`
	Category []string       `yaml:"category,omitempty"`
	Tag      []string       `yaml:"tag,omitempty"`
	Extra    map[string]any `yaml:",inline"`
}

// Page is a markdown source split into its header and body.
type Page struct {
	Frontmatter Frontmatter
	Body        []byte
}

// ParsePage separates a `---` delimited YAML header from the body. Content
// without a header is returned as the body.
func ParsePage(content []byte) (Page, error) {
	nl := "\n"
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		nl = "\r\n"
	}
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return Page{Body: content}, nil
	}

	rest := content[len(open):]
	var header, body []byte
	if bytes.HasPrefix(rest, open) {
		body = rest[len(open):]
	} else {
		closing := []byte(nl + "---" + nl)
		idx := bytes.Index(rest, closing)
		if idx < 0 {
			return Page{}, errors.ValidationError("frontmatter is missing its closing delimiter").Build()
		}
		header = rest[:idx+len(nl)]
		body = rest[idx+len(closing):]
	}

	var fm Frontmatter
	if len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, &fm); err != nil {
			return Page{}, errors.WrapError(err, errors.CategoryValidation, "invalid frontmatter").Build()
		}
	}
	return Page{Frontmatter: fm, Body: body}, nil
}
