package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"
	"gopkg.in/yaml.v3"
)

// HeadTag is an element injected verbatim into every page's <head>.
type HeadTag struct {
	Tag     string `yaml:"tag"`
	Attrs   Attrs  `yaml:"attrs,omitempty"`
	Content string `yaml:"content,omitempty"`
}

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list. It encodes as a YAML mapping or JSON
// object that keeps declaration order.
type Attrs []Attr

func (a Attrs) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, attr := range a {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Value},
		)
	}
	return node, nil
}

func (a *Attrs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attrs must be a mapping", node.Line)
	}
	out := make(Attrs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value string
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		out = append(out, Attr{Key: node.Content[i].Value, Value: value})
	}
	*a = out
	return nil
}

func (a Attrs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(attr.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the tag as the [name, attrs] or [name, attrs, content]
// triple the theme expects.
func (h HeadTag) MarshalJSON() ([]byte, error) {
	attrs := h.Attrs
	if attrs == nil {
		attrs = Attrs{}
	}
	triple := []any{h.Tag, attrs}
	if h.Content != "" {
		triple = append(triple, h.Content)
	}
	return json.Marshal(triple)
}

var voidElements = map[atom.Atom]bool{atom.Meta: true, atom.Link: true, atom.Base: true}

// Validate only requires a tag name. Attributes and content are passed
// through as written.
func (h HeadTag) Validate() error {
	if strings.TrimSpace(h.Tag) == "" {
		return fmt.Errorf("head tag needs a name")
	}
	return nil
}

// RenderHead renders tags in order, one element per line. Attribute values
// and content are written verbatim, without escaping.
func RenderHead(tags []HeadTag) string {
	var b strings.Builder
	for _, t := range tags {
		b.WriteByte('<')
		b.WriteString(t.Tag)
		for _, attr := range t.Attrs {
			fmt.Fprintf(&b, ` %s="%s"`, attr.Key, attr.Value)
		}
		if t.Content == "" && voidElements[atom.Lookup([]byte(strings.ToLower(t.Tag)))] {
			b.WriteString("/>\n")
			continue
		}
		b.WriteByte('>')
		b.WriteString(t.Content)
		fmt.Fprintf(&b, "</%s>\n", t.Tag)
	}
	return b.String()
}
