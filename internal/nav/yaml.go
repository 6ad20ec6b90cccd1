package nav

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// UnmarshalYAML decodes a list of entries. A mapping with a children key is a
// Group; one with a link and no children is a Link. Anything else is rejected,
// so a group that lost its children never decodes into an empty menu.
func (es *Entries) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return decodeErr(node, "navigation entries must be a list")
	}
	out := make(Entries, 0, len(node.Content))
	for _, item := range node.Content {
		e, err := decodeEntry(item)
		if err != nil {
			return err
		}
		out = append(out, e)
	}
	*es = out
	return nil
}

func decodeEntry(node *yaml.Node) (Entry, error) {
	if node.Kind != yaml.MappingNode {
		return nil, decodeErr(node, "navigation entry must be a mapping")
	}
	var children *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		switch key.Value {
		case "text", "link", "icon", "prefix":
		case "children":
			children = node.Content[i+1]
		default:
			return nil, decodeErr(key, fmt.Sprintf("unknown navigation field %q", key.Value))
		}
	}

	var raw struct {
		Text   string `yaml:"text"`
		Link   string `yaml:"link"`
		Icon   string `yaml:"icon"`
		Prefix string `yaml:"prefix"`
	}
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}

	switch {
	case children != nil:
		if raw.Link != "" {
			return nil, decodeErr(node, fmt.Sprintf("group %q must not set link", raw.Text))
		}
		var kids Entries
		if err := children.Decode(&kids); err != nil {
			return nil, err
		}
		if len(kids) == 0 {
			return nil, decodeErr(node, fmt.Sprintf("group %q has no children", raw.Text))
		}
		return Group{Text: raw.Text, Icon: raw.Icon, Prefix: raw.Prefix, Children: kids}, nil
	case raw.Link != "":
		if raw.Prefix != "" {
			return nil, decodeErr(node, fmt.Sprintf("link %q must not set prefix", raw.Text))
		}
		return Link{Text: raw.Text, Link: raw.Link, Icon: raw.Icon}, nil
	default:
		return nil, decodeErr(node, fmt.Sprintf("group %q has no children", raw.Text))
	}
}

func decodeErr(node *yaml.Node, msg string) error {
	return errors.ValidationError(msg).WithContext("line", node.Line).Build()
}
