package nav

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Validate checks the structural invariants of a navbar tree.
func Validate(entries Entries) error { return ValidateAt("navbar", entries) }

// ValidateAt validates entries, reporting positions relative to root
// (e.g. "sidebar[/golang/]").
func ValidateAt(root string, entries Entries) error {
	return validateLevel(root, entries)
}

func validateLevel(at string, entries Entries) error {
	for i, e := range entries {
		pos := fmt.Sprintf("%s[%d]", at, i)
		switch v := e.(type) {
		case nil:
			return invalid(pos, "entry is nil")
		case Link:
			if strings.TrimSpace(v.Text) == "" {
				return invalid(pos, "text must not be empty")
			}
			if strings.TrimSpace(v.Link) == "" {
				return invalid(pos, fmt.Sprintf("link %q has no target", v.Text))
			}
		case Group:
			if strings.TrimSpace(v.Text) == "" {
				return invalid(pos, "text must not be empty")
			}
			if len(v.Children) == 0 {
				return invalid(pos, fmt.Sprintf("group %q has no children", v.Text))
			}
			if err := validateLevel(pos+".children", v.Children); err != nil {
				return err
			}
		default:
			return invalid(pos, fmt.Sprintf("unsupported entry type %T", e))
		}
	}
	return nil
}

func invalid(pos, msg string) error {
	return errors.ValidationError(msg).WithContext("entry", pos).Build()
}
