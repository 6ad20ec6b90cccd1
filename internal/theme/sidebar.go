package theme

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

// SidebarRoute configures the sidebar shown under a route prefix. A route
// either mirrors the content file structure or lists explicit entries.
type SidebarRoute struct {
	Prefix    string      `yaml:"prefix"`
	Structure bool        `yaml:"structure,omitempty"`
	Entries   nav.Entries `yaml:"entries,omitempty"`
}

// Sidebar is an ordered list of routes; the first matching prefix wins.
type Sidebar []SidebarRoute

// Validate checks route prefixes and explicit entry trees.
func (s Sidebar) Validate() error {
	seen := make(map[string]bool, len(s))
	for i, r := range s {
		field := fmt.Sprintf("theme.sidebar[%d]", i)
		if !strings.HasPrefix(r.Prefix, "/") {
			return errors.ValidationError(fmt.Sprintf("sidebar prefix %q must start with /", r.Prefix)).Field(field).Build()
		}
		if seen[r.Prefix] {
			return errors.ValidationError(fmt.Sprintf("duplicate sidebar prefix %q", r.Prefix)).Field(field).Build()
		}
		seen[r.Prefix] = true
		if r.Structure == (len(r.Entries) > 0) {
			return errors.ValidationError("sidebar route needs exactly one of structure or entries").Field(field).Build()
		}
		if err := nav.ValidateAt(fmt.Sprintf("sidebar[%s]", r.Prefix), r.Entries); err != nil {
			return err
		}
	}
	return nil
}

// Match returns the route serving path, if any.
func (s Sidebar) Match(path string) (SidebarRoute, bool) {
	for _, r := range s {
		if strings.HasPrefix(path, r.Prefix) {
			return r, true
		}
	}
	return SidebarRoute{}, false
}
