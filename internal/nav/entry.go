// Package nav models the site's navigation tree and resolves group prefixes
// into absolute link paths.
//
// A tree is an ordered list of entries. Each entry is either a Link (a leaf
// pointing at a page) or a Group (a labelled submenu with children and an
// optional path prefix applied to every descendant link).
package nav

// Entry is one node of the navigation tree: a Link or a Group.
type Entry interface {
	Label() string
	isEntry()
}

// Link is a leaf entry.
type Link struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Group is a submenu. Children must be non-empty and are rendered in order.
type Group struct {
	Text     string  `yaml:"text" json:"text"`
	Icon     string  `yaml:"icon,omitempty" json:"icon,omitempty"`
	Prefix   string  `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Children Entries `yaml:"children" json:"children"`
}

// Entries is an ordered sequence of navigation entries.
type Entries []Entry

func (l Link) Label() string  { return l.Text }
func (g Group) Label() string { return g.Text }

func (Link) isEntry()  {}
func (Group) isEntry() {}

// Resolved is a render-ready node. Link is set on leaves, Children on groups;
// Prefix carries the accumulated group prefix.
type Resolved struct {
	Text     string     `yaml:"text" json:"text"`
	Icon     string     `yaml:"icon,omitempty" json:"icon,omitempty"`
	Link     string     `yaml:"link,omitempty" json:"link,omitempty"`
	Prefix   string     `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Children []Resolved `yaml:"children,omitempty" json:"children,omitempty"`
}

// IsGroup reports whether the node is a submenu.
func (r Resolved) IsGroup() bool { return len(r.Children) > 0 }
