package nav

// Resolve validates entries and resolves every group prefix against its
// descendants, producing absolute links in declaration order.
func Resolve(entries Entries) ([]Resolved, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return resolveLevel(entries, ""), nil
}

// ResolveAt is Resolve for a tree mounted below prefix, such as a sidebar
// declared for a route. root names the tree in validation errors.
func ResolveAt(root, prefix string, entries Entries) ([]Resolved, error) {
	if err := ValidateAt(root, entries); err != nil {
		return nil, err
	}
	return resolveLevel(entries, prefix), nil
}

func resolveLevel(entries Entries, prefix string) []Resolved {
	out := make([]Resolved, 0, len(entries))
	for _, e := range entries {
		switch v := e.(type) {
		case Link:
			out = append(out, Resolved{Text: v.Text, Icon: v.Icon, Link: rooted(Join(prefix, v.Link))})
		case Group:
			p := Join(prefix, v.Prefix)
			out = append(out, Resolved{
				Text:     v.Text,
				Icon:     v.Icon,
				Prefix:   rooted(p),
				Children: resolveLevel(v.Children, p),
			})
		}
	}
	return out
}

// Walk visits entries depth-first in declaration order. Returning a non-nil
// error from fn stops the walk.
func Walk(entries Entries, fn func(e Entry, depth int) error) error {
	return walk(entries, 0, fn)
}

func walk(entries Entries, depth int, fn func(Entry, int) error) error {
	for _, e := range entries {
		if err := fn(e, depth); err != nil {
			return err
		}
		if g, ok := e.(Group); ok {
			if err := walk(g.Children, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Count returns the number of entries in the tree, groups included.
func Count(entries Entries) int {
	n := 0
	_ = Walk(entries, func(Entry, int) error { n++; return nil })
	return n
}

// Links flattens a resolved tree into its leaf links.
func Links(tree []Resolved) []Resolved {
	var out []Resolved
	for _, r := range tree {
		if r.IsGroup() {
			out = append(out, Links(r.Children)...)
			continue
		}
		out = append(out, r)
	}
	return out
}
