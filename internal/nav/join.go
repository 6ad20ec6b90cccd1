package nav

import (
	"regexp"
	"strings"
)

var schemeRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// IsExternal reports whether path carries a scheme or is protocol-relative.
func IsExternal(path string) bool {
	return strings.HasPrefix(path, "//") || schemeRE.MatchString(path)
}

// IsAbsolute reports whether path is rooted at the site base.
func IsAbsolute(path string) bool { return strings.HasPrefix(path, "/") }

// Join applies a group prefix to a path. Absolute and external paths are
// returned unchanged, as is any path under an empty prefix. Join is
// associative: Join(Join(a, b), c) == Join(a, Join(b, c)).
func Join(prefix, path string) string {
	if path == "" {
		return prefix
	}
	if prefix == "" || IsAbsolute(path) || IsExternal(path) {
		return path
	}
	return ensureTrailingSlash(prefix) + path
}

func ensureTrailingSlash(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

// rooted anchors a still-relative path at the site root.
func rooted(p string) string {
	if p == "" || IsAbsolute(p) || IsExternal(p) {
		return p
	}
	return "/" + p
}
