package theme

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/foundation/normalization"
)

// DarkMode selects how the theme offers a dark color scheme.
type DarkMode string

const (
	DarkModeAuto    DarkMode = "auto"
	DarkModeSwitch  DarkMode = "switch"
	DarkModeToggle  DarkMode = "toggle"
	DarkModeEnable  DarkMode = "enable"
	DarkModeDisable DarkMode = "disable"
)

var darkModes = normalization.NewNormalizer(map[string]DarkMode{
	"auto":    DarkModeAuto,
	"switch":  DarkModeSwitch,
	"toggle":  DarkModeToggle,
	"enable":  DarkModeEnable,
	"disable": DarkModeDisable,
}, DarkModeSwitch)

// ParseDarkMode normalizes raw. An empty value selects DarkModeSwitch.
func ParseDarkMode(raw string) (DarkMode, error) {
	m, err := darkModes.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid dark mode: %w", err)
	}
	return m, nil
}

// Enabled reports whether a dark scheme is available to readers.
func (d DarkMode) Enabled() bool { return d != DarkModeDisable }

// Mode returns the normalized dark mode, DarkModeSwitch when unset or invalid.
func (c *Config) Mode() DarkMode {
	return darkModes.Normalize(string(c.DarkMode))
}
