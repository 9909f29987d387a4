package presentation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Theme defines a theme using W3C hex colors. Named colors understood by
// tcell ("yellow", "darkcyan") are accepted too.
type Theme struct {
	// Base names the built-in theme that fills any role left empty.
	Base string `yaml:"base,omitempty"`

	Focus    string `yaml:"focus"`
	Accent   string `yaml:"accent"`
	Primary  string `yaml:"primary"`
	Muted    string `yaml:"muted"`
	Title    string `yaml:"title"`
	Error    string `yaml:"error"`
	Warning  string `yaml:"warning"`
	Success  string `yaml:"success"`
	HeaderBg string `yaml:"header_bg"`
}

const DefaultThemeName = "default"

var Themes = map[string]*Theme{
	"default": {
		Focus:    "#5FD7FF", // cyan - focused frames
		Accent:   "#FFD75F", // yellow - key labels, send button
		Primary:  "#E8E8E8", // off-white - regular text
		Muted:    "#6B6B6B", // matte gray - placeholders, idle borders
		Title:    "#5FD7FF",
		Error:    "#FF5F5F",
		Warning:  "#FFD75F",
		Success:  "#87D787",
		HeaderBg: "#1C1C1C",
	},
	"dracula": {
		Focus:    "#BD93F9",
		Accent:   "#F1FA8C",
		Primary:  "#F8F8F2",
		Muted:    "#6272A4",
		Title:    "#8BE9FD",
		Error:    "#FF5555",
		Warning:  "#FFB86C",
		Success:  "#50FA7B",
		HeaderBg: "#282A36",
	},
	"minimal": {
		Focus:    "#B0B0B0",
		Accent:   "#D0D0D0",
		Primary:  "#C8C8C8",
		Muted:    "#505050",
		Title:    "#A0A0A0",
		Error:    "#C85450",
		Warning:  "#B0A070",
		Success:  "#80A080",
		HeaderBg: "#202020",
	},
}

// GetTheme returns the named built-in theme, or the default one.
func GetTheme(name string) *Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return Themes[DefaultThemeName]
}

// GetThemeNames returns all built-in theme names, sorted.
func GetThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadThemeFile reads a YAML theme. Roles left empty are taken from the
// theme's base, or from the default theme when no base is named.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}

	base := DefaultThemeName
	if theme.Base != "" {
		if _, ok := Themes[theme.Base]; !ok {
			return nil, fmt.Errorf("theme file %s: unknown base theme %q", path, theme.Base)
		}
		base = theme.Base
	}
	return theme.inherit(Themes[base]), nil
}

// ResolveTheme looks for <dir>/<name>.yaml first and then the built-ins.
// An unknown name resolves to the default theme together with an error.
func ResolveTheme(name, dir string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}

	if dir != "" {
		path := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(path); err == nil {
			return LoadThemeFile(path)
		}
	}

	if theme, ok := Themes[name]; ok {
		return theme, nil
	}
	return Themes[DefaultThemeName], fmt.Errorf("unknown theme %q", name)
}

func (t Theme) inherit(base *Theme) *Theme {
	pick := func(own, fallback string) string {
		if own != "" {
			return own
		}
		return fallback
	}
	return &Theme{
		Base:     t.Base,
		Focus:    pick(t.Focus, base.Focus),
		Accent:   pick(t.Accent, base.Accent),
		Primary:  pick(t.Primary, base.Primary),
		Muted:    pick(t.Muted, base.Muted),
		Title:    pick(t.Title, base.Title),
		Error:    pick(t.Error, base.Error),
		Warning:  pick(t.Warning, base.Warning),
		Success:  pick(t.Success, base.Success),
		HeaderBg: pick(t.HeaderBg, base.HeaderBg),
	}
}
