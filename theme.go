package byteguide

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiItalic = "\x1b[3m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the console renderer.
type Styles struct {
	Title      Style
	Subtitle   Style
	Heading2   Style
	Heading3   Style
	Strong     Style
	Italic     Style
	Bullet     Style
	TableLabel Style
}

// Theme provides named styles for console rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

// ANSIColor returns the 24-bit foreground sequence for rgb.
func ANSIColor(rgb [3]int) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", rgb[0], rgb[1], rgb[2])
}

func accentStyles(accent [3]int) Styles {
	color := ANSIColor(accent)
	return Styles{
		Title:      style(ansiBold),
		Subtitle:   style(ansiItalic),
		Heading2:   style(ansiBold),
		Heading3:   style(ansiBold),
		Strong:     style(ansiBold, color),
		Italic:     style(ansiItalic),
		Bullet:     style(color),
		TableLabel: style(ansiBold, color),
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: accentStyles(AccentRGB)},
	"boring":  theme{name: "boring", styles: Styles{}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	t, ok := builtinThemes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// AccentTheme returns the default theme with a different accent color.
func AccentTheme(accent [3]int) Theme {
	return theme{name: "default", styles: accentStyles(accent)}
}

// ParseHexColor parses "#RRGGBB" (the leading # is optional).
func ParseHexColor(s string) ([3]int, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return [3]int{}, fmt.Errorf("invalid hex color %q", s)
	}
	var rgb [3]int
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]int{}, fmt.Errorf("invalid hex color %q", s)
		}
		rgb[i] = int(v)
	}
	return rgb, nil
}

// HexColor formats rgb as "#RRGGBB".
func HexColor(rgb [3]int) string {
	return fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2])
}
