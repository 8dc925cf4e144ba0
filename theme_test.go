package byteguide

import (
	"strings"
	"testing"
)

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "boring", " Boring ", ""} {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if _, ok := ThemeByName("kanagawa"); ok {
		t.Fatalf("unexpected theme kanagawa")
	}
	names := AvailableThemes()
	if strings.Join(names, ",") != "boring,default" {
		t.Fatalf("unexpected theme list %v", names)
	}
}

func TestDefaultThemeUsesAccent(t *testing.T) {
	styles := DefaultTheme().Styles()
	accent := ANSIColor(AccentRGB)
	if accent != "\x1b[38;2;30;64;175m" {
		t.Fatalf("unexpected accent sequence %q", accent)
	}
	if !strings.Contains(styles.Strong.Prefix, accent) {
		t.Fatalf("strong style lacks accent: %q", styles.Strong.Prefix)
	}
	boring, _ := ThemeByName("boring")
	if boring.Styles() != (Styles{}) {
		t.Fatalf("boring theme should carry no styles")
	}
}

func TestAccentTheme(t *testing.T) {
	th := AccentTheme([3]int{1, 2, 3})
	if th.Name() != "default" {
		t.Fatalf("unexpected name %q", th.Name())
	}
	if !strings.Contains(th.Styles().Bullet.Prefix, "38;2;1;2;3m") {
		t.Fatalf("bullet style lacks accent: %q", th.Styles().Bullet.Prefix)
	}
}

func TestParseHexColor(t *testing.T) {
	rgb, err := ParseHexColor("#1E40AF")
	if err != nil || rgb != AccentRGB {
		t.Fatalf("ParseHexColor: %v, %v", rgb, err)
	}
	if rgb, err = ParseHexColor("ffffff"); err != nil || rgb != [3]int{255, 255, 255} {
		t.Fatalf("ParseHexColor without #: %v, %v", rgb, err)
	}
	for _, bad := range []string{"", "#123", "#GGGGGG", "blue"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
	if got := HexColor(AccentRGB); got != AccentHex {
		t.Fatalf("HexColor = %q", got)
	}
}
