package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pkt.systems/byteguide"
	"pkt.systems/byteguide/pdf"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Output != byteguide.DefaultFilename {
		t.Fatalf("unexpected default output %q", cfg.Output)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	data := []byte(`output: out/guide.pdf
page:
  size: Letter
  margin: 36
fonts:
  size: 11
brand:
  accent: "#FF0000"
meta:
  title: Submission Guide
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output != "out/guide.pdf" || cfg.Page.Size != "Letter" || cfg.Page.Margin != 36 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Fonts.Family != "Helvetica" {
		t.Fatalf("expected default font family to survive, got %q", cfg.Fonts.Family)
	}

	p := cfg.PDF()
	if p.PageSize != "Letter" || p.Margin != 36 || p.FontSize != 11 {
		t.Fatalf("unexpected pdf config: %+v", p)
	}
	if p.AccentRGB != [3]int{255, 0, 0} {
		t.Fatalf("unexpected accent: %v", p.AccentRGB)
	}
	if p.Title != "Submission Guide" || p.Author != "ByteRead" {
		t.Fatalf("unexpected metadata: %q %q", p.Title, p.Author)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("colour: blue\n"))
	if !errors.Is(err, ErrConfigParse) {
		t.Fatalf("expected ErrConfigParse, got %v", err)
	}
}

func TestParseEmptyReturnsDefault(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"page size":     func(c *Config) { c.Page.Size = "B7" },
		"margin":        func(c *Config) { c.Page.Margin = -1 },
		"font size":     func(c *Config) { c.Fonts.Size = -2 },
		"zero size":     func(c *Config) { c.Fonts.Size = 0 },
		"zero leading":  func(c *Config) { c.Fonts.LineHeight = 0 },
		"partial fonts": func(c *Config) { c.Fonts.Regular = "/fonts/a.ttf" },
		"accent":        func(c *Config) { c.Brand.Accent = "navy" },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestParseRejectsLargeInput(t *testing.T) {
	data := make([]byte, MaxInputSize+1)
	if _, err := Parse(data); !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
}

func TestBlackAccentAndZeroMarginSurvive(t *testing.T) {
	cfg, err := Parse([]byte("page:\n  margin: 0\nbrand:\n  accent: \"#000000\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Accent() != [3]int{0, 0, 0} {
		t.Fatalf("unexpected console accent %v", cfg.Accent())
	}
	p := cfg.PDF()
	if p.AccentRGB != [3]int{0, 0, 0} {
		t.Fatalf("black accent lost in pdf config: %v", p.AccentRGB)
	}
	if p.Margin != 0 {
		t.Fatalf("zero margin lost in pdf config: %v", p.Margin)
	}

	if !pdf.Available {
		return
	}
	var out bytes.Buffer
	p.DisableCompression = true
	if err := pdf.RenderMarkdown(&out, "# **Brand**\n---\n## 1. One", p); err != nil {
		t.Fatalf("render: %v", err)
	}
	if bytes.Contains(out.Bytes(), []byte("0.118 0.251 0.686 rg")) {
		t.Fatalf("pdf fell back to the default accent")
	}
}
