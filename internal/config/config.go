// Package config loads the optional YAML style file for the byteguide CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"pkt.systems/byteguide"
	"pkt.systems/byteguide/pdf"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (1MB).
const MaxInputSize = 1 << 20

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrInputTooLarge  = errors.New("config exceeds maximum size")
)

var pageSizes = map[string]struct{}{
	"a3":      {},
	"a4":      {},
	"a5":      {},
	"letter":  {},
	"legal":   {},
	"tabloid": {},
}

// Config holds all settings that can be stored in a config file.
type Config struct {
	Output string      `yaml:"output"` // PDF path (default: ByteRead_Submission_Guide.pdf)
	Page   PageConfig  `yaml:"page"`
	Fonts  FontConfig  `yaml:"fonts"`
	Brand  BrandConfig `yaml:"brand"`
	Meta   MetaConfig  `yaml:"meta"`
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "A4", "Letter", ... (default: "A4")
	Margin float64 `yaml:"margin"` // points (default: 50)
}

// FontConfig selects the body font. Regular, Bold and Italic are TTF paths
// and must be given together; otherwise Family names a core font.
type FontConfig struct {
	Family     string  `yaml:"family"`
	Size       float64 `yaml:"size"`
	LineHeight float64 `yaml:"lineHeight"`
	Regular    string  `yaml:"regular"`
	Bold       string  `yaml:"bold"`
	Italic     string  `yaml:"italic"`
	BoldItalic string  `yaml:"boldItalic"`
}

// BrandConfig defines the accent color used for bold spans.
type BrandConfig struct {
	Accent string `yaml:"accent"` // "#RRGGBB"
}

// MetaConfig defines PDF document metadata.
type MetaConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	defaults := pdf.DefaultConfig()
	return Config{
		Output: byteguide.DefaultFilename,
		Page: PageConfig{
			Size:   defaults.PageSize,
			Margin: defaults.Margin,
		},
		Fonts: FontConfig{
			Family:     defaults.FontFamily,
			Size:       defaults.FontSize,
			LineHeight: defaults.LineHeight,
		},
		Brand: BrandConfig{Accent: byteguide.AccentHex},
		Meta:  MetaConfig{Author: defaults.Author},
	}
}

// Load reads path on top of Default. Unknown fields are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	if len(data) > MaxInputSize {
		return Config{}, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	cfg := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, ok := pageSizes[strings.ToLower(c.Page.Size)]; !ok {
		return fmt.Errorf("%w: unknown page size %q", ErrInvalidConfig, c.Page.Size)
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: negative margin", ErrInvalidConfig)
	}
	if c.Fonts.Size <= 0 || c.Fonts.LineHeight <= 0 {
		return fmt.Errorf("%w: font size and line height must be positive", ErrInvalidConfig)
	}
	paths := 0
	for _, p := range []string{c.Fonts.Regular, c.Fonts.Bold, c.Fonts.Italic} {
		if p != "" {
			paths++
		}
	}
	if paths != 0 && paths != 3 {
		return fmt.Errorf("%w: regular, bold, and italic fonts must all be provided", ErrInvalidConfig)
	}
	if _, err := byteguide.ParseHexColor(c.Brand.Accent); err != nil {
		return fmt.Errorf("%w: accent: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Accent returns the accent color as RGB. Call Validate first.
func (c Config) Accent() [3]int {
	rgb, err := byteguide.ParseHexColor(c.Brand.Accent)
	if err != nil {
		return byteguide.AccentRGB
	}
	return rgb
}

// PDF converts the file settings into a pdf.Config. Values are copied as
// they are; Default already supplied anything the file left out.
func (c Config) PDF() pdf.Config {
	cfg := pdf.DefaultConfig()
	cfg.PageSize = c.Page.Size
	cfg.Margin = c.Page.Margin
	if c.Fonts.Family != "" {
		cfg.FontFamily = c.Fonts.Family
	}
	cfg.FontSize = c.Fonts.Size
	cfg.LineHeight = c.Fonts.LineHeight
	cfg.RegularFont = c.Fonts.Regular
	cfg.BoldFont = c.Fonts.Bold
	cfg.ItalicFont = c.Fonts.Italic
	cfg.BoldItalicFont = c.Fonts.BoldItalic
	cfg.AccentRGB = c.Accent()
	cfg.Title = c.Meta.Title
	if c.Meta.Author != "" {
		cfg.Author = c.Meta.Author
	}
	return cfg
}
