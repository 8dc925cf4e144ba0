package pdf

import (
	"fmt"

	"pkt.systems/byteguide"
)

// Config holds PDF rendering settings. Start from DefaultConfig and change
// fields; the zero Config renders with the defaults.
type Config struct {
	PageSize           string
	Margin             float64
	FontFamily         string
	FontSize           float64
	LineHeight         float64
	RegularFont        string
	BoldFont           string
	ItalicFont         string
	BoldItalicFont     string
	HeadingScale       [3]float64 // title, h2, h3
	AccentRGB          [3]int
	TextRGB            [3]int
	TableWidth         float64
	SectionGap         float64
	DisableCompression bool
	Title              string
	Author             string
}

// DefaultConfig returns the house layout: A4, 50pt margins, Helvetica 10pt.
func DefaultConfig() Config {
	return Config{
		PageSize:   "A4",
		Margin:     50,
		FontFamily: "Helvetica",
		FontSize:   10,
		LineHeight: 1.2,
		HeadingScale: [3]float64{
			2.4,
			1.6,
			1.2,
		},
		AccentRGB:  byteguide.AccentRGB,
		TableWidth: 400,
		SectionGap: 18,
		Author:     "ByteRead",
	}
}

// resolve returns DefaultConfig for the zero Config and c otherwise. Zero
// fields of a non-zero Config are taken literally: a black accent or a zero
// margin is a setting, not a gap.
func (c Config) resolve() (Config, error) {
	if c == (Config{}) {
		c = DefaultConfig()
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.PageSize == "" {
		return fmt.Errorf("page size is empty")
	}
	if c.Margin < 0 || c.SectionGap < 0 {
		return fmt.Errorf("negative margin or section gap")
	}
	if c.TableWidth <= 0 {
		return fmt.Errorf("table width must be positive")
	}
	for _, scale := range c.HeadingScale {
		if scale <= 0 {
			return fmt.Errorf("heading scales must be positive")
		}
	}
	if c.FontFamily == "" || c.FontSize <= 0 || c.LineHeight <= 0 {
		return fmt.Errorf("invalid font configuration")
	}
	hasPath := c.RegularFont != "" || c.BoldFont != "" || c.ItalicFont != ""
	if hasPath && (c.RegularFont == "" || c.BoldFont == "" || c.ItalicFont == "") {
		return fmt.Errorf("missing font paths")
	}
	if !hasPath && !isCoreFont(c.FontFamily) {
		return fmt.Errorf("core font family required when font paths are empty")
	}
	return nil
}

func isCoreFont(name string) bool {
	switch name {
	case "Arial", "Courier", "Helvetica", "Times":
		return true
	default:
		return false
	}
}
