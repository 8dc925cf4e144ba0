package pdf

import (
	"strings"

	"pkt.systems/byteguide"
)

const (
	alignLeft   = "L"
	alignCenter = "C"

	headingLeading = 1.25
	ascentRatio    = 0.8

	// Spacing multipliers relative to the body font size.
	h2SpaceMultiplier       = 1.2
	h3SpaceBeforeMultiplier = 0.6
	h3SpaceAfterMultiplier  = 0.8
	bodySpaceMultiplier     = 0.6
	titleGapMultiplier      = 2.4
	tableGapMultiplier      = 1.2

	cellPadX  = 6
	cellPadY  = 3
	gridWidth = 0.5
)

var tableHeaderRGB = [3]int{245, 245, 245}

type paragraphStyle struct {
	fontStyle   string
	size        float64
	leading     float64
	spaceBefore float64
	spaceAfter  float64
	align       string
	rgb         [3]int
}

type styleSheet struct {
	title      paragraphStyle
	subtitle   paragraphStyle
	h2         paragraphStyle
	h3         paragraphStyle
	body       paragraphStyle
	tableLabel paragraphStyle
	tableCell  paragraphStyle
	titleGap   float64
	tableGap   float64
}

func newStyleSheet(cfg Config) styleSheet {
	base := cfg.FontSize
	heading := func(scale float64) paragraphStyle {
		size := base * scale
		return paragraphStyle{
			fontStyle: "B",
			size:      size,
			leading:   size * headingLeading,
			align:     alignLeft,
			rgb:       cfg.TextRGB,
		}
	}
	title := heading(cfg.HeadingScale[0])
	title.align = alignCenter

	subtitle := paragraphStyle{
		fontStyle: "I",
		size:      base * cfg.HeadingScale[2],
		leading:   base * cfg.HeadingScale[2] * headingLeading,
		align:     alignCenter,
		rgb:       cfg.TextRGB,
	}

	h2 := heading(cfg.HeadingScale[1])
	h2.spaceBefore = base * h2SpaceMultiplier
	h2.spaceAfter = base * h2SpaceMultiplier

	h3 := heading(cfg.HeadingScale[2])
	h3.spaceBefore = base * h3SpaceBeforeMultiplier
	h3.spaceAfter = base * h3SpaceAfterMultiplier

	body := paragraphStyle{
		size:       base,
		leading:    base * cfg.LineHeight,
		spaceAfter: base * bodySpaceMultiplier,
		align:      alignLeft,
		rgb:        cfg.TextRGB,
	}

	label := heading(cfg.HeadingScale[2])
	cell := body
	cell.spaceAfter = 0

	return styleSheet{
		title:      title,
		subtitle:   subtitle,
		h2:         h2,
		h3:         h3,
		body:       body,
		tableLabel: label,
		tableCell:  cell,
		titleGap:   base * titleGapMultiplier,
		tableGap:   base * tableGapMultiplier,
	}
}

// spanFontStyle merges the paragraph font style with span emphasis. Without
// a bold-italic face, bold wins.
func spanFontStyle(base string, span byteguide.Span, allowBoldItalic bool) string {
	bold := strings.Contains(base, "B") || span.Strong
	italic := strings.Contains(base, "I") || span.Italic
	if bold && italic && !allowBoldItalic {
		italic = false
	}
	var b strings.Builder
	if bold {
		b.WriteByte('B')
	}
	if italic {
		b.WriteByte('I')
	}
	return b.String()
}

func spanColor(st paragraphStyle, span byteguide.Span, accent [3]int) [3]int {
	if span.Strong {
		return accent
	}
	return st.rgb
}
