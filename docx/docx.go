// Package docx writes styled guide blocks as a Word document.
//
// It mirrors the PDF layout with native paragraph runs: a centered title,
// bold headings, bullet paragraphs and bold spans in the brand color. The
// citation table becomes a label paragraph followed by its content.
package docx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	godocx "github.com/fumiama/go-docx"
	"pkt.systems/byteguide"
)

// Font sizes in points.
const (
	titleSize    = 24
	subtitleSize = 12
	h2Size       = 16
	h3Size       = 12
	bodySize     = 10
)

// RenderRequest contains inputs for DOCX rendering.
type RenderRequest struct {
	Title  byteguide.Title
	Blocks []byteguide.Block
	Writer io.Writer
	// AccentHex colors strong spans; empty uses byteguide.AccentHex.
	AccentHex string
}

// RenderMarkdown renders the title and blocks of a guide document.
func RenderMarkdown(w io.Writer, document string) error {
	return Render(RenderRequest{
		Title:  byteguide.ParseTitle(document),
		Blocks: byteguide.Render(document),
		Writer: w,
	})
}

// Render writes the document to req.Writer.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("docx render: writer is nil")
	}
	accent := req.AccentHex
	if accent == "" {
		accent = byteguide.AccentHex
	}
	if _, err := byteguide.ParseHexColor(accent); err != nil {
		return fmt.Errorf("docx render: %w", err)
	}
	w := writer{doc: godocx.New().WithDefaultTheme(), accent: strings.TrimPrefix(accent, "#")}

	if !req.Title.IsZero() {
		w.paragraph(req.Title.Heading, textStyle{size: titleSize, bold: true}).Justification("center")
		if len(req.Title.Subtitle) > 0 {
			w.paragraph(req.Title.Subtitle, textStyle{size: subtitleSize}).Justification("center")
		}
		w.doc.AddParagraph()
	}
	for _, b := range req.Blocks {
		switch b.Kind {
		case byteguide.BlockHeading2:
			w.paragraph(b.Text, textStyle{size: h2Size, bold: true})
		case byteguide.BlockHeading3:
			w.paragraph(b.Text, textStyle{size: h3Size, bold: true})
		case byteguide.BlockListItem, byteguide.BlockParagraph:
			w.paragraph(b.Text, textStyle{size: bodySize})
		case byteguide.BlockTable:
			for i, row := range b.Rows {
				st := textStyle{size: bodySize}
				if i == 0 {
					st = textStyle{size: h3Size, bold: true}
				}
				w.paragraph(row, st)
			}
		case byteguide.BlockSpacer:
			w.doc.AddParagraph()
		}
	}
	if _, err := w.doc.WriteTo(req.Writer); err != nil {
		return fmt.Errorf("docx render: output: %w", err)
	}
	return nil
}

type textStyle struct {
	size float64
	bold bool
}

type writer struct {
	doc    *godocx.Docx
	accent string
}

func (w writer) paragraph(text byteguide.Text, st textStyle) *godocx.Paragraph {
	p := w.doc.AddParagraph()
	halfPoints := strconv.Itoa(int(st.size * 2))
	for _, span := range text {
		if span.Text == "" {
			continue
		}
		r := p.AddText(span.Text).Size(halfPoints)
		if st.bold || span.Strong {
			r.Bold()
		}
		if span.Italic {
			r.Italic()
		}
		if span.Strong {
			r.Color(w.accent)
		}
	}
	return p
}
