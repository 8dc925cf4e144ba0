//go:build !nopdf

package pdf

import (
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// Available reports whether PDF rendering is compiled in.
const Available = true

const creator = "byteguide"

// Render draws the title and blocks and writes the PDF to req.Writer.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	cfg, err := req.Config.resolve()
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}

	pdf := gofpdf.New("P", "pt", cfg.PageSize, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, cfg.Margin)
	pdf.SetCompression(!cfg.DisableCompression)
	title := cfg.Title
	if title == "" {
		title = req.Title.Heading.Plain()
	}
	pdf.SetTitle(title, true)
	pdf.SetAuthor(cfg.Author, true)
	pdf.SetCreator(creator, true)

	tr, boldItalic, err := setupFonts(pdf, cfg)
	if err != nil {
		return err
	}

	l := newLayout(pdf, cfg, tr, boldItalic)
	l.title(req.Title)
	for _, b := range req.Blocks {
		l.block(b)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := pdf.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

// setupFonts registers TTF faces when configured. Core fonts need their text
// translated to cp1252; UTF-8 fonts take it as is.
func setupFonts(pdf *gofpdf.Fpdf, cfg Config) (func(string) string, bool, error) {
	if cfg.RegularFont == "" {
		pdf.SetFont(cfg.FontFamily, "", cfg.FontSize)
		if err := pdf.Error(); err != nil {
			return nil, false, fmt.Errorf("pdf render: font setup failed: %w", err)
		}
		return pdf.UnicodeTranslatorFromDescriptor(""), true, nil
	}
	fontDir := filepath.Dir(cfg.RegularFont)
	if filepath.Dir(cfg.BoldFont) != fontDir || filepath.Dir(cfg.ItalicFont) != fontDir {
		return nil, false, fmt.Errorf("pdf render: font paths must be in the same directory")
	}
	if cfg.BoldItalicFont != "" && filepath.Dir(cfg.BoldItalicFont) != fontDir {
		return nil, false, fmt.Errorf("pdf render: bold-italic font must be in the same directory as body fonts")
	}
	pdf.SetFontLocation(fontDir)
	pdf.AddUTF8Font(cfg.FontFamily, "", filepath.Base(cfg.RegularFont))
	pdf.AddUTF8Font(cfg.FontFamily, "B", filepath.Base(cfg.BoldFont))
	pdf.AddUTF8Font(cfg.FontFamily, "I", filepath.Base(cfg.ItalicFont))
	if cfg.BoldItalicFont != "" {
		pdf.AddUTF8Font(cfg.FontFamily, "BI", filepath.Base(cfg.BoldItalicFont))
	}
	pdf.SetFont(cfg.FontFamily, "", cfg.FontSize)
	if err := pdf.Error(); err != nil {
		return nil, false, fmt.Errorf("pdf render: font setup failed: %w", err)
	}
	return func(s string) string { return s }, cfg.BoldItalicFont != "", nil
}
