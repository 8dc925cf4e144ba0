// Package pdf draws styled guide blocks into a PDF.
//
// Layout follows the ByteRead house style: a centered title block, bold
// section headings, 10pt body text, bold spans in the brand blue, one
// gridded two-row table and fixed gaps between sections. Text is wrapped and
// paginated here; gofpdf only places strings.
//
// Example:
//
//	cfg := pdf.DefaultConfig()
//	err := pdf.RenderMarkdown(outFile, byteguide.Markdown(), cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Core fonts (Helvetica, Times, Courier) are used unless RegularFont,
// BoldFont and ItalicFont point at TTF files. Binaries built with the nopdf
// tag report Available == false and Render returns ErrUnavailable.
package pdf
