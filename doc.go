// Package byteguide holds the ByteRead article submission guide and renders
// it into styled, renderer-agnostic blocks.
//
// The guide is written in a small Markdown dialect: "## " and "### "
// headings, "---" rules between sections, "*", "N." and "i." list markers,
// "**bold**" spans and one fixed two-column table. Render classifies the
// guide line by line and returns Blocks whose text is already split into
// styled Spans, so backends never see markup.
//
// Example:
//
//	blocks := byteguide.Render(byteguide.Markdown())
//	for _, b := range blocks {
//		fmt.Println(b.Kind, b.Text.Plain())
//	}
//
// Sections are located by their numeric heading prefix:
//
//	section, err := byteguide.FindSection(byteguide.Markdown(), "5")
//	if errors.Is(err, byteguide.ErrSectionNotFound) {
//		fmt.Println(byteguide.NotFoundMessage("5"))
//	}
//
// PDF and DOCX output live in the pdf and docx subpackages.
package byteguide
