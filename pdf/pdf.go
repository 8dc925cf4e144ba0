package pdf

import (
	"io"

	"pkt.systems/byteguide"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Title  byteguide.Title
	Blocks []byteguide.Block
	Writer io.Writer
	Config Config
}

// RenderMarkdown renders the title and blocks of a guide document.
func RenderMarkdown(w io.Writer, document string, cfg Config) error {
	return Render(RenderRequest{
		Title:  byteguide.ParseTitle(document),
		Blocks: byteguide.Render(document),
		Writer: w,
		Config: cfg,
	})
}
