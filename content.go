package byteguide

import (
	_ "embed"
)

// DefaultFilename is the file name used when no output path is given.
const DefaultFilename = "ByteRead_Submission_Guide.pdf"

//go:embed guide.md
var guideMarkdown string

// Markdown returns the embedded submission guide.
func Markdown() string {
	return guideMarkdown
}
