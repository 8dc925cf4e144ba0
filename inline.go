package byteguide

import "strings"

const (
	// BoldDelimiter brackets a span rendered bold in the accent color.
	BoldDelimiter = "**"
	// AccentHex is the ByteRead brand blue.
	AccentHex = "#1E40AF"

	strongOpen  = `<font color="` + AccentHex + `"><b>`
	strongClose = `</b></font>`
)

// AccentRGB is AccentHex as RGB components.
var AccentRGB = [3]int{30, 64, 175}

// Span is a run of text with uniform styling.
type Span struct {
	Text   string
	Strong bool
	Italic bool
}

// Text is an ordered sequence of spans.
type Text []Span

// StyleLine splits line on BoldDelimiter. Fragments at odd positions are
// strong, the rest are plain. Empty fragments are kept so the fragment count
// always equals the delimiter count plus one. With an odd number of
// delimiters the trailing fragment ends up strong; that is not corrected.
func StyleLine(line string) Text {
	parts := strings.Split(line, BoldDelimiter)
	text := make(Text, len(parts))
	for i, part := range parts {
		text[i] = Span{Text: part, Strong: i%2 == 1}
	}
	return text
}

// Emphasize returns line with every bold span wrapped in rich-text markup.
func Emphasize(line string) string {
	return StyleLine(line).Markup()
}

// Plain concatenates the spans without any markup.
func (t Text) Plain() string {
	var b strings.Builder
	for _, s := range t {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Markup renders strong spans as <font color="#1E40AF"><b>...</b></font>.
func (t Text) Markup() string {
	var b strings.Builder
	for _, s := range t {
		if s.Strong {
			b.WriteString(strongOpen)
			b.WriteString(s.Text)
			b.WriteString(strongClose)
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// StrongCount returns the number of strong spans.
func (t Text) StrongCount() int {
	n := 0
	for _, s := range t {
		if s.Strong {
			n++
		}
	}
	return n
}

func (t Text) italic() Text {
	out := make(Text, len(t))
	for i, s := range t {
		s.Italic = true
		out[i] = s
	}
	return out
}
