package byteguide

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const tableIndent = 2

// ConsoleOptions configures WriteBlocks.
type ConsoleOptions struct {
	// Width wraps output at this many columns; 0 disables wrapping.
	Width int
	Theme Theme
}

// WriteMarkdown writes document as-is, or word-wrapped when width > 0.
func WriteMarkdown(w io.Writer, document string, width int) error {
	if width > 0 {
		document = wordwrap.String(document, width)
	}
	_, err := io.WriteString(w, document)
	return err
}

// WriteSection writes the numbered section, or NotFoundMessage if there is
// none. A missing section is not an error.
func WriteSection(w io.Writer, document, number string, width int) error {
	section, err := FindSection(document, number)
	if errors.Is(err, ErrSectionNotFound) {
		_, err = io.WriteString(w, NotFoundMessage(number)+"\n")
		return err
	}
	if err != nil {
		return err
	}
	return WriteMarkdown(w, section+"\n", width)
}

// WriteBlocks renders title and blocks for a terminal using ANSI styles.
func WriteBlocks(w io.Writer, title Title, blocks []Block, opts ConsoleOptions) error {
	t := opts.Theme
	if t == nil {
		t = DefaultTheme()
	}
	c := console{w: bufio.NewWriter(w), styles: t.Styles(), width: opts.Width}
	if !title.IsZero() {
		c.line(styledText(title.Heading, c.styles.Title, c.styles), 0)
		if len(title.Subtitle) > 0 {
			c.line(styledText(title.Subtitle, c.styles.Subtitle, c.styles), 0)
		}
		c.blank()
	}
	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading2:
			c.line(styledText(b.Text, c.styles.Heading2, c.styles), 0)
			c.blank()
		case BlockHeading3:
			c.line(styledText(b.Text, c.styles.Heading3, c.styles), 0)
		case BlockListItem:
			c.line(bulletText(b.Text, c.styles), 0)
		case BlockParagraph:
			c.line(styledText(b.Text, Style{}, c.styles), 0)
		case BlockTable:
			c.line(styledText(b.Rows[0], c.styles.TableLabel, c.styles), 0)
			for _, row := range b.Rows[1:] {
				c.line(styledText(row, Style{}, c.styles), tableIndent)
			}
		case BlockSpacer:
			c.blank()
		}
	}
	return c.w.Flush()
}

type console struct {
	w      *bufio.Writer
	styles Styles
	width  int
}

func (c *console) line(s string, pad uint) {
	width := c.width - int(pad)
	if c.width > 0 && width > 0 {
		s = wordwrap.String(s, width)
	}
	if pad > 0 {
		s = indent.String(s, pad)
	}
	_, _ = c.w.WriteString(s)
	_ = c.w.WriteByte('\n')
}

func (c *console) blank() {
	_ = c.w.WriteByte('\n')
}

func styledText(text Text, base Style, styles Styles) string {
	var b strings.Builder
	for _, span := range text {
		if span.Text == "" {
			continue
		}
		prefix := base.Prefix
		if span.Strong {
			prefix += styles.Strong.Prefix
		}
		if span.Italic {
			prefix += styles.Italic.Prefix
		}
		if prefix == "" {
			b.WriteString(span.Text)
			continue
		}
		b.WriteString(prefix)
		b.WriteString(span.Text)
		b.WriteString(ansiReset)
	}
	return b.String()
}

// bulletText colors the leading glyph of a list item.
func bulletText(text Text, styles Styles) string {
	if len(text) == 0 || text[0].Strong || !strings.HasPrefix(text[0].Text, BulletGlyph) {
		return styledText(text, Style{}, styles)
	}
	rest := make(Text, len(text))
	copy(rest, text)
	rest[0].Text = strings.TrimPrefix(rest[0].Text, BulletGlyph)
	glyph := BulletGlyph
	if styles.Bullet.Prefix != "" {
		glyph = styles.Bullet.Prefix + BulletGlyph + ansiReset
	}
	return glyph + styledText(rest, Style{}, styles)
}
