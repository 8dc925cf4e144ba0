//go:build !nopdf

package pdf

import (
	"math"
	"unicode"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/byteguide"
)

// piece is an unbreakable run of non-space text in one style.
type piece struct {
	text      string
	fontStyle string
	size      float64
	rgb       [3]int
	width     float64
	gap       bool // whitespace precedes this piece
}

// run is text drawn with a single Text call.
type run struct {
	x         float64
	text      string
	fontStyle string
	size      float64
	rgb       [3]int
}

type textLine struct {
	runs  []run
	width float64
}

type layout struct {
	pdf        *gofpdf.Fpdf
	cfg        Config
	styles     styleSheet
	tr         func(string) string
	boldItalic bool
	pageW      float64
	pageH      float64
	y          float64
	pageNum    int
}

func newLayout(pdf *gofpdf.Fpdf, cfg Config, tr func(string) string, boldItalic bool) *layout {
	l := &layout{
		pdf:        pdf,
		cfg:        cfg,
		styles:     newStyleSheet(cfg),
		tr:         tr,
		boldItalic: boldItalic,
	}
	l.pageW, l.pageH = pdf.GetPageSize()
	l.addPage()
	return l
}

func (l *layout) addPage() {
	l.pdf.AddPage()
	l.pageNum++
	l.y = l.cfg.Margin
}

func (l *layout) contentWidth() float64 {
	return math.Max(1, l.pageW-2*l.cfg.Margin)
}

func (l *layout) bottom() float64 {
	return l.pageH - l.cfg.Margin
}

// ensure starts a new page unless h fits below the cursor. A page that is
// still empty takes the content regardless.
func (l *layout) ensure(h float64) {
	if l.y+h > l.bottom() && l.y > l.cfg.Margin {
		l.addPage()
	}
}

// space advances the cursor; gaps are dropped at the top of a page.
func (l *layout) space(h float64) {
	if l.y <= l.cfg.Margin {
		return
	}
	l.y += h
	if l.y >= l.bottom() {
		l.addPage()
	}
}

func (l *layout) title(t byteguide.Title) {
	if t.IsZero() {
		return
	}
	l.paragraph(t.Heading, l.styles.title)
	if len(t.Subtitle) > 0 {
		l.paragraph(t.Subtitle, l.styles.subtitle)
	}
	l.space(l.styles.titleGap)
}

func (l *layout) block(b byteguide.Block) {
	switch b.Kind {
	case byteguide.BlockHeading2:
		l.paragraph(b.Text, l.styles.h2)
	case byteguide.BlockHeading3:
		l.paragraph(b.Text, l.styles.h3)
	case byteguide.BlockListItem, byteguide.BlockParagraph:
		l.paragraph(b.Text, l.styles.body)
	case byteguide.BlockTable:
		l.table(b.Rows)
	case byteguide.BlockSpacer:
		l.space(l.cfg.SectionGap)
	}
}

func (l *layout) paragraph(text byteguide.Text, st paragraphStyle) {
	width := l.contentWidth()
	lines := l.wrap(l.pieces(text, st), width)
	if len(lines) == 0 {
		return
	}
	l.space(st.spaceBefore)
	for _, line := range lines {
		l.ensure(st.leading)
		offset := 0.0
		if st.align == alignCenter {
			offset = (width - line.width) / 2
		}
		l.drawLine(line, st, l.cfg.Margin+offset, l.y)
		l.y += st.leading
	}
	l.space(st.spaceAfter)
}

func (l *layout) table(rows []byteguide.Text) {
	if len(rows) == 0 {
		return
	}
	avail := l.contentWidth()
	width := math.Min(l.cfg.TableWidth, avail)
	x := l.cfg.Margin + (avail-width)/2
	inner := width - 2*cellPadX

	l.space(l.styles.tableGap)
	for i, row := range rows {
		st := l.styles.tableCell
		if i == 0 {
			st = l.styles.tableLabel
		}
		lines := l.wrap(l.pieces(row, st), inner)
		h := float64(max(len(lines), 1))*st.leading + 2*cellPadY
		l.ensure(h)
		if i == 0 {
			l.pdf.SetFillColor(tableHeaderRGB[0], tableHeaderRGB[1], tableHeaderRGB[2])
			l.pdf.Rect(x, l.y, width, h, "F")
		}
		l.pdf.SetDrawColor(0, 0, 0)
		l.pdf.SetLineWidth(gridWidth)
		l.pdf.Rect(x, l.y, width, h, "D")
		y := l.y + cellPadY
		for _, line := range lines {
			l.drawLine(line, st, x+cellPadX, y)
			y += st.leading
		}
		l.y += h
	}
	l.space(l.styles.tableGap)
}

// drawLine places a line whose box starts at top y.
func (l *layout) drawLine(line textLine, st paragraphStyle, x, y float64) {
	baseline := y + (st.leading-st.size)/2 + st.size*ascentRatio
	for _, r := range line.runs {
		l.pdf.SetFont(l.cfg.FontFamily, r.fontStyle, r.size)
		l.pdf.SetTextColor(r.rgb[0], r.rgb[1], r.rgb[2])
		l.pdf.Text(x+r.x, baseline, r.text)
	}
}

// pieces splits styled text into measured pieces. Whitespace only marks
// break opportunities; span boundaries without whitespace stay glued.
func (l *layout) pieces(text byteguide.Text, st paragraphStyle) []piece {
	var out []piece
	gap := false
	for _, span := range text {
		fontStyle := spanFontStyle(st.fontStyle, span, l.boldItalic)
		rgb := spanColor(st, span, l.cfg.AccentRGB)
		l.pdf.SetFont(l.cfg.FontFamily, fontStyle, st.size)
		start := -1
		emit := func(word string) {
			word = l.tr(word)
			out = append(out, piece{
				text:      word,
				fontStyle: fontStyle,
				size:      st.size,
				rgb:       rgb,
				width:     l.pdf.GetStringWidth(word),
				gap:       gap,
			})
			gap = false
		}
		for i, r := range span.Text {
			if unicode.IsSpace(r) {
				if start >= 0 {
					emit(span.Text[start:i])
					start = -1
				}
				gap = true
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			emit(span.Text[start:])
		}
	}
	return out
}

// wrap fills lines greedily. A word wider than the line gets a line of its
// own and overflows.
func (l *layout) wrap(pieces []piece, width float64) []textLine {
	var lines []textLine
	var cur textLine
	for i := 0; i < len(pieces); {
		j := i + 1
		for j < len(pieces) && !pieces[j].gap {
			j++
		}
		word := pieces[i:j]
		wordWidth := 0.0
		for _, p := range word {
			wordWidth += p.width
		}
		space := 0.0
		if len(cur.runs) > 0 {
			space = l.spaceWidth(word[0])
			if cur.width+space+wordWidth > width {
				lines = append(lines, cur)
				cur = textLine{}
				space = 0
			}
		}
		x := cur.width + space
		for k, p := range word {
			cur.add(p, x, k == 0 && space > 0)
			x += p.width
		}
		cur.width = x
		i = j
	}
	if len(cur.runs) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func (l *layout) spaceWidth(p piece) float64 {
	l.pdf.SetFont(l.cfg.FontFamily, p.fontStyle, p.size)
	return l.pdf.GetStringWidth(" ")
}

// add appends p at x, merging into the previous run when the style matches.
func (t *textLine) add(p piece, x float64, spaced bool) {
	if n := len(t.runs); n > 0 {
		last := &t.runs[n-1]
		if last.fontStyle == p.fontStyle && last.size == p.size && last.rgb == p.rgb {
			if spaced {
				last.text += " "
			}
			last.text += p.text
			return
		}
	}
	t.runs = append(t.runs, run{
		x:         x,
		text:      p.text,
		fontStyle: p.fontStyle,
		size:      p.size,
		rgb:       p.rgb,
	})
}
