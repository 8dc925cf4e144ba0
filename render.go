package byteguide

import "strings"

const (
	// HorizontalRule separates top-level sections.
	HorizontalRule = "---"
	// BulletGlyph prefixes every list item.
	BulletGlyph = "•"

	h2Marker    = "## "
	h3Marker    = "### "
	tableMarker = "| Column"
	tableLabel  = "Correct Format"
)

// Sections partitions document on horizontal-rule lines. The first element
// is the preamble before the first rule. Only whole lines equal to "---"
// split, so "| :--- |" table rows stay intact.
func Sections(document string) []string {
	lines := strings.Split(document, "\n")
	parts := make([]string, 0, 8)
	start := 0
	for i, line := range lines {
		if strings.TrimSpace(line) != HorizontalRule {
			continue
		}
		parts = append(parts, strings.Join(lines[start:i], "\n"))
		start = i + 1
	}
	return append(parts, strings.Join(lines[start:], "\n"))
}

// Render converts document into styled blocks. The preamble is skipped;
// every section ends with a spacer. Lines that cannot be interpreted are
// degraded to paragraphs or dropped, never reported.
func Render(document string) []Block {
	sections := Sections(document)
	blocks := make([]Block, 0, 16*len(sections))
	for _, section := range sections[1:] {
		blocks = appendSection(blocks, section)
		blocks = append(blocks, Block{Kind: BlockSpacer})
	}
	return blocks
}

func appendSection(blocks []Block, section string) []Block {
	lines := strings.Split(strings.TrimSpace(section), "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, tableMarker) {
			// A header without a data row yields nothing; the rows
			// below it are read as ordinary lines.
			if block, last, ok := tableBlock(lines, i); ok {
				blocks = append(blocks, block)
				i = last
			}
			continue
		}
		blocks = append(blocks, classify(line))
	}
	return blocks
}

func classify(line string) Block {
	switch {
	case strings.HasPrefix(line, h3Marker):
		return Block{Kind: BlockHeading3, Text: StyleLine(line[len(h3Marker):])}
	case strings.HasPrefix(line, h2Marker):
		return Block{Kind: BlockHeading2, Text: StyleLine(line[len(h2Marker):])}
	}
	if item, ok := listItem(line); ok {
		return Block{Kind: BlockListItem, Text: StyleLine(BulletGlyph + " " + item)}
	}
	if inner, ok := italicLine(line); ok {
		return Block{Kind: BlockParagraph, Text: StyleLine(inner).italic()}
	}
	return Block{Kind: BlockParagraph, Text: StyleLine(line)}
}

// listItem strips a leading "* ", "N." or "i." marker. Any line starting
// with a digit and a dot counts, even outside a list.
func listItem(line string) (string, bool) {
	if len(line) < 2 {
		return "", false
	}
	switch {
	case line[0] == '*' && isSpace(line[1]):
	case line[0] >= '0' && line[0] <= '9' && line[1] == '.':
	case line[0] == 'i' && line[1] == '.':
	default:
		return "", false
	}
	return strings.TrimLeft(line[2:], " \t"), true
}

// tableBlock reads the first data row below the header, skipping blank
// lines and the alignment row. Scanning stops at the first line that is not
// a table row. It returns the index of the data row so the caller can skip
// the lines the table consumed.
func tableBlock(lines []string, header int) (Block, int, bool) {
	for i := header + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		switch {
		case line == "" || isAlignmentRow(line):
			continue
		case !strings.HasPrefix(line, "|"):
			return Block{}, 0, false
		}
		cells := strings.Split(line, "|")
		if len(cells) < 3 {
			return Block{}, 0, false
		}
		return Block{
			Kind: BlockTable,
			Rows: []Text{
				StyleLine(BoldDelimiter + tableLabel + BoldDelimiter),
				StyleLine(strings.TrimSpace(cells[2])),
			},
		}, i, true
	}
	return Block{}, 0, false
}

// isAlignmentRow reports rows such as "| :--- | ---: |".
func isAlignmentRow(line string) bool {
	if !strings.HasPrefix(line, "|") || !strings.Contains(line, "-") {
		return false
	}
	return strings.Trim(line, "|:- \t") == ""
}

// italicLine unwraps a line fully enclosed in single asterisks.
func italicLine(line string) (string, bool) {
	if len(line) < 3 || line[0] != '*' || line[len(line)-1] != '*' {
		return "", false
	}
	if strings.HasPrefix(line, BoldDelimiter) || strings.HasSuffix(line, BoldDelimiter) {
		return "", false
	}
	return line[1 : len(line)-1], true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
