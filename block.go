package byteguide

// BlockKind classifies a rendered block.
type BlockKind uint8

const (
	BlockHeading2 BlockKind = iota + 1
	BlockHeading3
	BlockListItem
	BlockParagraph
	BlockTable
	BlockSpacer
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeading2:
		return "h2"
	case BlockHeading3:
		return "h3"
	case BlockListItem:
		return "list-item"
	case BlockParagraph:
		return "paragraph"
	case BlockTable:
		return "table"
	case BlockSpacer:
		return "spacer"
	default:
		return "unknown"
	}
}

// Block is one styled unit of output. Headings, list items and paragraphs
// use Text; tables use Rows (label first, then content). Spacers carry
// nothing.
type Block struct {
	Kind BlockKind
	Text Text
	Rows []Text
}
