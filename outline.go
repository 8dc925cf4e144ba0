package byteguide

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry of the document outline.
type Heading struct {
	Level  int
	Number string
	Title  string
}

// Outline lists the document headings in order. Level-2 headings written as
// "N. Title" carry N in Number, which is the key FindSection accepts.
func Outline(document string) []Heading {
	src := []byte(document)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var headings []Heading
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		node, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := strings.TrimSpace(string(node.Text(src)))
		h := Heading{Level: node.Level, Title: title}
		if node.Level == 2 {
			h.Number = headingNumber(title)
		}
		headings = append(headings, h)
	}
	return headings
}

func headingNumber(title string) string {
	dot := strings.IndexByte(title, '.')
	if dot <= 0 {
		return ""
	}
	for i := 0; i < dot; i++ {
		if title[i] < '0' || title[i] > '9' {
			return ""
		}
	}
	return title[:dot]
}
