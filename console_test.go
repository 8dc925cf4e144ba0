package byteguide

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestWriteMarkdownVerbatim(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, Markdown(), 0); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	if buf.String() != Markdown() {
		t.Fatalf("expected verbatim output")
	}
}

func TestWriteMarkdownWraps(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, Markdown(), 40); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		// Single words longer than the limit are left intact.
		if ansi.PrintableRuneWidth(line) > 40 && strings.Contains(line, " ") {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestWriteSection(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSection(&buf, Markdown(), "5", 0); err != nil {
		t.Fatalf("WriteSection: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "## 5. Legal") || !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("unexpected section output %q", firstLine(buf.String()))
	}

	buf.Reset()
	if err := WriteSection(&buf, Markdown(), "99", 0); err != nil {
		t.Fatalf("missing section should not fail: %v", err)
	}
	if buf.String() != "Error: Section 99 not found.\n" {
		t.Fatalf("unexpected not-found output %q", buf.String())
	}
}

func TestWriteBlocksBoring(t *testing.T) {
	boring, _ := ThemeByName("boring")
	doc := "# **Brand** Guide\n*sub*\n---\n## 1. One\n* item **bold**\n| Column | Content |\n| :--- | :--- |\n\n| 1 | X | y |"
	var buf bytes.Buffer
	err := WriteBlocks(&buf, ParseTitle(doc), Render(doc), ConsoleOptions{Theme: boring})
	if err != nil {
		t.Fatalf("WriteBlocks: %v", err)
	}
	want := strings.Join([]string{
		"Brand Guide",
		"sub",
		"",
		"1. One",
		"",
		"• item bold",
		"Correct Format",
		"  X",
		"",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteBlocksStyled(t *testing.T) {
	var buf bytes.Buffer
	doc := Markdown()
	if err := WriteBlocks(&buf, ParseTitle(doc), Render(doc), ConsoleOptions{Width: 60}); err != nil {
		t.Fatalf("WriteBlocks: %v", err)
	}
	out := buf.String()
	accent := ANSIColor(AccentRGB)
	if !strings.Contains(out, accent+"ByteRead"+ansiReset) {
		t.Fatalf("expected accented brand span")
	}
	if strings.Contains(out, BoldDelimiter) {
		t.Fatalf("output kept bold delimiters")
	}
	for _, line := range strings.Split(out, "\n") {
		if ansi.PrintableRuneWidth(line) > 60 && strings.Contains(line, " ") {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}
