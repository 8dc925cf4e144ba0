package byteguide

import "strings"

// Title is the centered block printed above the first section.
type Title struct {
	Heading  Text
	Subtitle Text
}

// ParseTitle reads the preamble: the first "# " line is the heading and the
// next non-blank line that is not a heading is the subtitle.
func ParseTitle(document string) Title {
	var t Title
	for _, raw := range strings.Split(Sections(document)[0], "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
		case t.Heading == nil:
			if strings.HasPrefix(line, "# ") {
				t.Heading = StyleLine(strings.TrimSpace(line[2:]))
			}
		case t.Subtitle == nil && !strings.HasPrefix(line, "#"):
			if inner, ok := italicLine(line); ok {
				t.Subtitle = StyleLine(inner).italic()
			} else {
				t.Subtitle = StyleLine(line)
			}
		}
	}
	return t
}

// IsZero reports whether the preamble had no heading.
func (t Title) IsZero() bool {
	return len(t.Heading) == 0
}
