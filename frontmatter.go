package byteguide

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrFrontMatter reports a metadata block that could not be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter is the metadata block at the top of a guide file.
type FrontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	// Raw is the block between the delimiters.
	Raw string `yaml:"-"`
	// Delimiter is "---" (YAML), "+++" (TOML) or ";;;" (JSON).
	Delimiter string `yaml:"-"`
}

// IsZero reports whether the document had no front matter.
func (f FrontMatter) IsZero() bool {
	return f.Delimiter == ""
}

// SplitFrontMatter removes a leading metadata block from document. Without
// it the opening "---" would be read as a section rule. YAML and JSON blocks
// are decoded; TOML blocks are only stripped. A document whose first line is
// a delimiter but whose second line does not look like metadata is returned
// unchanged, as is one with no closing delimiter.
func SplitFrontMatter(document string) (FrontMatter, string, error) {
	lines := strings.Split(document, "\n")
	delim, ok := openingDelimiter(lines[0])
	if !ok || len(lines) < 2 || !metadataLikely(lines[1]) {
		return FrontMatter{}, document, nil
	}
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(trimCR(lines[i])) == delim {
			end = i
			break
		}
	}
	if end < 0 {
		return FrontMatter{}, document, nil
	}

	raw := make([]string, 0, end-1)
	for _, line := range lines[1:end] {
		raw = append(raw, trimCR(line))
	}
	fm := FrontMatter{
		Raw:       strings.Join(raw, "\n"),
		Delimiter: delim,
	}
	body := strings.Join(lines[end+1:], "\n")
	if delim == "+++" {
		return fm, body, nil
	}
	// JSON is a subset of YAML, so one decoder serves both.
	if err := yaml.Unmarshal([]byte(fm.Raw), &fm); err != nil {
		return FrontMatter{}, document, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return fm, body, nil
}

func openingDelimiter(line string) (string, bool) {
	switch trimmed := strings.TrimSpace(strings.TrimPrefix(trimCR(line), "\ufeff")); trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func metadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") || strings.Contains(trimmed, "=")
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
