package byteguide

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSectionNotFound reports that no section carries the requested number.
var ErrSectionNotFound = errors.New("section not found")

// FindSection returns the first section, trimmed, that starts with
// "## <number>.". Sections are scanned in document order.
func FindSection(document, number string) (string, error) {
	prefix := h2Marker + strings.TrimSpace(number) + "."
	for _, section := range Sections(document) {
		section = strings.TrimSpace(section)
		if strings.HasPrefix(section, prefix) {
			return section, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSectionNotFound, number)
}

// NotFoundMessage is the console text printed for a missing section.
func NotFoundMessage(number string) string {
	return fmt.Sprintf("Error: Section %s not found.", number)
}
