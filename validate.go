package byteguide

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
	// ErrEmptyInput reports a guide with no text at all.
	ErrEmptyInput = errors.New("empty input")
)

// A guide with more control bytes than this, per hundred, is treated as
// binary once it is long enough for the ratio to mean anything.
const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput checks a replacement guide line by line. Errors name the
// first offending line, counting from 1.
func ValidateInput(src []byte) error {
	if len(bytes.TrimSpace(src)) == 0 {
		return ErrEmptyInput
	}
	control := 0
	for n, line := range bytes.Split(src, []byte("\n")) {
		if !utf8.Valid(line) {
			return fmt.Errorf("%w: line %d", ErrInvalidUTF8, n+1)
		}
		if bytes.IndexByte(line, 0x00) >= 0 {
			return fmt.Errorf("%w: NUL byte on line %d", ErrBinaryInput, n+1)
		}
		for _, b := range line {
			if isControlByte(b) {
				control++
			}
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return fmt.Errorf("%w: %d control bytes", ErrBinaryInput, control)
	}
	return nil
}

// isControlByte excludes tab, CR and form feed, which plain text may carry.
func isControlByte(b byte) bool {
	switch {
	case b == '\t' || b == '\r' || b == '\f':
		return false
	case b < 0x20:
		return true
	default:
		return b == 0x7F
	}
}
