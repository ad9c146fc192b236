package wasteland

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxCommandSize bounds a single Runner command line.
const MaxCommandSize = 1024

var (
	ErrCommandTooLarge = errors.New("command exceeds maximum allowed size")
	ErrInvalidUTF8     = errors.New("command contains invalid UTF-8 sequences")
)

// sanitizeCommand rejects oversized or malformed lines and strips control
// characters such as ANSI escapes so they never reach the output.
func sanitizeCommand(line string) (string, error) {
	if len(line) > MaxCommandSize {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrCommandTooLarge, len(line), MaxCommandSize)
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	clean := true
	for _, r := range line {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return line, nil
	}

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}
