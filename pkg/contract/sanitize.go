package contract

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength caps sanitized user input, counted in runes so multibyte
// text gets the same budget as ASCII. Longer queries are truncated, never
// rejected.
const MaxQueryLength = 10000

// Sanitize trims surrounding whitespace and truncates to MaxQueryLength
// runes, always cutting on a rune boundary. Sanitizing an already-clean
// short string is a no-op.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > MaxQueryLength {
		runes := []rune(text)
		text = string(runes[:MaxQueryLength])
		slog.Warn("Input truncated", "max_length", MaxQueryLength)
	}
	return text
}
