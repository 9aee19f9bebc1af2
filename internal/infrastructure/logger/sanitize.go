package logger

import (
	"fmt"
	"strings"
)

// SanitizeForLog escapes control characters in caller-supplied strings
// (video ids, filenames, headers) so they cannot forge log lines or drive
// the terminal. Printable Unicode is kept as is.
func SanitizeForLog(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 32 || r == 127:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
