// sanitize.go normalizes raw script text before any scanning runs.
// Sanitization is lossy on purpose: traversal sequences and control
// characters are stripped rather than flagged, so the sanitized form is
// always safe to persist and display even when validation later fails.
package validate

import (
	"regexp"
	"strings"
)

var blankRuns = regexp.MustCompile(`\n{4,}`)

// Sanitize returns a normalized copy of text:
//   - CRLF line endings become LF
//   - "../" and "..\" traversal sequences are removed
//   - control characters other than \n and \t are removed
//   - runs of 3+ blank lines collapse to a single blank line
//   - leading/trailing whitespace is trimmed
func Sanitize(text string) string {
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = strings.ReplaceAll(s, "../", "")
	s = strings.ReplaceAll(s, `..\`, "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || r >= 0x20 && r != 0x7f {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Three or more blank lines in a row (4+ newlines) collapse to one.
	s = blankRuns.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
