// structure.go checks structural well-formedness: non-empty content,
// presence of executable lines, and quote balance. The quote scan first
// strips here-strings, then walks the text once, skipping comments and
// tracking open quotes on a stack. Quote characters inside an open quote of
// the other kind are content and neither push nor pop.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/davidhurst/scriptbox/internal/script"
)

var (
	hereStringDouble = regexp.MustCompile(`(?s)@".*?"@`)
	hereStringSingle = regexp.MustCompile(`(?s)@'.*?'@`)
)

// structuralIssues returns the structural errors and warnings for text.
// For PowerShell scripts only "empty script" and "no executable lines"
// remain hard errors; everything else degrades to a warning.
func structuralIssues(text string, typ script.Type) (errs, warns []string) {
	if strings.TrimSpace(text) == "" {
		return []string{"script is empty"}, nil
	}

	if !hasExecutableLine(text, typ) {
		return []string{"script has no executable lines"}, nil
	}

	if n := unclosedQuotes(text, typ); n > 0 {
		msg := fmt.Sprintf("unbalanced quotes: %d unclosed quote(s)", n)
		if typ == script.TypePowerShell {
			warns = append(warns, msg)
		} else {
			errs = append(errs, msg)
		}
	}

	return errs, warns
}

// hasExecutableLine reports whether at least one line is neither blank nor
// a comment for the given script type.
func hasExecutableLine(text string, typ script.Type) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		switch typ {
		case script.TypeNodeJS:
			if strings.HasPrefix(trimmed, "//") {
				continue
			}
		case script.TypeBatch:
			upper := strings.ToUpper(trimmed)
			if strings.HasPrefix(upper, "REM ") || strings.HasPrefix(trimmed, "::") {
				continue
			}
		case script.TypeShell, script.TypePowerShell, script.TypePython, script.TypeUnknown:
			if strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "#!") {
				continue
			}
		}
		return true
	}
	return false
}

// unclosedQuotes counts quotes left open at end of text. Here-strings are
// stripped first so their internal quotes cannot trip the scan; comments
// (only when no quote is open) are skipped to end of line. The escape
// character is backtick for PowerShell, backslash otherwise.
func unclosedQuotes(text string, typ script.Type) int {
	if typ == script.TypePowerShell {
		text = hereStringDouble.ReplaceAllString(text, "")
		text = hereStringSingle.ReplaceAllString(text, "")
	}

	escape := byte('\\')
	if typ == script.TypePowerShell {
		escape = '`'
	}

	var stack []byte
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == escape:
			escaped = true
		case len(stack) == 0 && isCommentStart(text, i, typ):
			for i < len(text) && text[i] != '\n' {
				i++
			}
		case c == '\'' || c == '"':
			switch {
			case len(stack) > 0 && stack[len(stack)-1] == c:
				stack = stack[:len(stack)-1]
			case len(stack) == 0:
				stack = append(stack, c)
			}
			// A quote of the other kind inside an open quote is content.
		}
	}
	return len(stack)
}

// isCommentStart reports whether a comment begins at offset i.
func isCommentStart(text string, i int, typ script.Type) bool {
	switch typ {
	case script.TypeNodeJS:
		return text[i] == '/' && i+1 < len(text) && text[i+1] == '/'
	case script.TypeShell, script.TypeBatch, script.TypePowerShell, script.TypePython, script.TypeUnknown:
		return text[i] == '#'
	}
	return text[i] == '#'
}
