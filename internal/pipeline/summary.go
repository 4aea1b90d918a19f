// summary.go renders validation outcomes for terminal display: a pass/fail
// banner followed by bulleted errors and warnings.
package pipeline

import (
	"strings"

	"github.com/davidhurst/scriptbox/internal/validate"
)

// FormatSummary renders a human-readable validation summary. extraWarnings
// (rewrite/conversion notices) are listed after the validator's own.
func FormatSummary(v validate.Result, extraWarnings []string) string {
	var b strings.Builder

	if v.IsValid {
		b.WriteString("Validation: PASS\n")
	} else {
		b.WriteString("Validation: FAIL\n")
	}

	for _, e := range v.Errors {
		b.WriteString("  error:   " + e + "\n")
	}
	for _, w := range v.Warnings {
		b.WriteString("  warning: " + w + "\n")
	}
	for _, w := range extraWarnings {
		b.WriteString("  warning: " + w + "\n")
	}

	return b.String()
}
