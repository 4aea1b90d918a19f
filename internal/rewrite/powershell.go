// powershell.go is the reference rewriter: Read-Host assignments become
// optional [string] parameters with conditional fallbacks. All assignment
// forms are recognized — spaced, unspaced, with or without a prompt, the
// -Prompt parameter form, and backtick line continuations. Anything else
// mentioning Read-Host (a function wrapping it, a pipeline) is ambiguous
// and left byte-for-byte untouched.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// psParamBlock detects an existing param(...) declaration anywhere in
	// the script; its presence disables rewriting entirely.
	psParamBlock = regexp.MustCompile(`(?mi)^\s*param\s*\(`)

	// psAssign matches the start of a Read-Host assignment statement and
	// captures the target variable. Identifiers may contain digits and
	// underscores. Zero-or-more spaces around '=' covers the unspaced form
	// ($var=Read-Host"prompt").
	psAssign = regexp.MustCompile(`(?i)^(\s*)\$([A-Za-z_][A-Za-z0-9_]*)\s*=\s*Read-Host`)

	psReadHost = regexp.MustCompile(`(?i)Read-Host`)
)

var powerShellRules = []Rule{
	{
		Name: "read-host-to-param",
		Applies: func(text string) bool {
			return psReadHost.MatchString(text) && !psParamBlock.MatchString(text)
		},
		Apply: rewriteReadHost,
	},
}

// psStatement is one matched Read-Host assignment, possibly spanning
// continuation lines.
type psStatement struct {
	start, end int // inclusive line range
	indent     string
	name       string
}

func rewriteReadHost(text string) (string, bool) {
	lines := strings.Split(text, "\n")

	var stmts []psStatement
	var order []string
	seen := make(map[string]bool)

	for i := 0; i < len(lines); i++ {
		m := psAssign.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		end := i
		for end < len(lines)-1 && strings.HasSuffix(strings.TrimRight(lines[end], " \t"), "`") {
			end++
		}
		stmts = append(stmts, psStatement{start: i, end: end, indent: m[1], name: m[2]})
		if !seen[m[2]] {
			seen[m[2]] = true
			order = append(order, m[2])
		}
		i = end
	}

	if len(stmts) == 0 {
		return text, false
	}

	decls := make([]string, len(order))
	for i, name := range order {
		def := "$null"
		if pathLike(name) {
			def = "(Get-Location).Path"
		}
		decls[i] = fmt.Sprintf("    [string]$%s = %s", name, def)
	}
	paramBlock := "param(\n" + strings.Join(decls, ",\n") + "\n)\n"

	var out []string
	next := 0
	for i := 0; i < len(lines); i++ {
		if next < len(stmts) && stmts[next].start == i {
			s := stmts[next]
			next++
			if s.start == s.end {
				// Single line: wrap in place, original statement preserved.
				out = append(out, fmt.Sprintf("%sif (-not $%s) { %s }",
					s.indent, s.name, strings.TrimSpace(lines[i])))
			} else {
				// Continuation: wrap the whole statement in a block.
				out = append(out, fmt.Sprintf("%sif (-not $%s) {", s.indent, s.name))
				out = append(out, lines[s.start:s.end+1]...)
				out = append(out, s.indent+"}")
			}
			i = s.end
			continue
		}
		out = append(out, lines[i])
	}

	return paramBlock + strings.Join(out, "\n"), true
}
