// shell.go rewrites shell `read` statements into positional parameters with
// conditional fallbacks. Deliberately lighter than the PowerShell rewriter:
// only plain `read [flags] VAR` statements are recognized; anything fancier
// (read into multiple vars, process substitution) is left untouched.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	shellRead     = regexp.MustCompile(`^(\s*)read\s+(.+)$`)
	shellReadStmt = regexp.MustCompile(`(?m)^\s*read\s`)
	shellIdent    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// Existing argument handling disables rewriting: positional parameter
	// references or getopts mean the author already parameterized the script.
	shellArgHandling = regexp.MustCompile(`\$\{?[1-9@]|\bgetopts\b`)
)

var shellRules = []Rule{
	{
		Name:    "read-to-positional",
		Applies: shellReadStmt.MatchString,
		Apply:   rewriteShellRead,
	},
}

func rewriteShellRead(text string) (string, bool) {
	if shellArgHandling.MatchString(text) {
		return text, false
	}

	lines := strings.Split(text, "\n")

	type readStmt struct {
		line   int
		indent string
		name   string
	}
	var stmts []readStmt
	var order []string
	seen := make(map[string]bool)

	for i, line := range lines {
		m := shellRead.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, ok := shellReadVar(m[2])
		if !ok {
			continue // ambiguous form, leave untouched
		}
		stmts = append(stmts, readStmt{line: i, indent: m[1], name: name})
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	if len(stmts) == 0 {
		return text, false
	}

	// Positional parameter assignments, one per distinct variable.
	decls := make([]string, len(order))
	for i, name := range order {
		if pathLike(name) {
			decls[i] = fmt.Sprintf(`%s="${%d:-$(pwd)}"`, name, i+1)
		} else {
			decls[i] = fmt.Sprintf(`%s="${%d:-}"`, name, i+1)
		}
	}

	wrapped := make(map[int]readStmt, len(stmts))
	for _, s := range stmts {
		wrapped[s.line] = s
	}

	var out []string
	insertAt := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		insertAt = 1
	}
	for i, line := range lines {
		if i == insertAt {
			out = append(out, decls...)
		}
		if s, ok := wrapped[i]; ok {
			out = append(out, fmt.Sprintf(`%sif [ -z "$%s" ]; then %s; fi`,
				s.indent, s.name, strings.TrimSpace(line)))
			continue
		}
		out = append(out, line)
	}
	if insertAt == len(lines) {
		out = append(out, decls...)
	}

	return strings.Join(out, "\n"), true
}

// shellReadVar extracts the target variable from the arguments of a `read`
// statement. Flags are skipped along with the prompt argument of -p; a
// trailing token that is not a plain identifier rejects the statement.
func shellReadVar(rest string) (string, bool) {
	fields := strings.Fields(rest)
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if strings.HasPrefix(f, "-") {
			// -p takes the prompt as the next token unless it was attached
			// (e.g. -rp "prompt").
			if strings.Contains(f, "p") && i+1 < len(fields) && strings.HasPrefix(fields[i+1], `"`) {
				// Skip quoted prompt, which may span several fields.
				i++
				for i < len(fields) && !strings.HasSuffix(fields[i], `"`) {
					i++
				}
			}
			continue
		}
		if strings.HasPrefix(f, `"`) || strings.HasPrefix(f, "'") {
			continue
		}
		// First non-flag token is the variable; reject anything that is not
		// a plain identifier.
		if shellIdent.MatchString(f) && i == len(fields)-1 {
			return f, true
		}
		return "", false
	}
	return "", false
}
