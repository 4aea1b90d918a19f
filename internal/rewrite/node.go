// node.go rewrites synchronous prompt assignments (prompt-sync,
// readline-sync) into process.argv parameters with conditional fallbacks.
// Callback-based readline (rl.question) cannot be wrapped without
// restructuring control flow, so it is left untouched.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nodePrompt = regexp.MustCompile(`(?m)^(?:const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*(?:prompt|readlineSync\.question|rlSync\.question)\s*\(`)

	nodeArgHandling = regexp.MustCompile(`process\.argv`)
)

var nodeRules = []Rule{
	{
		Name:    "prompt-to-argv",
		Applies: nodePrompt.MatchString,
		Apply:   rewriteNodePrompt,
	},
}

func rewriteNodePrompt(text string) (string, bool) {
	if nodeArgHandling.MatchString(text) {
		return text, false
	}

	lines := strings.Split(text, "\n")

	type promptStmt struct {
		line int
		name string
	}
	var stmts []promptStmt
	var order []string
	seen := make(map[string]bool)

	for i, line := range lines {
		m := nodePrompt.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		stmts = append(stmts, promptStmt{line: i, name: m[1]})
		if !seen[m[1]] {
			seen[m[1]] = true
			order = append(order, m[1])
		}
	}

	if len(stmts) == 0 {
		return text, false
	}

	// argv[0] is node, argv[1] the script path; user args start at 2.
	decls := make([]string, len(order))
	for i, name := range order {
		if pathLike(name) {
			decls[i] = fmt.Sprintf("let %s = process.argv[%d] ?? process.cwd();", name, i+2)
		} else {
			decls[i] = fmt.Sprintf("let %s = process.argv[%d] ?? null;", name, i+2)
		}
	}

	wrapped := make(map[int]promptStmt, len(stmts))
	for _, s := range stmts {
		wrapped[s.line] = s
	}

	declRe := regexp.MustCompile(`^(?:const|let|var)\s+`)

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
			// The declaration moved to the top, so the guarded fallback is a
			// plain reassignment of the same statement.
			stmt := declRe.ReplaceAllString(strings.TrimSpace(line), "")
			out = append(out, fmt.Sprintf("if (%s === null) { %s }", s.name, stmt))
			continue
		}
		out = append(out, line)
	}
	if insertAt == len(lines) {
		out = append(out, decls...)
	}

	return strings.Join(out, "\n"), true
}
