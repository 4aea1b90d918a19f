// python.go rewrites top-level input() assignments into sys.argv parameters
// with conditional fallbacks. Indented occurrences (inside functions or
// conditionals) are ambiguous and left untouched.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	pyInput = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*=\s*input\s*\(`)

	// argparse or direct sys.argv use means the script already takes
	// arguments; rewriting would double up.
	pyArgHandling = regexp.MustCompile(`\bargparse\b|sys\.argv`)
)

var pythonRules = []Rule{
	{
		Name: "input-to-argv",
		Applies: func(text string) bool {
			return strings.Contains(text, "input(") && !pyArgHandling.MatchString(text)
		},
		Apply: rewritePythonInput,
	},
}

func rewritePythonInput(text string) (string, bool) {
	lines := strings.Split(text, "\n")

	type inputStmt struct {
		line int
		name string
	}
	var stmts []inputStmt
	var order []string
	seen := make(map[string]bool)

	for i, line := range lines {
		m := pyInput.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		stmts = append(stmts, inputStmt{line: i, name: m[1]})
		if !seen[m[1]] {
			seen[m[1]] = true
			order = append(order, m[1])
		}
	}

	if len(stmts) == 0 {
		return text, false
	}

	needOS := false
	decls := make([]string, len(order))
	for i, name := range order {
		if pathLike(name) {
			needOS = true
			decls[i] = fmt.Sprintf("%s = sys.argv[%d] if len(sys.argv) > %d else os.getcwd()", name, i+1, i+1)
		} else {
			decls[i] = fmt.Sprintf("%s = sys.argv[%d] if len(sys.argv) > %d else None", name, i+1, i+1)
		}
	}

	header := []string{"import sys"}
	if needOS {
		header = []string{"import os", "import sys"}
	}
	header = append(header, "")
	header = append(header, decls...)
	header = append(header, "")

	wrapped := make(map[int]inputStmt, len(stmts))
	for _, s := range stmts {
		wrapped[s.line] = s
	}

	var out []string
	insertAt := 0
	for insertAt < len(lines) && (strings.HasPrefix(lines[insertAt], "#!") ||
		strings.HasPrefix(lines[insertAt], "# -*-")) {
		insertAt++
	}
	for i, line := range lines {
		if i == insertAt {
			out = append(out, header...)
		}
		if s, ok := wrapped[i]; ok {
			out = append(out, fmt.Sprintf("if %s is None:", s.name))
			out = append(out, "    "+line)
			continue
		}
		out = append(out, line)
	}
	if insertAt == len(lines) {
		out = append(out, header...)
	}

	return strings.Join(out, "\n"), true
}
