// Package rewrite converts blocking interactive-input calls (Read-Host,
// read, input(), prompt()) into optional parameters with conditional
// fallbacks, so registered scripts never hang on stdin when run
// non-interactively.
//
// Each supported language contributes an ordered rule: a predicate deciding
// whether rewriting applies (the idiom is present and the script has no
// existing parameter/argument handling) and a transform doing the rewrite.
// Transforms never guess: an occurrence that does not match a known
// assignment form is left untouched.
package rewrite

import (
	"strings"

	"github.com/davidhurst/scriptbox/internal/script"
)

// Warning is emitted exactly once whenever any rewrite occurred.
const Warning = "Automatically converted interactive input to support command-line arguments"

// Result is the outcome of one rewrite pass.
type Result struct {
	// Script is the (possibly rewritten) text.
	Script string

	// Changed reports whether any rewrite occurred.
	Changed bool

	// Warnings holds the conversion notice when Changed is true.
	Warnings []string
}

// Rule is one ordered rewriting step. Applies is the predicate; Apply
// returns the transformed text and whether anything changed.
type Rule struct {
	Name    string
	Applies func(text string) bool
	Apply   func(text string) (string, bool)
}

// rulesFor returns the ordered rule list for a script type. Types without
// a known blocking-read idiom get no rules.
func rulesFor(t script.Type) []Rule {
	switch t {
	case script.TypePowerShell:
		return powerShellRules
	case script.TypeShell:
		return shellRules
	case script.TypePython:
		return pythonRules
	case script.TypeNodeJS:
		return nodeRules
	case script.TypeBatch, script.TypeUnknown:
		return nil
	}
	return nil
}

// Rewrite applies the rule list for typ to text. Running Rewrite on its own
// output is a no-op: every transform installs the parameter handling its
// predicate checks for.
func Rewrite(text string, typ script.Type) Result {
	r := Result{Script: text}
	for _, rule := range rulesFor(typ) {
		if !rule.Applies(r.Script) {
			continue
		}
		out, changed := rule.Apply(r.Script)
		if changed {
			r.Script = out
			r.Changed = true
		}
	}
	if r.Changed {
		r.Warnings = append(r.Warnings, Warning)
	}
	return r
}

// pathLike reports whether a variable name suggests a filesystem location,
// in which case its synthesized default is the current directory instead of
// null.
func pathLike(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range []string{"path", "dir", "root"} {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
