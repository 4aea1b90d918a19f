// detector.go classifies raw script text into a script type and an ordered
// list of interpreter candidates. Classification prefers a known filename
// extension; otherwise it scans the content for a shebang, then counts
// per-language keyword indicators and picks the highest-scoring type.
package detect

import (
	"path/filepath"
	"strings"

	"github.com/davidhurst/scriptbox/internal/script"
)

// Detection is the classification result for one piece of script text.
type Detection struct {
	// Type is the detected script type. TypeUnknown means the content could
	// not be classified and cannot be auto-executed.
	Type script.Type

	// Interpreters is the ordered interpreter preference list for Type.
	// Empty when Type is TypeUnknown.
	Interpreters []string
}

// extensionTypes maps known filename extensions to script types.
var extensionTypes = map[string]script.Type{
	".sh":   script.TypeShell,
	".bash": script.TypeShell,
	".zsh":  script.TypeShell,
	".ps1":  script.TypePowerShell,
	".psm1": script.TypePowerShell,
	".py":   script.TypePython,
	".js":   script.TypeNodeJS,
	".mjs":  script.TypeNodeJS,
	".bat":  script.TypeBatch,
	".cmd":  script.TypeBatch,
}

// interpreterPreferences lists interpreter binaries per type, most
// preferred first. The executor probes these in order.
var interpreterPreferences = map[script.Type][]string{
	script.TypeShell:      {"bash", "sh", "zsh"},
	script.TypeBatch:      {"cmd"},
	script.TypePowerShell: {"pwsh", "powershell"},
	script.TypePython:     {"python3", "python"},
	script.TypeNodeJS:     {"node", "nodejs"},
}

// keywordIndicators lists content substrings that suggest a type. Detection
// counts matches per type across the whole script and picks the winner, so
// ties between languages resolve by indicator count rather than scan order.
var keywordIndicators = map[script.Type][]string{
	script.TypePowerShell: {"Write-Host", "$env:", "param(", "-ForegroundColor", "Get-ChildItem", "Read-Host"},
	script.TypePython:     {"def ", "import ", "print(", "input(", "__name__"},
	script.TypeNodeJS:     {"require(", "console.log", "module.exports", "process.argv"},
	script.TypeBatch:      {"@echo off", "setlocal", "%~dp0", "goto "},
}

// Interpreters returns the ordered interpreter preference list for a type.
// TypeUnknown returns nil.
func Interpreters(t script.Type) []string {
	return interpreterPreferences[t]
}

// Detect classifies content, using filename as an extension hint when given.
// It never fails: unclassifiable content yields TypeUnknown with an empty
// interpreter list.
func Detect(content, filename string) Detection {
	if filename != "" {
		ext := strings.ToLower(filepath.Ext(filename))
		if t, ok := extensionTypes[ext]; ok {
			return Detection{Type: t, Interpreters: Interpreters(t)}
		}
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Detection{Type: script.TypeUnknown}
	}

	if t, ok := detectShebang(trimmed); ok {
		return Detection{Type: t, Interpreters: Interpreters(t)}
	}

	t := detectKeywords(content)
	return Detection{Type: t, Interpreters: Interpreters(t)}
}

// detectShebang inspects the first line for a shebang. A shebang is decisive:
// it wins over any keyword evidence in the body.
func detectShebang(content string) (script.Type, bool) {
	first := content
	if idx := strings.IndexByte(first, '\n'); idx >= 0 {
		first = first[:idx]
	}
	first = strings.TrimSpace(first)
	if !strings.HasPrefix(first, "#!") {
		return script.TypeUnknown, false
	}

	switch {
	case strings.Contains(first, "python"):
		return script.TypePython, true
	case strings.Contains(first, "node"):
		return script.TypeNodeJS, true
	case strings.Contains(first, "pwsh"), strings.Contains(first, "powershell"):
		return script.TypePowerShell, true
	case strings.Contains(first, "bash"), strings.Contains(first, "zsh"),
		strings.Contains(first, "/sh"), strings.Contains(first, " sh"):
		return script.TypeShell, true
	}
	// Unrecognized interpreter in the shebang: still a unix script of some
	// kind, treat as shell so the preference list gets a chance.
	return script.TypeShell, true
}

// detectKeywords counts indicator hits per language and returns the type
// with the most. Zero hits everywhere defaults to shell, since plain
// command sequences are valid shell.
func detectKeywords(content string) script.Type {
	best := script.TypeShell
	bestCount := 0
	// Fixed iteration order so equal counts resolve deterministically.
	for _, t := range []script.Type{script.TypePowerShell, script.TypePython, script.TypeNodeJS, script.TypeBatch} {
		count := 0
		for _, kw := range keywordIndicators[t] {
			count += strings.Count(content, kw)
		}
		if count > bestCount {
			best = t
			bestCount = count
		}
	}
	return best
}
