// validator.go runs the full validation pipeline: sanitize, then the
// dangerous/network/system pattern scans, then structural checks, then
// cross-platform compatibility heuristics. Every stage runs and its findings
// are collected; nothing short-circuits, so the caller can show every issue
// at once.
//
// Compatibility note: scripts classified as PowerShell never receive hard
// errors from the pattern scans, even in strict mode — matches degrade to
// warnings. This mirrors the behavior of earlier releases; it is preserved
// for compatibility, not because it is known to be a sound policy.
package validate

import (
	"regexp"
	"strings"

	"github.com/davidhurst/scriptbox/internal/script"
)

// Options controls how strictly the validator treats findings.
type Options struct {
	// Strict promotes pattern-scan findings from warnings to errors
	// (except on PowerShell scripts, see the package note above).
	Strict bool

	// AllowNetworkAccess skips the network-access scan entirely.
	AllowNetworkAccess bool

	// AllowSystemModification skips the system-modification scan entirely.
	AllowSystemModification bool
}

// Result is the outcome of validating one script.
// Invariant: IsValid is true exactly when Errors is empty. Sanitized is
// always populated with the best-effort sanitized text, valid or not.
type Result struct {
	IsValid   bool
	Errors    []string
	Warnings  []string
	Sanitized string
}

// Validate sanitizes text and runs every validation stage against the
// sanitized form. typ steers the pattern tables and structural rules.
func Validate(text string, typ script.Type, opts Options) Result {
	r := Result{Sanitized: Sanitize(text)}

	r.collect(matchAll(r.Sanitized, dangerousTable(typ)), "dangerous command: ", typ, opts)

	if !opts.AllowNetworkAccess {
		r.collect(matchAll(r.Sanitized, networkPatterns), "network access: ", typ, opts)
	}

	if !opts.AllowSystemModification {
		r.collect(matchAll(r.Sanitized, systemTable(typ)), "system modification: ", typ, opts)
	}

	errs, warns := structuralIssues(r.Sanitized, typ)
	r.Errors = append(r.Errors, errs...)
	r.Warnings = append(r.Warnings, warns...)

	// Compatibility heuristics never affect validity.
	r.Warnings = append(r.Warnings, compatibilityWarnings(r.Sanitized, typ)...)

	r.IsValid = len(r.Errors) == 0
	return r
}

// collect routes pattern findings to errors or warnings. Strict mode makes
// them errors, except for PowerShell scripts where they stay warnings.
func (r *Result) collect(findings []string, prefix string, typ script.Type, opts Options) {
	for _, f := range findings {
		if opts.Strict && typ != script.TypePowerShell {
			r.Errors = append(r.Errors, prefix+f)
		} else {
			r.Warnings = append(r.Warnings, prefix+f)
		}
	}
}

func dangerousTable(typ script.Type) []pattern {
	if typ == script.TypePowerShell {
		return dangerousPowerShellPatterns
	}
	return dangerousPatterns
}

func systemTable(typ script.Type) []pattern {
	if typ == script.TypePowerShell {
		return systemPowerShellPatterns
	}
	return systemPatterns
}

var (
	windowsPathRe = regexp.MustCompile(`[A-Za-z]:\\`)
	unixPathRe    = regexp.MustCompile(`(^|[\s"'=])(/usr/|/etc/|/home/|/var/)`)
	cmdletRe      = regexp.MustCompile(`\b(Write-Host|Get-ChildItem|New-Item|Remove-Item|Get-Content|Set-Location)\b`)
	unixToolRe    = regexp.MustCompile(`\b(grep|awk|sed|chmod|chown)\b`)
)

// compatibilityWarnings emits heuristic portability warnings. These are
// advisory only and never make a script invalid.
func compatibilityWarnings(text string, typ script.Type) []string {
	var warns []string

	if windowsPathRe.MatchString(text) && unixPathRe.MatchString(text) {
		warns = append(warns, "mixes Windows and Unix path styles; the script may not run on either platform unchanged")
	}

	switch typ {
	case script.TypeShell:
		if cmdletRe.MatchString(text) {
			warns = append(warns, "PowerShell-specific commands in a shell script will not run on Unix")
		}
	case script.TypePowerShell:
		if unixToolRe.MatchString(text) && !strings.Contains(text, "Get-Command") {
			warns = append(warns, "Unix-specific commands may not be available on Windows")
		}
	case script.TypeBatch, script.TypePython, script.TypeNodeJS, script.TypeUnknown:
		// No per-type heuristics beyond the mixed-path check.
	}

	return warns
}
