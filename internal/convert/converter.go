// converter.go derives platform variants from one canonical script by
// applying the rule table line by line. The output is explicitly lossy:
// generated variants are best-effort and must not be treated as
// semantically verified — warnings say where fidelity was lost.
package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/davidhurst/scriptbox/internal/script"
)

// Variants holds the derived text blobs plus conversion warnings.
// A field is empty when the canonical script already serves that platform
// or no conversion applies (python/nodejs scripts run everywhere as-is).
type Variants struct {
	Windows       string
	Unix          string
	CrossPlatform string
	Warnings      []string
}

// crossSafe matches commands PowerShell aliases to their unix names, so the
// line runs unmodified on both platforms.
var crossSafe = regexp.MustCompile(`^\s*(echo|cd|pwd|ls|cat|sleep)\b`)

// Convert derives variants for the opposite platform(s) of the canonical
// text. It never fails; on an internal conversion panic the affected line
// passes through unchanged with a warning.
func Convert(text string, typ script.Type, from script.Platform) Variants {
	switch typ {
	case script.TypePython, script.TypeNodeJS:
		// Interpreter-portable already; nothing to derive.
		return Variants{CrossPlatform: text}
	case script.TypeUnknown:
		return Variants{}
	case script.TypeShell, script.TypeBatch, script.TypePowerShell:
		// Converted below.
	}

	v := Variants{}
	switch from {
	case script.PlatformUnix:
		v.Windows = convertLines(text, unixToWindows, &v.Warnings)
	case script.PlatformWindows:
		v.Unix = convertLines(text, windowsToUnix, &v.Warnings)
	case script.PlatformCrossPlatform:
		// Canonical text claims portability; derive nothing directional.
	}
	v.CrossPlatform = crossPlatform(text, typ, &v.Warnings)
	return v
}

// convertLines applies the directional rule table to every line.
// Complex lines (pipes, substitutions, control flow, package managers) pass
// through unchanged with a warning rather than a guessed translation.
func convertLines(text string, dir direction, warnings *[]string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = convertLine(line, i+1, dir, warnings)
	}
	return strings.Join(out, "\n")
}

func convertLine(line string, num int, dir direction, warnings *[]string) (converted string) {
	// A broken rule must never corrupt output: fall back to the original
	// line and record what happened.
	defer func() {
		if r := recover(); r != nil {
			converted = line
			*warnings = append(*warnings, fmt.Sprintf("line %d: conversion failed internally (%v); left unchanged", num, r))
		}
	}()

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return line
	}

	if complexLine.MatchString(line) {
		*warnings = append(*warnings, fmt.Sprintf("line %d: too complex to convert reliably; left unchanged", num))
		return line
	}

	converted, _ = applyRules(line, dir)
	return converted
}

// crossPlatform builds the portable variant: blank lines, comments, and
// alias-safe commands pass through; everything else is replaced with an
// annotated placeholder instead of a guess.
func crossPlatform(text string, typ script.Type, warnings *[]string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	annotated := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			out[i] = line
		case crossSafe.MatchString(line) && !complexLine.MatchString(line):
			out[i] = line
		default:
			out[i] = typ.CommentPrefix() + "Output: " + line
			annotated++
		}
	}
	if annotated > 0 {
		*warnings = append(*warnings, fmt.Sprintf("cross-platform variant: %d line(s) had no safe translation and were annotated", annotated))
	}
	return strings.Join(out, "\n")
}
