// rules.go holds the ordered, directional conversion rule table. Each rule
// rewrites one whole line via regex substitution; rules are tried in order
// and the first match wins, so more specific patterns sit above general
// ones. Conversion is best-effort by contract: lines matching no rule pass
// through unchanged, and recognizably complex lines raise a warning instead
// of a guess.
package convert

import "regexp"

// direction states which way a rule translates.
type direction int

const (
	unixToWindows direction = iota
	windowsToUnix
)

// rule is one line-level substitution.
type rule struct {
	dir     direction
	pattern *regexp.Regexp
	// replacement uses $1/$2 group references.
	replacement string
}

// conversionRules is the ordered rule table. Unix side is POSIX shell,
// Windows side is PowerShell.
var conversionRules = []rule{
	// Directory/file creation. -p/-Force both mean "no error if it exists".
	{unixToWindows, regexp.MustCompile(`^(\s*)mkdir\s+-p\s+(.+)$`),
		`${1}New-Item -ItemType Directory -Force -Path "${2}"`},
	{unixToWindows, regexp.MustCompile(`^(\s*)mkdir\s+(.+)$`),
		`${1}New-Item -ItemType Directory -Path "${2}"`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)New-Item\s+-ItemType\s+Directory\s+-Force\s+-Path\s+"?([^"]+)"?\s*$`),
		`${1}mkdir -p ${2}`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)New-Item\s+-ItemType\s+Directory\s+-Path\s+"?([^"]+)"?\s*$`),
		`${1}mkdir ${2}`},

	{unixToWindows, regexp.MustCompile(`^(\s*)touch\s+(.+)$`),
		`${1}New-Item -ItemType File -Force -Path "${2}"`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)New-Item\s+-ItemType\s+File\s+(?:-Force\s+)?-Path\s+"?([^"]+)"?\s*$`),
		`${1}touch ${2}`},

	// Output.
	{unixToWindows, regexp.MustCompile(`^(\s*)echo\s+(.+)$`), `${1}Write-Output ${2}`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Write-(?:Output|Host)\s+(.+)$`), `${1}echo ${2}`},

	// Environment variables.
	{unixToWindows, regexp.MustCompile(`^(\s*)export\s+([A-Za-z_][A-Za-z0-9_]*)=(.*)$`),
		`${1}$$env:${2}="${3}"`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)\$env:([A-Za-z_][A-Za-z0-9_]*)\s*=\s*"?([^"]*)"?\s*$`),
		`${1}export ${2}=${3}`},

	// File operations.
	{unixToWindows, regexp.MustCompile(`^(\s*)cp\s+-r\s+(\S+)\s+(\S+)\s*$`),
		`${1}Copy-Item -Recurse -Path "${2}" -Destination "${3}"`},
	{unixToWindows, regexp.MustCompile(`^(\s*)cp\s+(\S+)\s+(\S+)\s*$`),
		`${1}Copy-Item -Path "${2}" -Destination "${3}"`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Copy-Item\s+-Recurse\s+-Path\s+"?(\S+?)"?\s+-Destination\s+"?(\S+?)"?\s*$`),
		`${1}cp -r ${2} ${3}`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Copy-Item\s+-Path\s+"?(\S+?)"?\s+-Destination\s+"?(\S+?)"?\s*$`),
		`${1}cp ${2} ${3}`},

	{unixToWindows, regexp.MustCompile(`^(\s*)mv\s+(\S+)\s+(\S+)\s*$`),
		`${1}Move-Item -Path "${2}" -Destination "${3}"`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Move-Item\s+-Path\s+"?(\S+?)"?\s+-Destination\s+"?(\S+?)"?\s*$`),
		`${1}mv ${2} ${3}`},

	{unixToWindows, regexp.MustCompile(`^(\s*)cat\s+(\S+)\s*$`), `${1}Get-Content "${2}"`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Get-Content\s+"?(\S+?)"?\s*$`), `${1}cat ${2}`},

	// Listing and location.
	{unixToWindows, regexp.MustCompile(`^(\s*)ls(\s+-la?)?\s*$`), `${1}Get-ChildItem`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Get-ChildItem\s*$`), `${1}ls`},
	{unixToWindows, regexp.MustCompile(`^(\s*)pwd\s*$`), `${1}Get-Location`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Get-Location\s*$`), `${1}pwd`},
	{unixToWindows, regexp.MustCompile(`^(\s*)cd\s+(.+)$`), `${1}Set-Location "${2}"`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Set-Location\s+"?([^"]+)"?\s*$`), `${1}cd ${2}`},

	// Deletion. Translated literally; the validator flags it separately.
	{unixToWindows, regexp.MustCompile(`^(\s*)rm\s+-rf?\s+(.+)$`),
		`${1}Remove-Item -Recurse -Force -Path "${2}"`},
	{unixToWindows, regexp.MustCompile(`^(\s*)rm\s+(\S+)\s*$`), `${1}Remove-Item -Path "${2}"`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Remove-Item\s+-Recurse\s+-Force\s+-Path\s+"?([^"]+)"?\s*$`),
		`${1}rm -rf ${2}`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Remove-Item\s+-Path\s+"?([^"]+)"?\s*$`),
		`${1}rm ${2}`},

	{unixToWindows, regexp.MustCompile(`^(\s*)sleep\s+(\d+)\s*$`), `${1}Start-Sleep -Seconds ${2}`},
	{windowsToUnix, regexp.MustCompile(`^(\s*)Start-Sleep\s+-Seconds\s+(\d+)\s*$`), `${1}sleep ${2}`},
}

// complexLine flags constructs the rule table cannot translate reliably:
// pipes, command substitution, control flow, package managers.
var complexLine = regexp.MustCompile(
	`\||\$\(|` + "`" + `|^\s*(if|for|while|case|function)\b|\b(apt|apt-get|yum|dnf|brew|choco|winget)\b`)

// applyRules runs the table in order for one line and direction. Returns
// the converted line and whether any rule matched.
func applyRules(line string, dir direction) (string, bool) {
	for _, r := range conversionRules {
		if r.dir != dir {
			continue
		}
		if r.pattern.MatchString(line) {
			return r.pattern.ReplaceAllString(line, r.replacement), true
		}
	}
	return line, false
}
