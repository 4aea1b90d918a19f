// patterns.go holds the fixed pattern tables the validator scans against:
// dangerous commands, network access, and system modification. PowerShell
// scripts get their own dangerous/system tables: the unix-specific entries
// are excluded and PowerShell-specific ones added.
package validate

import "regexp"

// pattern pairs a compiled regex with the human-readable description
// used in error/warning messages.
type pattern struct {
	re   *regexp.Regexp
	desc string
}

func pat(expr, desc string) pattern {
	return pattern{re: regexp.MustCompile(`(?i)` + expr), desc: desc}
}

// dangerousPatterns flags commands that can destroy data or the system.
var dangerousPatterns = []pattern{
	pat(`rm\s+-rf?\b`, "recursive file deletion (rm -rf)"),
	pat(`del\s+/s\b`, "recursive file deletion (del /s)"),
	pat(`format\s+[a-z]:`, "drive format"),
	pat(`mkfs\b`, "filesystem creation (mkfs)"),
	pat(`dd\s+if=`, "raw disk write (dd)"),
	pat(`reg\s+delete\b`, "registry deletion"),
	pat(`(shutdown|reboot)\b`, "system shutdown/reboot"),
	pat(`:\(\)\s*\{\s*:\|:`, "fork bomb"),
}

// dangerousPowerShellPatterns is the reduced table for PowerShell scripts:
// the unix-specific entries above are dropped and PowerShell equivalents
// added.
var dangerousPowerShellPatterns = []pattern{
	pat(`del\s+/s\b`, "recursive file deletion (del /s)"),
	pat(`format\s+[a-z]:`, "drive format"),
	pat(`reg\s+delete\b`, "registry deletion"),
	pat(`remove-item\s+(-\w+\s+)*-recurse\s+(-\w+\s+)*-force\b`, "recursive forced deletion (Remove-Item -Recurse -Force)"),
	pat(`invoke-expression\b`, "dynamic code execution (Invoke-Expression)"),
	pat(`stop-computer\b`, "system shutdown (Stop-Computer)"),
}

// networkPatterns flags commands that reach out to the network.
var networkPatterns = []pattern{
	pat(`\bcurl\b`, "network access (curl)"),
	pat(`\bwget\b`, "network access (wget)"),
	pat(`invoke-webrequest\b`, "network access (Invoke-WebRequest)"),
	pat(`\bfetch\b`, "network access (fetch)"),
}

// systemPatterns flags commands that modify system state or elevate
// privileges.
var systemPatterns = []pattern{
	pat(`\bsudo\b`, "privilege elevation (sudo)"),
	pat(`\brunas\b`, "privilege elevation (runas)"),
	pat(`reg\s+add\b`, "registry modification (reg add)"),
	pat(`reg\s+delete\b`, "registry deletion (reg delete)"),
	pat(`sc\s+create\b`, "service creation (sc create)"),
	pat(`\bsystemctl\b`, "service management (systemctl)"),
}

// systemPowerShellPatterns is the PowerShell variant of the system table.
var systemPowerShellPatterns = []pattern{
	pat(`\brunas\b`, "privilege elevation (runas)"),
	pat(`reg\s+add\b`, "registry modification (reg add)"),
	pat(`reg\s+delete\b`, "registry deletion (reg delete)"),
	pat(`sc\s+create\b`, "service creation (sc create)"),
	pat(`new-service\b`, "service creation (New-Service)"),
	pat(`set-executionpolicy\b`, "execution policy change (Set-ExecutionPolicy)"),
}

// matchAll returns the descriptions of every pattern in table that matches
// text, in table order.
func matchAll(text string, table []pattern) []string {
	var found []string
	for _, p := range table {
		if p.re.MatchString(text) {
			found = append(found, p.desc)
		}
	}
	return found
}
