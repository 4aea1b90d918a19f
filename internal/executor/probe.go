// probe.go resolves interpreter binaries. The Probe interface exists so
// tests can control which interpreters appear available; SystemProbe is the
// real implementation, caching PATH lookups (hits and misses) per instance
// so repeated executions do not re-scan PATH.
package executor

import (
	"os/exec"
	"sync"
)

// Probe resolves an interpreter name to an absolute path.
type Probe interface {
	// Look returns the absolute path of name, or an error when it is not
	// available on this host.
	Look(name string) (string, error)
}

// SystemProbe resolves interpreters via PATH lookup with per-instance
// caching. Safe for concurrent use.
type SystemProbe struct {
	mu    sync.RWMutex
	paths map[string]string
	miss  map[string]error
}

// NewSystemProbe creates a SystemProbe with an empty cache.
func NewSystemProbe() *SystemProbe {
	return &SystemProbe{
		paths: make(map[string]string),
		miss:  make(map[string]error),
	}
}

// Look resolves name via exec.LookPath, caching both outcomes.
func (p *SystemProbe) Look(name string) (string, error) {
	p.mu.RLock()
	path, hit := p.paths[name]
	missErr, missed := p.miss[name]
	p.mu.RUnlock()
	if hit {
		return path, nil
	}
	if missed {
		return "", missErr
	}

	path, err := exec.LookPath(name)

	p.mu.Lock()
	if err != nil {
		p.miss[name] = err
	} else {
		p.paths[name] = path
	}
	p.mu.Unlock()

	return path, err
}

// installSuggestions maps an interpreter binary to a hint shown when it is
// missing.
var installSuggestions = map[string]string{
	"bash":       "install bash via your system package manager",
	"sh":         "install a POSIX shell via your system package manager",
	"zsh":        "install zsh via your system package manager",
	"pwsh":       "install PowerShell from https://github.com/PowerShell/PowerShell",
	"powershell": "install PowerShell from https://github.com/PowerShell/PowerShell",
	"python3":    "install Python 3 from https://www.python.org/downloads/",
	"python":     "install Python 3 from https://www.python.org/downloads/",
	"node":       "install Node.js from https://nodejs.org/",
	"nodejs":     "install Node.js from https://nodejs.org/",
	"cmd":        "cmd.exe is only available on Windows",
}

// resolveInterpreter probes candidates in preference order and returns the
// first available path. An empty candidate list means the script type has no
// known interpreter and cannot be auto-executed.
func resolveInterpreter(probe Probe, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", &Error{
			Interpreter: "unknown",
			Reason:      "script type cannot be auto-executed",
		}
	}

	for _, name := range candidates {
		if path, err := probe.Look(name); err == nil {
			return path, nil
		}
	}

	// Report against the most preferred candidate; that is the one the user
	// should install.
	return "", &Error{
		Interpreter: candidates[0],
		Reason:      "interpreter not found in PATH",
		Suggestion:  installSuggestions[candidates[0]],
	}
}
