// result.go defines the execution result and error structures.
// A Result captures everything a caller needs to report one run: output,
// exit code, elapsed time, the exact argv used, and whether the process was
// killed by the timeout.
package executor

import (
	"fmt"
	"time"
)

// Result holds the outcome of one script execution.
type Result struct {
	// Success is true when the process exited zero without being killed.
	Success bool `json:"success"`

	// ExitCode is the process exit code. Meaningful only when WasKilled is
	// false; -1 is the sentinel for killed or abnormal termination.
	ExitCode int `json:"exit_code"`

	// Stdout and Stderr contain the captured output. The same bytes were
	// already streamed to the writers in Context as they arrived.
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`

	// Duration is the wall time from spawn to exit (or kill).
	Duration time.Duration `json:"duration_ms"`

	// Command is the argv the interpreter was spawned with.
	Command []string `json:"command"`

	// WasKilled is true when the timeout fired and the process tree was
	// terminated.
	WasKilled bool `json:"was_killed"`
}

// DurationMs returns the elapsed time in milliseconds.
func (r *Result) DurationMs() int64 {
	return r.Duration.Milliseconds()
}

// Error is returned when no process could produce a Result: the interpreter
// is missing or the spawn itself failed. Non-zero exits are not errors.
type Error struct {
	// Interpreter is the binary that was required or attempted.
	Interpreter string

	// Reason describes what went wrong.
	Reason string

	// Suggestion, when set, tells the user how to make the interpreter
	// available.
	Suggestion string

	// Err is the underlying OS error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("cannot execute with %s: %s", e.Interpreter, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Suggestion != "" {
		msg += " (" + e.Suggestion + ")"
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }
