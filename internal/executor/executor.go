// executor.go runs resolved script text with the best available interpreter.
// The text is materialized to a temp file whose removal is deferred the
// moment it is created, so every exit path — success, non-zero exit,
// timeout kill, spawn failure — releases it. Child processes run in their
// own process group and the whole group is killed on timeout, preventing
// orphans from accumulating.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/davidhurst/scriptbox/internal/detect"
	"github.com/davidhurst/scriptbox/internal/script"
)

// DefaultTimeout applies when Context.Timeout is zero.
const DefaultTimeout = 5 * time.Minute

// waitDelay bounds how long Wait blocks on lingering pipe readers after
// the context is cancelled.
const waitDelay = 5 * time.Second

// Context carries the per-run execution settings.
type Context struct {
	// WorkingDir is the child's working directory. Empty means inherit.
	WorkingDir string

	// Args are passed to the script after the temp file path.
	Args []string

	// Env entries (KEY=value) are appended to the inherited environment.
	Env []string

	// Timeout is the wall-clock limit before the process tree is killed.
	// Zero means DefaultTimeout.
	Timeout time.Duration

	// Stdout and Stderr, when set, receive output as it is produced.
	// Output is always captured into the Result as well.
	Stdout io.Writer
	Stderr io.Writer
}

// Executor spawns interpreters for resolved script text.
type Executor struct {
	probe  Probe
	logger *slog.Logger
}

// New creates an Executor using the given interpreter probe. A nil probe
// gets a fresh SystemProbe.
func New(probe Probe, logger *slog.Logger) *Executor {
	if probe == nil {
		probe = NewSystemProbe()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{probe: probe, logger: logger}
}

// Execute writes content to a temp file and runs it as typ.
// Non-zero exits and timeouts are reported in the Result, not as errors;
// an error means no process produced a result (missing interpreter, spawn
// failure) or the temp file could not be created.
func (e *Executor) Execute(ctx context.Context, content string, typ script.Type, ec Context) (*Result, error) {
	interpreterPath, err := resolveInterpreter(e.probe, detect.Interpreters(typ))
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := writeTempScript(content, typ)
	if err != nil {
		return nil, fmt.Errorf("materialize script: %w", err)
	}
	defer cleanup()

	timeout := ec.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	argv := buildArgv(interpreterPath, tmpPath, typ, ec.Args)
	cmd := exec.CommandContext(execCtx, argv[0], argv[1:]...)
	cmd.Dir = ec.WorkingDir
	if len(ec.Env) > 0 {
		cmd.Env = append(os.Environ(), ec.Env...)
	}

	// New process group so the timeout can kill all children too.
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = teeTo(&stdout, ec.Stdout)
	cmd.Stderr = teeTo(&stderr, ec.Stderr)

	e.logger.Debug("spawning interpreter",
		"interpreter", interpreterPath, "type", string(typ), "timeout", timeout)

	start := time.Now()
	runErr := cmd.Run()

	result := &Result{
		Duration: time.Since(start),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Command:  argv,
	}

	if runErr != nil {
		if execCtx.Err() == context.DeadlineExceeded {
			result.ExitCode = -1
			result.WasKilled = true
			return result, nil
		}
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Spawn-level failure (EACCES, ENOENT, bad working dir).
		return nil, &Error{
			Interpreter: interpreterPath,
			Reason:      "failed to start process",
			Err:         runErr,
		}
	}

	result.ExitCode = 0
	result.Success = true
	return result, nil
}

// writeTempScript materializes content to a temp file named with the
// type's extension. The returned cleanup always removes the file; callers
// defer it immediately so no exit path leaks.
func writeTempScript(content string, typ script.Type) (string, func(), error) {
	f, err := os.CreateTemp("", "scriptbox-*"+typ.Extension())
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

// buildArgv assembles the full command line: interpreter, any mode flags,
// the script path, then user arguments.
func buildArgv(interpreter, scriptPath string, typ script.Type, args []string) []string {
	var argv []string
	switch typ {
	case script.TypePowerShell:
		argv = []string{interpreter, "-NoProfile", "-File", scriptPath}
	case script.TypeBatch:
		argv = []string{interpreter, "/C", scriptPath}
	case script.TypeShell, script.TypePython, script.TypeNodeJS, script.TypeUnknown:
		argv = []string{interpreter, scriptPath}
	default:
		argv = []string{interpreter, scriptPath}
	}
	return append(argv, args...)
}

// teeTo writes to the capture buffer and, when set, the streaming writer.
func teeTo(capture *bytes.Buffer, stream io.Writer) io.Writer {
	if stream == nil {
		return capture
	}
	return io.MultiWriter(capture, stream)
}
