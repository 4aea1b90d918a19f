// executor_test.go tests script execution: exit codes, timeout kills,
// streaming, temp-file cleanup, and missing-interpreter errors via a fake
// probe.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/davidhurst/scriptbox/internal/script"
)

// fakeProbe resolves only the interpreters it was given.
type fakeProbe struct {
	known map[string]string
}

func (p *fakeProbe) Look(name string) (string, error) {
	if path, ok := p.known[name]; ok {
		return path, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func newExecutor(t *testing.T) *Executor {
	t.Helper()
	return New(NewSystemProbe(), nil)
}

func TestExecute_Success(t *testing.T) {
	e := newExecutor(t)
	r, err := e.Execute(context.Background(), "echo hello", script.TypeShell, Context{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !r.Success || r.ExitCode != 0 {
		t.Errorf("expected success with exit 0, got success=%v code=%d stderr=%q", r.Success, r.ExitCode, r.Stderr)
	}
	if !strings.Contains(r.Stdout, "hello") {
		t.Errorf("expected stdout to contain hello, got %q", r.Stdout)
	}
	if len(r.Command) == 0 {
		t.Error("command argv must be recorded")
	}
}

func TestExecute_NonZeroExitIsNotAnError(t *testing.T) {
	e := newExecutor(t)
	r, err := e.Execute(context.Background(), "exit 3", script.TypeShell, Context{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("non-zero exit must not be an error: %v", err)
	}
	if r.Success {
		t.Error("expected success=false")
	}
	if r.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", r.ExitCode)
	}
	if r.WasKilled {
		t.Error("process was not killed")
	}
}

func TestExecute_SleepCompletesWithinBounds(t *testing.T) {
	e := newExecutor(t)
	start := time.Now()
	r, err := e.Execute(context.Background(), "sleep 2\nexit 0", script.TypeShell, Context{Timeout: 10 * time.Second})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !r.Success || r.ExitCode != 0 {
		t.Errorf("expected clean exit, got success=%v code=%d", r.Success, r.ExitCode)
	}
	if elapsed < 2*time.Second || elapsed > 10*time.Second {
		t.Errorf("wall time out of bounds: %v", elapsed)
	}
}

func TestExecute_TimeoutKills(t *testing.T) {
	e := newExecutor(t)
	start := time.Now()
	r, err := e.Execute(context.Background(), "sleep 30", script.TypeShell, Context{Timeout: 500 * time.Millisecond})
	if err != nil {
		t.Fatalf("timeout must produce a result, not an error: %v", err)
	}
	if !r.WasKilled {
		t.Error("expected WasKilled=true")
	}
	if r.Success {
		t.Error("killed run cannot be a success")
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("kill took too long: %v", elapsed)
	}
}

func TestExecute_StreamsOutput(t *testing.T) {
	e := newExecutor(t)
	var stream bytes.Buffer
	r, err := e.Execute(context.Background(), "echo streamed", script.TypeShell,
		Context{Timeout: 10 * time.Second, Stdout: &stream})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(stream.String(), "streamed") {
		t.Errorf("streaming writer missed output: %q", stream.String())
	}
	if r.Stdout != stream.String() {
		t.Errorf("captured and streamed output differ: %q vs %q", r.Stdout, stream.String())
	}
}

func TestExecute_SeparatesStderr(t *testing.T) {
	e := newExecutor(t)
	r, err := e.Execute(context.Background(), "echo out\necho err 1>&2", script.TypeShell,
		Context{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(r.Stdout, "out") || strings.Contains(r.Stdout, "err") {
		t.Errorf("stdout wrong: %q", r.Stdout)
	}
	if !strings.Contains(r.Stderr, "err") {
		t.Errorf("stderr wrong: %q", r.Stderr)
	}
}

func TestExecute_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	e := newExecutor(t)
	r, err := e.Execute(context.Background(), "pwd", script.TypeShell,
		Context{Timeout: 10 * time.Second, WorkingDir: dir})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	// Resolve symlinks before comparing (macOS /tmp is a symlink).
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(r.Stdout))
	if got != want {
		t.Errorf("working dir: got %q, want %q", got, want)
	}
}

func TestExecute_Arguments(t *testing.T) {
	e := newExecutor(t)
	r, err := e.Execute(context.Background(), `echo "arg1=$1"`, script.TypeShell,
		Context{Timeout: 10 * time.Second, Args: []string{"value"}})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(r.Stdout, "arg1=value") {
		t.Errorf("argument not passed: %q", r.Stdout)
	}
}

func TestExecute_Environment(t *testing.T) {
	e := newExecutor(t)
	r, err := e.Execute(context.Background(), `echo "env=$SCRIPTBOX_TEST"`, script.TypeShell,
		Context{Timeout: 10 * time.Second, Env: []string{"SCRIPTBOX_TEST=set"}})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(r.Stdout, "env=set") {
		t.Errorf("environment not applied: %q", r.Stdout)
	}
}

func TestExecute_MissingInterpreter(t *testing.T) {
	e := New(&fakeProbe{known: map[string]string{}}, nil)
	_, err := e.Execute(context.Background(), "Write-Host hi", script.TypePowerShell, Context{})
	if err == nil {
		t.Fatal("expected an error when no interpreter resolves")
	}
	var execErr *Error
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *executor.Error, got %T: %v", err, err)
	}
	if execErr.Interpreter != "pwsh" {
		t.Errorf("error should name the preferred interpreter, got %q", execErr.Interpreter)
	}
	if execErr.Suggestion == "" {
		t.Error("expected an install suggestion")
	}
}

func TestExecute_UnknownTypeRefused(t *testing.T) {
	e := newExecutor(t)
	_, err := e.Execute(context.Background(), "???", script.TypeUnknown, Context{})
	if err == nil {
		t.Fatal("unknown type must be refused before spawning")
	}
	var execErr *Error
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *executor.Error, got %T", err)
	}
}

func TestExecute_TempFileCleanedUp(t *testing.T) {
	e := newExecutor(t)
	// The script prints its own path ($0 is the temp file).
	r, err := e.Execute(context.Background(), `echo "$0"`, script.TypeShell, Context{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	path := strings.TrimSpace(r.Stdout)
	if path == "" {
		t.Fatal("script did not report its path")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("temp file %q should be removed after execution", path)
	}
}

func TestExecute_TempFileCleanedUpAfterTimeout(t *testing.T) {
	e := newExecutor(t)
	r, err := e.Execute(context.Background(), "echo \"$0\"\nsleep 30", script.TypeShell,
		Context{Timeout: 500 * time.Millisecond})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !r.WasKilled {
		t.Fatal("expected timeout kill")
	}
	path := strings.TrimSpace(r.Stdout)
	if path == "" {
		t.Skip("no output captured before kill")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("temp file %q should be removed after timeout", path)
	}
}

func TestWriteTempScript_Extension(t *testing.T) {
	path, cleanup, err := writeTempScript("print('x')", script.TypePython)
	if err != nil {
		t.Fatalf("writeTempScript failed: %v", err)
	}
	defer cleanup()
	if !strings.HasSuffix(path, ".py") {
		t.Errorf("temp file should carry the type extension, got %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "print('x')" {
		t.Errorf("temp content wrong: %q err=%v", data, err)
	}
	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cleanup did not remove the file")
	}
}

func TestSystemProbe_CachesLookups(t *testing.T) {
	p := NewSystemProbe()
	first, err := p.Look("sh")
	if err != nil {
		t.Fatalf("sh should exist: %v", err)
	}
	second, err := p.Look("sh")
	if err != nil || second != first {
		t.Errorf("cached lookup differs: %q vs %q (err=%v)", second, first, err)
	}

	if _, err := p.Look("definitely-not-a-real-interpreter"); err == nil {
		t.Error("expected miss for nonexistent binary")
	}
	// Misses are cached too; a second call must also fail.
	if _, err := p.Look("definitely-not-a-real-interpreter"); err == nil {
		t.Error("cached miss lost")
	}
}

func TestBuildArgv(t *testing.T) {
	tests := []struct {
		typ  script.Type
		want []string
	}{
		{script.TypeShell, []string{"/bin/bash", "/tmp/s.sh"}},
		{script.TypePowerShell, []string{"/bin/pwsh", "-NoProfile", "-File", "/tmp/s.sh"}},
		{script.TypeBatch, []string{"/bin/cmd", "/C", "/tmp/s.sh"}},
	}
	for _, tt := range tests {
		interp := tt.want[0]
		got := buildArgv(interp, "/tmp/s.sh", tt.typ, []string{"a"})
		want := append(append([]string{}, tt.want...), "a")
		if strings.Join(got, " ") != strings.Join(want, " ") {
			t.Errorf("%s: argv = %v, want %v", tt.typ, got, want)
		}
	}
}
