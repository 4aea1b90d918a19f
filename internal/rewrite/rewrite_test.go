// rewrite_test.go tests interactive-input rewriting: parameter synthesis,
// guard wrapping, idempotence, the path-default heuristic, and the
// ambiguity skip.
package rewrite

import (
	"strings"
	"testing"

	"github.com/davidhurst/scriptbox/internal/script"
)

func TestRewrite_PowerShellBasic(t *testing.T) {
	in := "$name = Read-Host \"Enter your name\"\nWrite-Host \"Hello $name\""
	r := Rewrite(in, script.TypePowerShell)

	if !r.Changed {
		t.Fatal("expected a rewrite")
	}
	if !strings.HasPrefix(r.Script, "param(") {
		t.Errorf("param block must be prepended, got:\n%s", r.Script)
	}
	if !strings.Contains(r.Script, "[string]$name = $null") {
		t.Errorf("missing parameter declaration:\n%s", r.Script)
	}
	if !strings.Contains(r.Script, `if (-not $name) { $name = Read-Host "Enter your name" }`) {
		t.Errorf("original statement must be preserved inside the guard:\n%s", r.Script)
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != Warning {
		t.Errorf("expected single conversion warning, got %v", r.Warnings)
	}
}

func TestRewrite_PowerShellForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // variable expected in the param block
	}{
		{"bare", "$answer = Read-Host", "answer"},
		{"with prompt", "$answer = Read-Host \"pick one\"", "answer"},
		{"no spaces", "$answer=Read-Host\"pick one\"", "answer"},
		{"prompt parameter", "$answer = Read-Host -Prompt \"pick one\"", "answer"},
		{"digits and underscores", "$build_v2 = Read-Host \"version\"", "build_v2"},
	}

	for _, tt := range tests {
		r := Rewrite(tt.in, script.TypePowerShell)
		if !r.Changed {
			t.Errorf("%s: expected a rewrite", tt.name)
			continue
		}
		if !strings.Contains(r.Script, "[string]$"+tt.want) {
			t.Errorf("%s: missing declaration for %s:\n%s", tt.name, tt.want, r.Script)
		}
	}
}

func TestRewrite_PowerShellLineContinuation(t *testing.T) {
	in := "$city = Read-Host `\n    \"Which city\"\nWrite-Host $city"
	r := Rewrite(in, script.TypePowerShell)
	if !r.Changed {
		t.Fatal("expected a rewrite")
	}
	if !strings.Contains(r.Script, "if (-not $city) {") {
		t.Errorf("continuation statement should be block-wrapped:\n%s", r.Script)
	}
	// The original continuation lines survive verbatim inside the block.
	if !strings.Contains(r.Script, "$city = Read-Host `") || !strings.Contains(r.Script, "\"Which city\"") {
		t.Errorf("original lines must be preserved:\n%s", r.Script)
	}
}

func TestRewrite_DistinctVariableCounts(t *testing.T) {
	// Three reads, two distinct variables: two declarations, three guards.
	in := strings.Join([]string{
		"$user = Read-Host \"user\"",
		"$pass = Read-Host \"pass\"",
		"$user = Read-Host \"user again\"",
	}, "\n")
	r := Rewrite(in, script.TypePowerShell)

	if got := strings.Count(r.Script, "[string]$"); got != 2 {
		t.Errorf("expected 2 parameter declarations, got %d:\n%s", got, r.Script)
	}
	if got := strings.Count(r.Script, "if (-not $"); got != 3 {
		t.Errorf("expected 3 guards, got %d:\n%s", got, r.Script)
	}
	// First-seen order is preserved in the param block.
	if strings.Index(r.Script, "$user") > strings.Index(r.Script, "$pass") {
		t.Errorf("declarations out of order:\n%s", r.Script)
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	inputs := map[script.Type]string{
		script.TypePowerShell: "$name = Read-Host \"name\"",
		script.TypeShell:      "#!/bin/bash\nread -p \"name: \" name\necho \"$name\"",
		script.TypePython:     "name = input(\"name: \")\nprint(name)",
		script.TypeNodeJS:     "const name = prompt(\"name: \");\nconsole.log(name);",
	}

	for typ, in := range inputs {
		first := Rewrite(in, typ)
		if !first.Changed {
			t.Errorf("%s: expected first pass to rewrite", typ)
			continue
		}
		second := Rewrite(first.Script, typ)
		if second.Changed {
			t.Errorf("%s: second pass must be a no-op, got:\n%s", typ, second.Script)
		}
		if second.Script != first.Script {
			t.Errorf("%s: second pass altered text", typ)
		}
	}
}

func TestRewrite_ExistingParamBlockDisables(t *testing.T) {
	in := "param(\n    [string]$name\n)\n$other = Read-Host \"other\""
	r := Rewrite(in, script.TypePowerShell)
	if r.Changed {
		t.Errorf("existing param block must disable rewriting:\n%s", r.Script)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("no warnings expected when nothing was rewritten: %v", r.Warnings)
	}
}

func TestRewrite_PathDefaultHeuristic(t *testing.T) {
	tests := []struct {
		variable string
		wantCwd  bool
	}{
		{"targetPath", true},
		{"outputDir", true},
		{"projectRoot", true},
		{"userName", false},
	}

	for _, tt := range tests {
		r := Rewrite("$"+tt.variable+" = Read-Host \"x\"", script.TypePowerShell)
		hasCwd := strings.Contains(r.Script, "(Get-Location).Path")
		if hasCwd != tt.wantCwd {
			t.Errorf("%s: cwd default = %v, want %v:\n%s", tt.variable, hasCwd, tt.wantCwd, r.Script)
		}
	}
}

func TestRewrite_AmbiguousOccurrenceUntouched(t *testing.T) {
	// Read-Host inside a function expression does not match the assignment
	// form; the script is left exactly as-is.
	in := "function Ask { return (Read-Host \"q\") }\nAsk"
	r := Rewrite(in, script.TypePowerShell)
	if r.Changed {
		t.Errorf("ambiguous Read-Host must not be rewritten:\n%s", r.Script)
	}
	if r.Script != in {
		t.Error("script must be byte-for-byte unchanged")
	}
}

func TestRewrite_MixedAmbiguousAndPlain(t *testing.T) {
	// The plain assignment is rewritten; the wrapped one stays untouched.
	in := "$a = Read-Host \"a\"\nfunction Ask { return (Read-Host \"q\") }"
	r := Rewrite(in, script.TypePowerShell)
	if !r.Changed {
		t.Fatal("expected the plain assignment to be rewritten")
	}
	if !strings.Contains(r.Script, "function Ask { return (Read-Host \"q\") }") {
		t.Errorf("wrapped occurrence must survive unmodified:\n%s", r.Script)
	}
}

func TestRewrite_Shell(t *testing.T) {
	in := "#!/bin/bash\nread -p \"Name: \" name\necho \"hi $name\""
	r := Rewrite(in, script.TypeShell)
	if !r.Changed {
		t.Fatal("expected a rewrite")
	}
	if !strings.Contains(r.Script, `name="${1:-}"`) {
		t.Errorf("missing positional assignment:\n%s", r.Script)
	}
	if !strings.Contains(r.Script, `if [ -z "$name" ]; then read -p "Name: " name; fi`) {
		t.Errorf("missing guard preserving the read:\n%s", r.Script)
	}
	// Shebang stays first.
	if !strings.HasPrefix(r.Script, "#!/bin/bash\n") {
		t.Errorf("shebang must remain the first line:\n%s", r.Script)
	}
}

func TestRewrite_ShellPathDefault(t *testing.T) {
	in := "#!/bin/sh\nread installDir"
	r := Rewrite(in, script.TypeShell)
	if !strings.Contains(r.Script, `installDir="${1:-$(pwd)}"`) {
		t.Errorf("path-like shell variable should default to pwd:\n%s", r.Script)
	}
}

func TestRewrite_ShellExistingArgsDisable(t *testing.T) {
	in := "#!/bin/bash\ntarget=\"$1\"\nread extra"
	r := Rewrite(in, script.TypeShell)
	if r.Changed {
		t.Errorf("positional usage must disable rewriting:\n%s", r.Script)
	}
}

func TestRewrite_Python(t *testing.T) {
	in := "name = input(\"Name: \")\nprint(name)"
	r := Rewrite(in, script.TypePython)
	if !r.Changed {
		t.Fatal("expected a rewrite")
	}
	if !strings.Contains(r.Script, "name = sys.argv[1] if len(sys.argv) > 1 else None") {
		t.Errorf("missing argv assignment:\n%s", r.Script)
	}
	if !strings.Contains(r.Script, "if name is None:\n    name = input(\"Name: \")") {
		t.Errorf("missing guard:\n%s", r.Script)
	}
	if !strings.Contains(r.Script, "import sys") {
		t.Errorf("missing sys import:\n%s", r.Script)
	}
}

func TestRewrite_PythonIndentedInputUntouched(t *testing.T) {
	in := "def ask():\n    name = input(\"Name: \")\n    return name"
	r := Rewrite(in, script.TypePython)
	if r.Changed {
		t.Errorf("indented input() is ambiguous and must stay untouched:\n%s", r.Script)
	}
}

func TestRewrite_Node(t *testing.T) {
	in := "const city = prompt(\"City: \");\nconsole.log(city);"
	r := Rewrite(in, script.TypeNodeJS)
	if !r.Changed {
		t.Fatal("expected a rewrite")
	}
	if !strings.Contains(r.Script, "let city = process.argv[2] ?? null;") {
		t.Errorf("missing argv declaration:\n%s", r.Script)
	}
	if !strings.Contains(r.Script, "if (city === null) { city = prompt(\"City: \"); }") {
		t.Errorf("missing guard:\n%s", r.Script)
	}
}

func TestRewrite_UnsupportedTypesUntouched(t *testing.T) {
	for _, typ := range []script.Type{script.TypeBatch, script.TypeUnknown} {
		in := "set /p name=Enter name: "
		r := Rewrite(in, typ)
		if r.Changed || r.Script != in {
			t.Errorf("%s: must not rewrite", typ)
		}
	}
}
