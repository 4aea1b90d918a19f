// converter_test.go tests directional rule substitution, round-tripping,
// the complex-line warning contract, and cross-platform annotation.
package convert

import (
	"strings"
	"testing"

	"github.com/davidhurst/scriptbox/internal/script"
)

func TestConvert_MkdirRoundTrip(t *testing.T) {
	v := Convert("mkdir -p foo", script.TypeShell, script.PlatformUnix)
	if !strings.Contains(v.Windows, "New-Item") || !strings.Contains(v.Windows, "Directory") {
		t.Fatalf("mkdir -p should become New-Item Directory, got %q", v.Windows)
	}
	if !strings.Contains(v.Windows, "-Force") {
		t.Errorf("-p should map to -Force, got %q", v.Windows)
	}

	back := Convert(v.Windows, script.TypePowerShell, script.PlatformWindows)
	if !strings.Contains(back.Unix, "mkdir") {
		t.Errorf("converting back should contain mkdir, got %q", back.Unix)
	}
}

func TestConvert_Rules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		dir  direction
		want string
	}{
		{"touch", "touch marker.txt", unixToWindows, `New-Item -ItemType File -Force -Path "marker.txt"`},
		{"echo", "echo hello world", unixToWindows, "Write-Output hello world"},
		{"export", "export BUILD_ENV=release", unixToWindows, `$env:BUILD_ENV="release"`},
		{"env back", `$env:BUILD_ENV = "release"`, windowsToUnix, "export BUILD_ENV=release"},
		{"write-host back", "Write-Host hello", windowsToUnix, "echo hello"},
		{"cp", "cp a.txt b.txt", unixToWindows, `Copy-Item -Path "a.txt" -Destination "b.txt"`},
		{"pwd", "pwd", unixToWindows, "Get-Location"},
		{"sleep", "sleep 5", unixToWindows, "Start-Sleep -Seconds 5"},
		{"indent preserved", "    pwd", unixToWindows, "    Get-Location"},
		{"unmatched passes through", "my-custom-tool --flag", unixToWindows, "my-custom-tool --flag"},
	}

	for _, tt := range tests {
		var warns []string
		got := convertLines(tt.in, tt.dir, &warns)
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestConvert_ComplexLineWarnsAndPassesThrough(t *testing.T) {
	in := "cat access.log | grep ERROR"
	v := Convert(in, script.TypeShell, script.PlatformUnix)
	if v.Windows != in {
		t.Errorf("complex line must pass through unchanged, got %q", v.Windows)
	}
	if len(v.Warnings) == 0 {
		t.Fatal("expected a complexity warning")
	}
	if !strings.Contains(v.Warnings[0], "line 1") {
		t.Errorf("warning should name the line: %v", v.Warnings)
	}
}

func TestConvert_ControlFlowNotGuessed(t *testing.T) {
	in := "if [ -f x ]; then\n  echo found\nfi"
	v := Convert(in, script.TypeShell, script.PlatformUnix)
	if !strings.Contains(strings.Join(v.Warnings, " "), "complex") {
		t.Errorf("control flow should warn, got %v", v.Warnings)
	}
	// The if line itself is untouched.
	if !strings.HasPrefix(v.Windows, "if [ -f x ]; then") {
		t.Errorf("control flow must not be translated, got %q", v.Windows)
	}
}

func TestConvert_CrossPlatformAnnotation(t *testing.T) {
	in := "echo starting\nNew-Item -ItemType Directory -Path build\necho done"
	v := Convert(in, script.TypePowerShell, script.PlatformWindows)

	lines := strings.Split(v.CrossPlatform, "\n")
	if lines[0] != "echo starting" || lines[2] != "echo done" {
		t.Errorf("alias-safe lines must pass through: %q", v.CrossPlatform)
	}
	if !strings.HasPrefix(lines[1], "# Output: ") {
		t.Errorf("untranslatable line must be annotated: %q", lines[1])
	}
	if !strings.Contains(strings.Join(v.Warnings, " "), "annotated") {
		t.Errorf("annotation must be reported: %v", v.Warnings)
	}
}

func TestConvert_CommentsAndBlanksPreserved(t *testing.T) {
	in := "# setup\n\necho hi"
	var warns []string
	got := convertLines(in, unixToWindows, &warns)
	if !strings.HasPrefix(got, "# setup\n\n") {
		t.Errorf("comments and blanks must survive: %q", got)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
}

func TestConvert_PortableTypesNotConverted(t *testing.T) {
	for _, typ := range []script.Type{script.TypePython, script.TypeNodeJS} {
		v := Convert("print('hi')", typ, script.PlatformCrossPlatform)
		if v.Windows != "" || v.Unix != "" {
			t.Errorf("%s: no directional variants expected", typ)
		}
		if v.CrossPlatform == "" {
			t.Errorf("%s: portable scripts are their own cross-platform variant", typ)
		}
	}
}

func TestConvert_UnknownTypeNoVariants(t *testing.T) {
	v := Convert("???", script.TypeUnknown, script.PlatformUnix)
	if v.Windows != "" || v.Unix != "" || v.CrossPlatform != "" {
		t.Errorf("unknown type must derive nothing: %+v", v)
	}
}
