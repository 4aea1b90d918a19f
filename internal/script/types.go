// types.go defines the closed enumerations shared across the ingestion and
// execution pipeline: script types, target platforms, and validation levels.
// Every switch over these types in the codebase is expected to be exhaustive;
// the zero values are deliberately invalid so an unset field is caught early.
package script

import "fmt"

// Type classifies a script by the language/interpreter family it targets.
type Type string

// Supported script types. TypeUnknown means the detector could not classify
// the content; downstream components treat it as "cannot auto-execute".
const (
	TypeShell      Type = "shell"
	TypeBatch      Type = "batch"
	TypePowerShell Type = "powershell"
	TypePython     Type = "python"
	TypeNodeJS     Type = "nodejs"
	TypeUnknown    Type = "unknown"
)

// ParseType converts a stored string into a Type.
// Unrecognized values return TypeUnknown and an error.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeShell, TypeBatch, TypePowerShell, TypePython, TypeNodeJS, TypeUnknown:
		return Type(s), nil
	default:
		return TypeUnknown, fmt.Errorf("unrecognized script type: %q", s)
	}
}

// Valid reports whether t is one of the defined script types.
func (t Type) Valid() bool {
	switch t {
	case TypeShell, TypeBatch, TypePowerShell, TypePython, TypeNodeJS, TypeUnknown:
		return true
	}
	return false
}

// Extension returns the file extension (including the dot) used when the
// executor materializes a script of this type to a temp file.
func (t Type) Extension() string {
	switch t {
	case TypeShell:
		return ".sh"
	case TypeBatch:
		return ".bat"
	case TypePowerShell:
		return ".ps1"
	case TypePython:
		return ".py"
	case TypeNodeJS:
		return ".js"
	case TypeUnknown:
		return ".txt"
	}
	return ".txt"
}

// CommentPrefix returns the single-line comment marker for this type.
// Used by the converter when annotating untranslatable lines.
func (t Type) CommentPrefix() string {
	switch t {
	case TypeBatch:
		return "REM "
	case TypeNodeJS:
		return "// "
	case TypeShell, TypePowerShell, TypePython, TypeUnknown:
		return "# "
	}
	return "# "
}

// Platform identifies which operating-system family a script (or variant)
// is written for.
type Platform string

// Supported platforms.
const (
	PlatformWindows       Platform = "windows"
	PlatformUnix          Platform = "unix"
	PlatformCrossPlatform Platform = "cross-platform"
)

// ParsePlatform converts a stored string into a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformWindows, PlatformUnix, PlatformCrossPlatform:
		return Platform(s), nil
	default:
		return "", fmt.Errorf("unrecognized platform: %q", s)
	}
}

// Valid reports whether p is one of the defined platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformWindows, PlatformUnix, PlatformCrossPlatform:
		return true
	}
	return false
}

// ValidationLevel controls how strictly the security validator treats
// suspicious content on add/update.
type ValidationLevel string

// Validation levels. None skips the security scans entirely (sanitization
// still runs), Basic reports findings as warnings, Strict turns them into
// errors that block persistence.
const (
	ValidationNone   ValidationLevel = "none"
	ValidationBasic  ValidationLevel = "basic"
	ValidationStrict ValidationLevel = "strict"
)

// ParseValidationLevel converts a config/flag string into a ValidationLevel.
func ParseValidationLevel(s string) (ValidationLevel, error) {
	switch ValidationLevel(s) {
	case ValidationNone, ValidationBasic, ValidationStrict:
		return ValidationLevel(s), nil
	default:
		return "", fmt.Errorf("unrecognized validation level: %q (valid: none, basic, strict)", s)
	}
}

// Valid reports whether v is one of the defined validation levels.
func (v ValidationLevel) Valid() bool {
	switch v {
	case ValidationNone, ValidationBasic, ValidationStrict:
		return true
	}
	return false
}
