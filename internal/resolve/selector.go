// Package resolve picks which stored variant of a script to execute.
// Precedence: an explicit flag naming a variant that exists, then
// preferOriginal, then the host platform's variant, then the cross-platform
// variant, then the original text. The original is never empty, so
// resolution always produces runnable text.
package resolve

import "github.com/davidhurst/scriptbox/internal/script"

// Flags are the user-supplied resolution overrides. At most one force flag
// is expected; when several are set the windows/unix/cross order applies.
type Flags struct {
	PreferOriginal     bool
	ForceWindows       bool
	ForceUnix          bool
	ForceCrossPlatform bool
}

// Selection is the resolved execution input: the text to run and the type
// to run it as.
type Selection struct {
	Text string
	Type script.Type

	// Variant names which stored field was chosen, for logging.
	Variant string
}

// Select resolves s against flags and the current host platform.
// The returned text is never empty for a well-formed record.
func Select(s *script.Script, flags Flags, host script.Platform) Selection {
	base := s.Metadata.Type

	switch {
	case flags.ForceWindows && s.Windows != "":
		return Selection{Text: s.Windows, Type: variantType(base, script.PlatformWindows), Variant: "windows"}
	case flags.ForceUnix && s.Unix != "":
		return Selection{Text: s.Unix, Type: variantType(base, script.PlatformUnix), Variant: "unix"}
	case flags.ForceCrossPlatform && s.CrossPlatform != "":
		return Selection{Text: s.CrossPlatform, Type: base, Variant: "cross-platform"}
	case flags.PreferOriginal:
		return Selection{Text: s.Original, Type: base, Variant: "original"}
	}

	switch host {
	case script.PlatformWindows:
		if s.Windows != "" {
			return Selection{Text: s.Windows, Type: variantType(base, script.PlatformWindows), Variant: "windows"}
		}
	case script.PlatformUnix:
		if s.Unix != "" {
			return Selection{Text: s.Unix, Type: variantType(base, script.PlatformUnix), Variant: "unix"}
		}
	case script.PlatformCrossPlatform:
		// A host is never cross-platform; fall through to the variants below.
	}

	if s.CrossPlatform != "" {
		return Selection{Text: s.CrossPlatform, Type: base, Variant: "cross-platform"}
	}
	return Selection{Text: s.Original, Type: base, Variant: "original"}
}

// variantType maps the canonical type to the type of a derived variant:
// shell converts to PowerShell on Windows and PowerShell/batch convert to
// shell on Unix. Portable types execute as themselves everywhere.
func variantType(base script.Type, target script.Platform) script.Type {
	switch target {
	case script.PlatformWindows:
		switch base {
		case script.TypeShell:
			return script.TypePowerShell
		case script.TypeBatch, script.TypePowerShell, script.TypePython, script.TypeNodeJS, script.TypeUnknown:
			return base
		}
	case script.PlatformUnix:
		switch base {
		case script.TypePowerShell, script.TypeBatch:
			return script.TypeShell
		case script.TypeShell, script.TypePython, script.TypeNodeJS, script.TypeUnknown:
			return base
		}
	case script.PlatformCrossPlatform:
		return base
	}
	return base
}
