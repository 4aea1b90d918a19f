// record.go defines the stored script record and its metadata.
// A Script holds the canonical text plus up to three derived platform
// variants; Metadata is replaced wholesale on update rather than patched.
package script

import "time"

// Script is the persisted record for one registered script.
// Name is the unique key. Original is always populated; the derived variant
// fields may be empty, in which case resolution falls back to Original.
type Script struct {
	// ID is a stable identifier assigned by the store on first add.
	ID string `json:"id"`

	// Name is the unique, user-chosen key the script is registered under.
	Name string `json:"name"`

	// Original is the canonical script text exactly as ingested
	// (after sanitization and interactive-input rewriting). Never empty.
	Original string `json:"script_original"`

	// Windows is the derived Windows-flavored variant, if one was produced.
	Windows string `json:"script_windows,omitempty"`

	// Unix is the derived Unix-flavored variant, if one was produced.
	Unix string `json:"script_unix,omitempty"`

	// CrossPlatform is the derived best-effort portable variant, if any.
	CrossPlatform string `json:"script_cross_platform,omitempty"`

	// Metadata describes how the script was classified and validated.
	Metadata Metadata `json:"metadata"`
}

// Metadata describes a registered script. Instances are immutable once
// constructed; updates build a new Metadata preserving CreatedAt.
type Metadata struct {
	// Type is the detected (or overridden) script type.
	Type Type `json:"script_type"`

	// OriginalPlatform is the platform the canonical text was written for.
	OriginalPlatform Platform `json:"original_platform"`

	// ValidationLevel records how strictly the script was validated on ingest.
	ValidationLevel ValidationLevel `json:"validation_level"`

	// Tags are optional free-form labels for listing/filtering.
	Tags []string `json:"tags,omitempty"`

	// Alias is an optional short name accepted by lookup alongside Name.
	Alias string `json:"alias,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasVariant reports whether the script stores a derived variant for p.
func (s *Script) HasVariant(p Platform) bool {
	switch p {
	case PlatformWindows:
		return s.Windows != ""
	case PlatformUnix:
		return s.Unix != ""
	case PlatformCrossPlatform:
		return s.CrossPlatform != ""
	}
	return false
}
