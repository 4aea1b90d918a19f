// Package pipeline orchestrates script ingestion: type detection, security
// validation, interactive-input rewriting, and platform conversion, in that
// order. Each stage consumes the previous stage's output; the result bundles
// the persistable record with everything the caller needs to display.
package pipeline

import (
	"log/slog"

	"github.com/davidhurst/scriptbox/internal/convert"
	"github.com/davidhurst/scriptbox/internal/detect"
	"github.com/davidhurst/scriptbox/internal/rewrite"
	"github.com/davidhurst/scriptbox/internal/script"
	"github.com/davidhurst/scriptbox/internal/validate"
)

// Options controls one ingestion run.
type Options struct {
	// Filename, when known, provides the extension hint for type detection.
	Filename string

	// Platform overrides the inferred original platform when set.
	Platform script.Platform

	// Level is the validation strictness. ValidationNone skips the security
	// and structural scans entirely (sanitization still runs).
	Level script.ValidationLevel

	// AllowNetworkAccess and AllowSystemModification are passed through to
	// the validator.
	AllowNetworkAccess      bool
	AllowSystemModification bool
}

// Result is the outcome of ingesting one script.
type Result struct {
	// Record is the persistable script record. Nil when Blocked.
	Record *script.Script

	// Detection is the type classification used throughout the run.
	Detection detect.Detection

	// Validation is the full validation outcome for display.
	Validation validate.Result

	// Warnings aggregates rewrite and conversion warnings (validation
	// warnings live in Validation).
	Warnings []string

	// Blocked is true when validation errors prevent persistence.
	Blocked bool
}

// Ingestor runs the ingestion pipeline.
type Ingestor struct {
	logger *slog.Logger
}

// New creates an Ingestor. A nil logger uses the process default.
func New(logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{logger: logger}
}

// Ingest processes raw script text into a persistable record.
// Validation errors never abort the pipeline early; the full Result is
// always populated so every finding can be shown at once. Blocked reports
// whether the caller must refuse to persist.
func (in *Ingestor) Ingest(name, content string, opts Options) *Result {
	r := &Result{}

	r.Detection = detect.Detect(content, opts.Filename)
	in.logger.Debug("detected script type",
		"name", name, "type", string(r.Detection.Type), "interpreters", r.Detection.Interpreters)

	if opts.Level == script.ValidationNone {
		r.Validation = validate.Result{IsValid: true, Sanitized: validate.Sanitize(content)}
	} else {
		r.Validation = validate.Validate(content, r.Detection.Type, validate.Options{
			Strict:                  opts.Level == script.ValidationStrict,
			AllowNetworkAccess:      opts.AllowNetworkAccess,
			AllowSystemModification: opts.AllowSystemModification,
		})
	}

	// Structural and strict-mode security errors block persistence; the
	// pipeline still finishes so the caller can report everything found.
	r.Blocked = !r.Validation.IsValid

	rewritten := rewrite.Rewrite(r.Validation.Sanitized, r.Detection.Type)
	r.Warnings = append(r.Warnings, rewritten.Warnings...)
	if rewritten.Changed {
		in.logger.Info("rewrote interactive input", "name", name)
	}

	originalPlatform := opts.Platform
	if originalPlatform == "" {
		originalPlatform = inferPlatform(r.Detection.Type)
	}

	variants := convert.Convert(rewritten.Script, r.Detection.Type, originalPlatform)
	r.Warnings = append(r.Warnings, variants.Warnings...)

	if r.Blocked {
		return r
	}

	r.Record = &script.Script{
		Name:          name,
		Original:      rewritten.Script,
		Windows:       variants.Windows,
		Unix:          variants.Unix,
		CrossPlatform: variants.CrossPlatform,
		Metadata: script.Metadata{
			Type:             r.Detection.Type,
			OriginalPlatform: originalPlatform,
			ValidationLevel:  opts.Level,
		},
	}
	return r
}

// inferPlatform maps a script type to the platform its canonical text was
// most likely written for.
func inferPlatform(t script.Type) script.Platform {
	switch t {
	case script.TypeBatch, script.TypePowerShell:
		return script.PlatformWindows
	case script.TypePython, script.TypeNodeJS:
		return script.PlatformCrossPlatform
	case script.TypeShell, script.TypeUnknown:
		return script.PlatformUnix
	}
	return script.PlatformUnix
}
