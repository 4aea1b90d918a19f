// add.go implements script registration and standalone validation. Both run
// the same ingestion pipeline; only add persists the result.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davidhurst/scriptbox/internal/pipeline"
	"github.com/davidhurst/scriptbox/internal/script"
)

var (
	addFile        string
	addPlatform    string
	addValidation  string
	addTags        []string
	addAlias       string
	allowNetwork   bool
	allowSystemMod bool
)

var errValidationBlocked = errors.New("validation failed, script not registered")

var addCmd = &cobra.Command{
	Use:   "add <name> [file]",
	Short: "Register a script under a name",
	Long: `Register a script under a short name. The script text is read from
the given file, from --file, or from stdin when neither is provided.
The script is validated, interactive prompts are rewritten to accept
command-line arguments, and platform variants are generated before the
record is stored.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		path := addFile
		if len(args) == 2 {
			path = args[1]
		}

		content, filename, err := readScriptInput(path)
		if err != nil {
			return err
		}

		opts, err := ingestOptions(filename)
		if err != nil {
			return err
		}

		r := pipeline.New(logger).Ingest(name, content, opts)
		fmt.Print(pipeline.FormatSummary(r.Validation, r.Warnings))

		if r.Blocked {
			return errValidationBlocked
		}

		r.Record.Metadata.Tags = addTags
		r.Record.Metadata.Alias = addAlias

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Put(r.Record); err != nil {
			return err
		}

		logger.Info("registered script",
			"name", name, "type", string(r.Detection.Type),
			"platform", string(r.Record.Metadata.OriginalPlatform))
		fmt.Printf("Registered %q (%s)\n", name, r.Detection.Type)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a script without registering it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := addFile
		if len(args) == 1 {
			path = args[0]
		}

		content, filename, err := readScriptInput(path)
		if err != nil {
			return err
		}

		opts, err := ingestOptions(filename)
		if err != nil {
			return err
		}

		r := pipeline.New(logger).Ingest("(unsaved)", content, opts)
		fmt.Printf("Type: %s\n", r.Detection.Type)
		fmt.Print(pipeline.FormatSummary(r.Validation, r.Warnings))

		if r.Blocked {
			return errValidationBlocked
		}
		return nil
	},
}

// readScriptInput reads script text from path, or from stdin when path is
// empty. The returned filename feeds extension-based type detection.
func readScriptInput(path string) (content, filename string, err error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read script file: %w", err)
	}
	return string(data), filepath.Base(path), nil
}

// ingestOptions builds pipeline options from flags, falling back to the
// configured defaults.
func ingestOptions(filename string) (pipeline.Options, error) {
	level := cfg.Level()
	if addValidation != "" {
		parsed, err := script.ParseValidationLevel(addValidation)
		if err != nil {
			return pipeline.Options{}, err
		}
		level = parsed
	}

	var platform script.Platform
	if addPlatform != "" {
		parsed, err := script.ParsePlatform(addPlatform)
		if err != nil {
			return pipeline.Options{}, err
		}
		platform = parsed
	}

	return pipeline.Options{
		Filename:                filename,
		Platform:                platform,
		Level:                   level,
		AllowNetworkAccess:      allowNetwork || cfg.AllowNetworkAccess,
		AllowSystemModification: allowSystemMod || cfg.AllowSystemModification,
	}, nil
}

func init() {
	for _, c := range []*cobra.Command{addCmd, validateCmd} {
		c.Flags().StringVar(&addFile, "file", "", "read script text from this file")
		c.Flags().StringVar(&addPlatform, "platform", "", "original platform: windows, unix, or cross-platform")
		c.Flags().StringVar(&addValidation, "validation", "", "validation level: none, basic, or strict")
		c.Flags().BoolVar(&allowNetwork, "allow-network", false, "suppress network-access warnings")
		c.Flags().BoolVar(&allowSystemMod, "allow-system", false, "suppress system-modification warnings")
	}
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "tags to attach to the script")
	addCmd.Flags().StringVar(&addAlias, "alias", "", "alternate name the script can be looked up by")

	rootCmd.AddCommand(addCmd, validateCmd)
}
