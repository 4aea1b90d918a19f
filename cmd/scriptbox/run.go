// run.go implements script execution: variant resolution against the host
// platform, interpreter spawn with streaming output, and exit-code
// propagation so scriptbox can stand in for the script in shell pipelines.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidhurst/scriptbox/internal/executor"
	"github.com/davidhurst/scriptbox/internal/platform"
	"github.com/davidhurst/scriptbox/internal/resolve"
)

var (
	runOriginal bool
	runWindows  bool
	runUnix     bool
	runCross    bool
	runTimeout  int
	runWorkdir  string
	runEnv      []string
)

var runCmd = &cobra.Command{
	Use:   "run <name> [-- args...]",
	Short: "Execute a registered script",
	Long: `Execute a registered script. The variant matching the host platform is
chosen automatically; --original, --windows, --unix, and --cross-platform
override the choice. Arguments after -- are passed to the script.
scriptbox exits with the script's own exit code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.Get(args[0])
		if err != nil {
			return err
		}

		sel := resolve.Select(rec, resolve.Flags{
			PreferOriginal:     runOriginal,
			ForceWindows:       runWindows,
			ForceUnix:          runUnix,
			ForceCrossPlatform: runCross,
		}, platform.Current())
		logger.Debug("resolved variant",
			"name", rec.Name, "variant", sel.Variant, "type", string(sel.Type))

		timeout := time.Duration(runTimeout) * time.Second
		if runTimeout == 0 {
			timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}

		runner := executor.New(nil, logger)
		result, err := runner.Execute(cmd.Context(), sel.Text, sel.Type, executor.Context{
			WorkingDir: runWorkdir,
			Args:       args[1:],
			Env:        runEnv,
			Timeout:    timeout,
			Stdout:     os.Stdout,
			Stderr:     os.Stderr,
		})
		if err != nil {
			return err
		}

		logger.Info("script finished",
			"name", rec.Name, "exit_code", result.ExitCode,
			"duration_ms", result.DurationMs(), "killed", result.WasKilled)

		if result.WasKilled {
			fmt.Fprintf(os.Stderr, "scriptbox: %q killed after %s timeout\n", rec.Name, timeout)
		}
		if !result.Success {
			// Mirror the script's exit code; the store must be released first
			// because os.Exit skips deferred calls.
			s.Close()
			code := result.ExitCode
			if code < 0 {
				code = 1
			}
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runOriginal, "original", false, "run the original text, skipping variant resolution")
	runCmd.Flags().BoolVar(&runWindows, "windows", false, "run the Windows variant")
	runCmd.Flags().BoolVar(&runUnix, "unix", false, "run the Unix variant")
	runCmd.Flags().BoolVar(&runCross, "cross-platform", false, "run the cross-platform variant")
	runCmd.Flags().IntVar(&runTimeout, "timeout", 0, "execution timeout in seconds (0 = configured default)")
	runCmd.Flags().StringVar(&runWorkdir, "workdir", "", "working directory for the script")
	runCmd.Flags().StringArrayVar(&runEnv, "env", nil, "extra KEY=value environment entries (repeatable)")

	rootCmd.AddCommand(runCmd)
}
