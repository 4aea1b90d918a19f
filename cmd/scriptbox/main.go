// main.go is the scriptbox entry point: root command wiring, configuration
// loading, and logger setup shared by every subcommand.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/davidhurst/scriptbox/internal/config"
	"github.com/davidhurst/scriptbox/internal/logging"
	"github.com/davidhurst/scriptbox/internal/store"
	"github.com/davidhurst/scriptbox/internal/version"
)

var (
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scriptbox",
	Short: "Register, validate, and run scripts across platforms",
	Long: `scriptbox registers scripts under short names, validates them for
dangerous constructs, rewrites interactive prompts into command-line
arguments, and generates platform-specific variants so a script written
on one operating system can run on another.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		logger = logging.SetupLogger(level)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to the config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}

// openStore opens the configured script database. Callers must Close it.
func openStore() (*store.Store, error) {
	s, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", cfg.StorePath, err)
	}
	return s, nil
}
