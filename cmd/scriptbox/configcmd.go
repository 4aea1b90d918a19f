// configcmd.go implements the config subcommands: showing the effective
// configuration and persisting individual settings back to the YAML file.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/davidhurst/scriptbox/internal/config"
	"github.com/davidhurst/scriptbox/internal/script"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change scriptbox settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("config file:                %s\n", configPath)
		fmt.Printf("store_path:                 %s\n", cfg.StorePath)
		fmt.Printf("log_level:                  %s\n", cfg.LogLevel)
		fmt.Printf("validation_level:           %s\n", cfg.ValidationLevel)
		fmt.Printf("allow_network_access:       %t\n", cfg.AllowNetworkAccess)
		fmt.Printf("allow_system_modification:  %t\n", cfg.AllowSystemModification)
		fmt.Printf("timeout_seconds:            %d\n", cfg.TimeoutSeconds)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value and save it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "store_path":
			cfg.StorePath = value
		case "log_level":
			cfg.LogLevel = value
		case "validation_level":
			if _, err := script.ParseValidationLevel(value); err != nil {
				return err
			}
			cfg.ValidationLevel = value
		case "allow_network_access", "allow_system_modification":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s expects true or false: %w", key, err)
			}
			if key == "allow_network_access" {
				cfg.AllowNetworkAccess = b
			} else {
				cfg.AllowSystemModification = b
			}
		case "timeout_seconds":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return config.ErrInvalidTimeout
			}
			cfg.TimeoutSeconds = n
		default:
			return fmt.Errorf("unrecognized config key: %q", key)
		}

		if err := config.Save(configPath, cfg); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
