// manage.go implements the store housekeeping commands: list, show, remove,
// clear, and the host info report.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/davidhurst/scriptbox/internal/platform"
	"github.com/davidhurst/scriptbox/internal/script"
)

var (
	showVariant string
	clearForce  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered scripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.List()
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No scripts registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tPLATFORM\tVARIANTS\tTAGS\tUPDATED")
		for _, rec := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				rec.Name,
				rec.Metadata.Type,
				rec.Metadata.OriginalPlatform,
				variantSummary(rec),
				strings.Join(rec.Metadata.Tags, ","),
				rec.Metadata.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a registered script's text and metadata",
	Args:  cobra.ExactArgs(1),
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

		text := rec.Original
		switch showVariant {
		case "":
		case "windows":
			text = rec.Windows
		case "unix":
			text = rec.Unix
		case "cross-platform":
			text = rec.CrossPlatform
		default:
			return fmt.Errorf("unrecognized variant: %q (valid: windows, unix, cross-platform)", showVariant)
		}
		if text == "" {
			return fmt.Errorf("script %q has no %s variant", rec.Name, showVariant)
		}

		fmt.Printf("Name:      %s\n", rec.Name)
		if rec.Metadata.Alias != "" {
			fmt.Printf("Alias:     %s\n", rec.Metadata.Alias)
		}
		fmt.Printf("Type:      %s\n", rec.Metadata.Type)
		fmt.Printf("Platform:  %s\n", rec.Metadata.OriginalPlatform)
		fmt.Printf("Validated: %s\n", rec.Metadata.ValidationLevel)
		if len(rec.Metadata.Tags) > 0 {
			fmt.Printf("Tags:      %s\n", strings.Join(rec.Metadata.Tags, ", "))
		}
		fmt.Printf("Variants:  %s\n", variantSummary(rec))
		fmt.Printf("Created:   %s\n", rec.Metadata.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated:   %s\n\n", rec.Metadata.UpdatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println(text)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a registered script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Remove(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %q\n", args[0])
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every registered script",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearForce {
			return fmt.Errorf("clear removes all scripts; pass --force to confirm")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Clear(); err != nil {
			return err
		}
		fmt.Println("All scripts removed.")
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show host platform details used for variant resolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		hi, err := platform.Info(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Resolves:  %s variants\n", platform.Current())
		fmt.Printf("OS:        %s/%s\n", hi.OS, hi.Arch)
		if hi.Platform != "" {
			fmt.Printf("Platform:  %s %s\n", hi.Platform, hi.PlatformVersion)
		}
		if hi.KernelVersion != "" {
			fmt.Printf("Kernel:    %s\n", hi.KernelVersion)
		}
		if hi.Hostname != "" {
			fmt.Printf("Hostname:  %s\n", hi.Hostname)
		}
		return nil
	},
}

// variantSummary lists which variants a record carries, e.g.
// "original,windows,cross-platform".
func variantSummary(rec *script.Script) string {
	parts := []string{"original"}
	if rec.Windows != "" {
		parts = append(parts, "windows")
	}
	if rec.Unix != "" {
		parts = append(parts, "unix")
	}
	if rec.CrossPlatform != "" {
		parts = append(parts, "cross-platform")
	}
	return strings.Join(parts, ",")
}

func init() {
	showCmd.Flags().StringVar(&showVariant, "variant", "", "show a specific variant: windows, unix, or cross-platform")
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "confirm removal of all scripts")

	rootCmd.AddCommand(listCmd, showCmd, removeCmd, clearCmd, infoCmd)
}
