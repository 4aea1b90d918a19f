// export.go implements script export: registered records serialized to YAML
// for backup or transfer between machines.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	goyaml "gopkg.in/yaml.v3"

	"github.com/davidhurst/scriptbox/internal/script"
)

var (
	exportAll  bool
	exportFile string
)

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export registered scripts as YAML",
	Long: `Export one registered script (or all of them with --all) as YAML to
stdout or to --output. The export contains the full record: canonical
text, derived variants, and metadata.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !exportAll && len(args) == 0 {
			return fmt.Errorf("provide a script name or pass --all")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		var recs []*script.Script
		if exportAll {
			recs, err = s.List()
		} else {
			var rec *script.Script
			rec, err = s.Get(args[0])
			recs = []*script.Script{rec}
		}
		if err != nil {
			return err
		}

		data, err := goyaml.Marshal(recs)
		if err != nil {
			return fmt.Errorf("marshal export: %w", err)
		}

		if exportFile == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportFile, data, 0600); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("Exported %d script(s) to %s\n", len(recs), exportFile)
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every registered script")
	exportCmd.Flags().StringVarP(&exportFile, "output", "o", "", "write the export to this file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}
