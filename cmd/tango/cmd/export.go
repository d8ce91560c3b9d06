package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tangocli/tango/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.tsv>",
	Short: "Export the collection as Anki-importable TSV",
	Long: `Export all entries to a tab-separated file that Anki can import
directly (File > Import, fields separated by tabs).

Example:
  tango export deck.tsv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.All(cmd.Context())
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := export.WriteTSV(f, entries); err != nil {
		return err
	}

	fmt.Printf("Exported %d entries to %s\n", len(entries), args[0])
	return nil
}
