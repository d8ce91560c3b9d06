package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangocli/tango/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from a spreadsheet",
	Long: `Import entries from an xlsx, csv, or tsv file. The expected columns
are word, meaning, phonetic, pos, examples, synonyms, antonyms; only the
word column is required. A header row is detected and skipped.

Existing entries are matched by headword and updated in place; their
review schedule is preserved.

Example:
  tango import words.xlsx
  tango import deck.tsv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	result, err := importer.File(cmd.Context(), st, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d rows: %d created, %d updated, %d skipped\n",
		result.Processed, result.Created, result.Updated, result.Skipped)
	for _, e := range result.Errors {
		fmt.Println("  " + e)
	}
	return nil
}
