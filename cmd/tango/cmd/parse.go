package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tangocli/tango/internal/extract"
)

var (
	parseDryRun bool
	parseJSON   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.txt>",
	Short: "Extract vocabulary entries from recognized text",
	Long: `Parse already-recognized text into vocabulary entries. Useful for
text produced by an external OCR tool, or for re-running extraction
after hand-correcting a recognition transcript.

Example:
  tango parse page1.txt
  tango parse --dry-run --json page1.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseDryRun, "dry-run", false, "show extracted entries without saving")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print extracted entries as JSON")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading text file: %w", err)
	}

	candidates := extract.Extract(string(data))
	fmt.Printf("%s: %d entries\n", args[0], len(candidates))

	if parseJSON {
		out, err := json.MarshalIndent(candidates, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding entries: %w", err)
		}
		fmt.Println(string(out))
	}

	if parseDryRun {
		if !parseJSON {
			printCandidates(candidates)
		}
		return nil
	}

	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	return saveCandidates(cmd.Context(), st, candidates)
}
