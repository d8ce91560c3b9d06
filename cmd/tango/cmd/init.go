package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tangocli/tango/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tango configuration",
	Long: `Create the tango config directory with a default config.yaml.

Edit config.yaml to change the database location, the tesseract
language set, or the per-session review limit.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	path := filepath.Join(configDir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := config.Default()
	cfg.DBPath = filepath.Join(configDir, "tango.db")
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Printf("Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Install tesseract-ocr with the jpn and eng language packs")
	fmt.Println("  2. Run 'tango scan <image>' to import a workbook page")
	fmt.Println("  3. Run 'tango review' to study")
	return nil
}
