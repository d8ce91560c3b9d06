// Package cmd contains all CLI commands for the tango tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tangocli/tango/internal/config"
	"github.com/tangocli/tango/internal/store"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tango",
	Short: "Vocabulary workbook scanner and spaced-repetition trainer",
	Long: `tango turns photographed vocabulary workbook pages into a personal
flashcard collection and schedules reviews with spaced repetition.

The workflow:
  1. tango scan page.jpg     Photograph a page, extract entries via OCR
  2. tango review            Study whatever is due today
  3. tango stats             Watch the mastered pile grow

Entries can also be imported from spreadsheets and exported as
Anki-compatible TSV.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/tango)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding config directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("TANGO")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig loads the config file from the configured directory,
// falling back to defaults if it does not exist.
func loadUserConfig() (*config.Config, error) {
	dir := getConfigDir()
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := config.Default()
		cfg.DBPath = filepath.Join(dir, "tango.db")
		return cfg, nil
	}
	return config.Load(path)
}

// openStore opens the entry database at the configured path, creating the
// parent directory on first use.
func openStore(cfg *config.Config) (*store.Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	return store.Open(cfg.DBPath)
}
