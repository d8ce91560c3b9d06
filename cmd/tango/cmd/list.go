package cmd

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/tangocli/tango/internal/furigana"
	"github.com/tangocli/tango/internal/srs"
	"github.com/tangocli/tango/internal/vocab"
)

var (
	listLevel    string
	listDue      bool
	listReadings bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries in the collection",
	Long: `List all entries with their level and next review date.

Example:
  tango list
  tango list --level mastered
  tango list --due --readings`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listLevel, "level", "", "only show entries at this level: new, learning, reviewing, or mastered")
	listCmd.Flags().BoolVar(&listDue, "due", false, "only show entries that are due now")
	listCmd.Flags().BoolVar(&listReadings, "readings", false, "annotate meanings with their kana reading")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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

	now := time.Now()
	if listDue {
		entries = srs.SelectDue(entries, now)
	}
	if listLevel != "" {
		level := vocab.Level(listLevel)
		filtered := entries[:0]
		for _, e := range entries {
			if srs.ClassifyLevel(e.SRS) == level {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if len(entries) == 0 {
		fmt.Println("No entries.")
		return nil
	}

	var reading func(string) string
	if listReadings {
		ann, err := furigana.New()
		if err != nil {
			return fmt.Errorf("loading reading annotator: %w", err)
		}
		reading = ann.Reading
	}

	wordWidth := 4
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Word); w > wordWidth {
			wordWidth = w
		}
	}

	for _, e := range entries {
		fmt.Println(listLine(e, now, wordWidth, reading))
	}
	fmt.Printf("\n%d entries\n", len(entries))
	return nil
}

// listLine renders one entry row. With a reading func the meaning column
// carries its kana reading in brackets, unless the reading adds nothing.
func listLine(e vocab.Entry, now time.Time, wordWidth int, reading func(string) string) string {
	next := "now"
	if !e.SRS.NextReview.IsZero() && e.SRS.NextReview.After(now) {
		next = e.SRS.NextReview.Format("2006-01-02")
	}

	meaning := e.Meaning
	if reading != nil && meaning != "" {
		if r := reading(meaning); r != meaning {
			meaning += " [" + r + "]"
		}
	}

	return fmt.Sprintf("%s  %-9s  next: %-10s  %s",
		runewidth.FillRight(e.Word, wordWidth),
		srs.ClassifyLevel(e.SRS),
		next,
		meaning,
	)
}
