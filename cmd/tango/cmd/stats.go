package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tangocli/tango/internal/srs"
	"github.com/tangocli/tango/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection and review statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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

	levels := map[vocab.Level]int{}
	var totals vocab.Stats
	for _, e := range entries {
		levels[srs.ClassifyLevel(e.SRS)]++
		totals.FlashCorrect += e.Stats.FlashCorrect
		totals.FlashWrong += e.Stats.FlashWrong
		totals.SpellCorrect += e.Stats.SpellCorrect
		totals.SpellWrong += e.Stats.SpellWrong
		totals.MatchCorrect += e.Stats.MatchCorrect
		totals.MatchWrong += e.Stats.MatchWrong
	}
	due := len(srs.SelectDue(entries, time.Now()))

	fmt.Printf("Collection: %d entries, %d due now\n\n", len(entries), due)
	for _, level := range []vocab.Level{vocab.LevelNew, vocab.LevelLearning, vocab.LevelReviewing, vocab.LevelMastered} {
		fmt.Printf("  %-9s %d\n", level, levels[level])
	}

	fmt.Println()
	printAccuracy("flashcard", totals, vocab.ModeFlashcard)
	printAccuracy("spelling", totals, vocab.ModeSpelling)
	printAccuracy("matching", totals, vocab.ModeMatching)

	return nil
}

func printAccuracy(label string, totals vocab.Stats, mode vocab.Mode) {
	var correct, total int
	switch mode {
	case vocab.ModeFlashcard:
		correct, total = totals.FlashCorrect, totals.FlashCorrect+totals.FlashWrong
	case vocab.ModeSpelling:
		correct, total = totals.SpellCorrect, totals.SpellCorrect+totals.SpellWrong
	case vocab.ModeMatching:
		correct, total = totals.MatchCorrect, totals.MatchCorrect+totals.MatchWrong
	}
	if total == 0 {
		fmt.Printf("  %-9s no reviews yet\n", label)
		return
	}
	fmt.Printf("  %-9s %d/%d (%.0f%%)\n", label, correct, total, 100*totals.Accuracy(mode))
}
