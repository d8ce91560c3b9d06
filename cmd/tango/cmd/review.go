package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tangocli/tango/internal/furigana"
	"github.com/tangocli/tango/internal/review"
	"github.com/tangocli/tango/internal/tui"
	"github.com/tangocli/tango/internal/vocab"
)

var (
	reviewMode  string
	reviewLimit int
	reviewAll   bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Study due entries interactively",
	Long: `Start an interactive review session over the entries that are due.

Modes:
  flashcard  See the word, recall the meaning, grade yourself
  spelling   See the meaning, type the word
  matching   Pair words with meanings (does not affect scheduling)

Example:
  tango review
  tango review --mode spelling --limit 10`,
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&reviewMode, "mode", "flashcard", "study mode: flashcard, spelling, or matching")
	reviewCmd.Flags().IntVar(&reviewLimit, "limit", 0, "max entries this session (0 uses the configured limit)")
	reviewCmd.Flags().BoolVar(&reviewAll, "all", false, "review everything, not just due entries")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	mode := vocab.Mode(reviewMode)
	switch mode {
	case vocab.ModeFlashcard, vocab.ModeSpelling, vocab.ModeMatching:
	default:
		return fmt.Errorf("unknown mode %q", reviewMode)
	}

	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}

	limit := reviewLimit
	if limit == 0 {
		limit = cfg.ReviewLimit
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	driver := review.NewDriver(st)

	var entries []vocab.Entry
	if reviewAll {
		entries, err = st.All(ctx)
		if err != nil {
			return err
		}
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
	} else {
		entries, err = driver.DueEntries(ctx, time.Now(), limit)
		if err != nil {
			return err
		}
	}

	if len(entries) == 0 {
		fmt.Println("Nothing is due for review. Come back later!")
		return nil
	}

	var reading tui.ReadingFunc
	if ann, err := furigana.New(); err == nil {
		reading = ann.Reading
	}

	session := tui.NewSession(driver, entries, mode, reading)
	if err := tui.Run(session); err != nil {
		return fmt.Errorf("running review session: %w", err)
	}
	return nil
}
