// Package vocab provides the core types for vocabulary entries and their
// review scheduling state.
package vocab

import (
	"strings"
	"time"
	"unicode"
)

// DefaultEase is the ease factor assigned to entries that have never been
// reviewed. MinEase is the hard floor below which the ease factor never
// drops.
const (
	DefaultEase = 2.5
	MinEase     = 1.3
)

// Level classifies how far along an entry is in the learning process.
// Levels are derived from the scheduling state, never stored.
type Level string

const (
	LevelNew       Level = "new"       // Never reviewed
	LevelLearning  Level = "learning"  // Fewer than two consecutive passes
	LevelReviewing Level = "reviewing" // In the regular review cycle
	LevelMastered  Level = "mastered"  // Interval has reached 21 days or more
)

// Mode identifies a study mode. Flashcard and spelling results feed the
// scheduler; matching results only update the per-mode counters.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeSpelling  Mode = "spelling"
	ModeMatching  Mode = "matching"
)

// Example is a source/translation sentence pair. Ja may be empty when the
// translation was not captured.
type Example struct {
	En string `yaml:"en" json:"en"`
	Ja string `yaml:"ja,omitempty" json:"ja,omitempty"`
}

// Scheduling is the SM-2 state of a single entry. The zero value of
// NextReview and LastReview means "unset": the entry has never been
// reviewed and is due immediately.
type Scheduling struct {
	Repetitions  int       `yaml:"repetitions" json:"repetitions"`
	Ease         float64   `yaml:"ease" json:"ease"`
	IntervalDays int       `yaml:"interval_days" json:"interval_days"`
	NextReview   time.Time `yaml:"next_review,omitempty" json:"next_review,omitempty"`
	LastReview   time.Time `yaml:"last_review,omitempty" json:"last_review,omitempty"`
}

// NewScheduling returns the state of a freshly added entry.
func NewScheduling() Scheduling {
	return Scheduling{Ease: DefaultEase}
}

// Due reports whether the entry is due for review at the given time. An
// unset next-review timestamp means due immediately.
func (s Scheduling) Due(now time.Time) bool {
	return s.NextReview.IsZero() || !s.NextReview.After(now)
}

// Stats holds per-mode correct/incorrect counters. The counters are owned
// by the review session; the scheduler never reads them.
type Stats struct {
	FlashCorrect int `yaml:"flash_correct" json:"flash_correct"`
	FlashWrong   int `yaml:"flash_wrong" json:"flash_wrong"`
	SpellCorrect int `yaml:"spell_correct" json:"spell_correct"`
	SpellWrong   int `yaml:"spell_wrong" json:"spell_wrong"`
	MatchCorrect int `yaml:"match_correct" json:"match_correct"`
	MatchWrong   int `yaml:"match_wrong" json:"match_wrong"`
}

// Record increments the counter for the given mode and outcome.
func (s *Stats) Record(mode Mode, correct bool) {
	switch mode {
	case ModeFlashcard:
		if correct {
			s.FlashCorrect++
		} else {
			s.FlashWrong++
		}
	case ModeSpelling:
		if correct {
			s.SpellCorrect++
		} else {
			s.SpellWrong++
		}
	case ModeMatching:
		if correct {
			s.MatchCorrect++
		} else {
			s.MatchWrong++
		}
	}
}

// Accuracy returns the fraction of correct outcomes for a mode, or 0 when
// the mode has no recorded outcomes.
func (s Stats) Accuracy(mode Mode) float64 {
	var correct, total int
	switch mode {
	case ModeFlashcard:
		correct, total = s.FlashCorrect, s.FlashCorrect+s.FlashWrong
	case ModeSpelling:
		correct, total = s.SpellCorrect, s.SpellCorrect+s.SpellWrong
	case ModeMatching:
		correct, total = s.MatchCorrect, s.MatchCorrect+s.MatchWrong
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// Candidate is the transient output of the extraction pipeline: an entry
// shape without identity, scheduling state, or statistics. It exists until
// the user accepts or edits it into a persisted Entry.
type Candidate struct {
	Word        string    `json:"word"`
	WordDisplay string    `json:"word_display"`
	Meaning     string    `json:"meaning"`
	Phonetic    string    `json:"phonetic"`
	POS         string    `json:"pos"`
	Examples    []Example `json:"examples,omitempty"`
	Synonyms    []string  `json:"synonyms,omitempty"`
	Antonyms    []string  `json:"antonyms,omitempty"`
}

// Entry is a persisted vocabulary entry. An Entry with a non-empty Word is
// well-formed for persistence even when every other field is empty; the
// pipeline emits partial entries for human correction rather than
// discarding them.
type Entry struct {
	ID          string    `json:"id"`
	Word        string    `json:"word"`
	WordDisplay string    `json:"word_display"`
	Meaning     string    `json:"meaning"`
	Phonetic    string    `json:"phonetic"`
	POS         string    `json:"pos"`
	Examples    []Example `json:"examples,omitempty"`
	Synonyms    []string  `json:"synonyms,omitempty"`
	Antonyms    []string  `json:"antonyms,omitempty"`

	SRS   Scheduling `json:"srs"`
	Stats Stats      `json:"stats"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntry builds a fresh Entry from an accepted candidate.
func NewEntry(c Candidate) Entry {
	return Entry{
		Word:        NormalizeWord(c.Word),
		WordDisplay: c.WordDisplay,
		Meaning:     c.Meaning,
		Phonetic:    c.Phonetic,
		POS:         c.POS,
		Examples:    c.Examples,
		Synonyms:    c.Synonyms,
		Antonyms:    c.Antonyms,
		SRS:         NewScheduling(),
	}
}

// NormalizeWord prepares a headword for storage and comparison: trimmed,
// lowercased, inner whitespace runs (including tabs and fullwidth spaces
// the recognizer leaves behind) compressed to a single space. Hyphens and
// apostrophes are preserved.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	word = strings.ToLower(word)

	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
