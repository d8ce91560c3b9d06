// Package srs implements the SM-2 spaced-repetition scheduler.
//
// Schedule is a pure function from a quality judgment and a prior
// scheduling state to a full replacement state; callers persist the
// returned state wholesale. Due-set selection and level classification
// live here as well, so the store needs no query language.
package srs

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tangocli/tango/internal/vocab"
)

// Quality judgments follow the SM-2 convention: 0 is a complete blackout,
// 5 a perfect recall, and anything at PassThreshold or above counts as a
// successful review.
const (
	QualityMin    = 0
	QualityMax    = 5
	PassThreshold = 3

	// First two successful reviews use fixed intervals.
	firstInterval  = 1
	secondInterval = 6

	// MasteredInterval is the interval, in days, at which an entry
	// classifies as mastered.
	MasteredInterval = 21
)

var (
	// ErrQualityRange is returned when a quality judgment is outside [0,5].
	ErrQualityRange = errors.New("srs: quality out of range")
	// ErrInvalidState is returned for a scheduling state that could not
	// have been produced by this scheduler.
	ErrInvalidState = errors.New("srs: invalid scheduling state")
)

// Schedule applies one review with the given quality to the prior state
// and returns the complete replacement state. A quality below
// PassThreshold resets the repetition count and interval regardless of
// history. Out-of-range quality and malformed state are contract
// violations and fail fast.
func Schedule(quality int, state vocab.Scheduling, now time.Time) (vocab.Scheduling, error) {
	if quality < QualityMin || quality > QualityMax {
		return vocab.Scheduling{}, fmt.Errorf("%w: %d", ErrQualityRange, quality)
	}
	if state.Repetitions < 0 || state.IntervalDays < 0 || state.Ease < vocab.MinEase {
		return vocab.Scheduling{}, fmt.Errorf("%w: repetitions=%d interval=%d ease=%.2f",
			ErrInvalidState, state.Repetitions, state.IntervalDays, state.Ease)
	}

	next := state

	// Ease adjustment applies on pass and fail alike, floored at MinEase.
	q := float64(quality)
	ease := state.Ease + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < vocab.MinEase {
		ease = vocab.MinEase
	}
	next.Ease = math.Round(ease*100) / 100

	if quality >= PassThreshold {
		switch state.Repetitions {
		case 0:
			next.IntervalDays = firstInterval
		case 1:
			next.IntervalDays = secondInterval
		default:
			next.IntervalDays = int(math.Round(float64(state.IntervalDays) * next.Ease))
		}
		next.Repetitions = state.Repetitions + 1
	} else {
		next.Repetitions = 0
		next.IntervalDays = 1
	}

	next.LastReview = now
	next.NextReview = now.AddDate(0, 0, next.IntervalDays)
	return next, nil
}

// SelectDue returns the entries due at the given time, sorted ascending by
// next-review timestamp. Never-reviewed entries carry the zero timestamp
// and therefore sort first, ahead of overdue material.
func SelectDue(entries []vocab.Entry, now time.Time) []vocab.Entry {
	due := make([]vocab.Entry, 0, len(entries))
	for _, e := range entries {
		if e.SRS.Due(now) {
			due = append(due, e)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].SRS.NextReview.Before(due[j].SRS.NextReview)
	})
	return due
}

// ClassifyLevel derives the learning level from the scheduling state.
func ClassifyLevel(state vocab.Scheduling) vocab.Level {
	switch {
	case state.Repetitions == 0 && state.LastReview.IsZero():
		return vocab.LevelNew
	case state.IntervalDays >= MasteredInterval:
		return vocab.LevelMastered
	case state.Repetitions < 2:
		return vocab.LevelLearning
	default:
		return vocab.LevelReviewing
	}
}

// QualityFor maps a study-mode outcome to an SM-2 quality judgment. The
// second return value is false for modes whose outcomes do not feed the
// scheduler; matching results only update the per-mode counters.
func QualityFor(mode vocab.Mode, correct bool) (int, bool) {
	switch mode {
	case vocab.ModeFlashcard:
		if correct {
			return 4, true
		}
		return 1, true
	case vocab.ModeSpelling:
		if correct {
			return 5, true
		}
		return 1, true
	default:
		return 0, false
	}
}
