// Package review drives study sessions: it maps study-mode outcomes to
// quality judgments, runs the scheduler, and persists the result.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/tangocli/tango/internal/srs"
	"github.com/tangocli/tango/internal/vocab"
)

// Repository is the subset of the store the driver needs.
type Repository interface {
	Get(ctx context.Context, id string) (vocab.Entry, error)
	Update(ctx context.Context, e *vocab.Entry) error
	All(ctx context.Context) ([]vocab.Entry, error)
}

// Driver records review outcomes. Each outcome is a full read-entry,
// compute-new-state, write-entry sequence; the scheduler state is replaced
// wholesale, never merged. Reviews of the same entry must not interleave;
// a session reviews entries strictly one at a time.
type Driver struct {
	repo Repository
	now  func() time.Time
}

// NewDriver creates a driver over the given repository.
func NewDriver(repo Repository) *Driver {
	return &Driver{repo: repo, now: time.Now}
}

// Submit records one outcome for the entry in the given mode and returns
// the updated entry. Flashcard and spelling outcomes reschedule the entry;
// matching outcomes only update its counters.
func (d *Driver) Submit(ctx context.Context, id string, mode vocab.Mode, correct bool) (vocab.Entry, error) {
	e, err := d.repo.Get(ctx, id)
	if err != nil {
		return vocab.Entry{}, fmt.Errorf("loading entry: %w", err)
	}

	e.Stats.Record(mode, correct)

	if quality, scheduled := srs.QualityFor(mode, correct); scheduled {
		next, err := srs.Schedule(quality, e.SRS, d.now())
		if err != nil {
			return vocab.Entry{}, fmt.Errorf("scheduling entry %s: %w", e.Word, err)
		}
		e.SRS = next
	}

	if err := d.repo.Update(ctx, &e); err != nil {
		return vocab.Entry{}, fmt.Errorf("saving entry: %w", err)
	}
	return e, nil
}

// DueEntries returns the due set at the given time, capped at limit when
// limit is positive.
func (d *Driver) DueEntries(ctx context.Context, now time.Time, limit int) ([]vocab.Entry, error) {
	entries, err := d.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	due := srs.SelectDue(entries, now)
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}
