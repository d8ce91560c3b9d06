package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangocli/tango/internal/store"
	"github.com/tangocli/tango/internal/vocab"
)

func setup(t *testing.T) (*Driver, *store.Store, vocab.Entry) {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	e := vocab.NewEntry(vocab.Candidate{Word: "abundant", WordDisplay: "abundant", Meaning: "豊富な"})
	require.NoError(t, s.Insert(context.Background(), &e))

	d := NewDriver(s)
	d.now = func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC) }
	return d, s, e
}

func TestSubmitFlashcardCorrect(t *testing.T) {
	d, s, e := setup(t)
	ctx := context.Background()

	got, err := d.Submit(ctx, e.ID, vocab.ModeFlashcard, true)
	require.NoError(t, err)

	assert.Equal(t, 1, got.SRS.Repetitions)
	assert.Equal(t, 1, got.SRS.IntervalDays)
	assert.Equal(t, 1, got.Stats.FlashCorrect)

	// The replacement state is persisted, not just returned.
	stored, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, got.SRS, stored.SRS)
	assert.Equal(t, got.Stats, stored.Stats)
}

func TestSubmitSpellingWrongResets(t *testing.T) {
	d, _, e := setup(t)
	ctx := context.Background()

	_, err := d.Submit(ctx, e.ID, vocab.ModeSpelling, true)
	require.NoError(t, err)
	got, err := d.Submit(ctx, e.ID, vocab.ModeSpelling, false)
	require.NoError(t, err)

	assert.Equal(t, 0, got.SRS.Repetitions)
	assert.Equal(t, 1, got.SRS.IntervalDays)
	assert.Equal(t, 1, got.Stats.SpellCorrect)
	assert.Equal(t, 1, got.Stats.SpellWrong)
}

func TestSubmitMatchingDoesNotSchedule(t *testing.T) {
	d, _, e := setup(t)
	ctx := context.Background()

	got, err := d.Submit(ctx, e.ID, vocab.ModeMatching, true)
	require.NoError(t, err)

	// Stats counted, scheduling untouched.
	assert.Equal(t, 1, got.Stats.MatchCorrect)
	assert.Equal(t, 0, got.SRS.Repetitions)
	assert.True(t, got.SRS.NextReview.IsZero())
	assert.True(t, got.SRS.LastReview.IsZero())
}

func TestSubmitUnknownEntry(t *testing.T) {
	d, _, _ := setup(t)

	_, err := d.Submit(context.Background(), "missing", vocab.ModeFlashcard, true)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDueEntriesLimit(t *testing.T) {
	d, s, _ := setup(t)
	ctx := context.Background()

	for _, w := range []string{"scarce", "endure", "linger"} {
		e := vocab.NewEntry(vocab.Candidate{Word: w, WordDisplay: w})
		require.NoError(t, s.Insert(ctx, &e))
	}

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	due, err := d.DueEntries(ctx, now, 0)
	require.NoError(t, err)
	assert.Len(t, due, 4)

	due, err = d.DueEntries(ctx, now, 2)
	require.NoError(t, err)
	assert.Len(t, due, 2)
}
