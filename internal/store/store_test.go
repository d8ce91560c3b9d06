package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangocli/tango/internal/vocab"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEntry() vocab.Entry {
	return vocab.NewEntry(vocab.Candidate{
		Word:        "abundant",
		WordDisplay: "Abundant",
		Meaning:     "豊富な",
		Phonetic:    "əˈbʌndənt",
		POS:         "形",
		Examples: []vocab.Example{
			{En: "The abundant harvest fed the village.", Ja: "村は豊富な収穫で満たされた。"},
		},
		Synonyms: []string{"plentiful", "copious"},
		Antonyms: []string{"scarce"},
	})
}

func TestInsertAndGetRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	e := sampleEntry()
	require.NoError(t, s.Insert(ctx, &e))
	require.NotEmpty(t, e.ID)

	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)

	assert.Equal(t, "abundant", got.Word)
	assert.Equal(t, "Abundant", got.WordDisplay)
	assert.Equal(t, "豊富な", got.Meaning)
	assert.Equal(t, "əˈbʌndənt", got.Phonetic)
	assert.Equal(t, "形", got.POS)
	assert.Equal(t, e.Examples, got.Examples)
	assert.Equal(t, e.Synonyms, got.Synonyms)
	assert.Equal(t, e.Antonyms, got.Antonyms)

	// Fresh entries keep the unset sentinel through a round trip.
	assert.True(t, got.SRS.NextReview.IsZero())
	assert.True(t, got.SRS.LastReview.IsZero())
	assert.Equal(t, vocab.DefaultEase, got.SRS.Ease)
}

func TestUpdatePersistsSchedulingState(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	e := sampleEntry()
	require.NoError(t, s.Insert(ctx, &e))

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	e.SRS = vocab.Scheduling{
		Repetitions:  2,
		Ease:         2.6,
		IntervalDays: 6,
		NextReview:   now.AddDate(0, 0, 6),
		LastReview:   now,
	}
	e.Stats.Record(vocab.ModeFlashcard, true)
	require.NoError(t, s.Update(ctx, &e))

	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SRS.Repetitions)
	assert.Equal(t, 2.6, got.SRS.Ease)
	assert.Equal(t, 6, got.SRS.IntervalDays)
	assert.True(t, got.SRS.NextReview.Equal(now.AddDate(0, 0, 6)))
	assert.True(t, got.SRS.LastReview.Equal(now))
	assert.Equal(t, 1, got.Stats.FlashCorrect)
}

func TestInsertDuplicateWord(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	a := sampleEntry()
	require.NoError(t, s.Insert(ctx, &a))

	b := sampleEntry()
	err := s.Insert(ctx, &b)
	assert.ErrorIs(t, err, ErrExists)
}

func TestGetByWordNormalizes(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	e := sampleEntry()
	require.NoError(t, s.Insert(ctx, &e))

	got, err := s.GetByWord(ctx, "  Abundant ")
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
}

func TestGetNotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	e := sampleEntry()
	require.NoError(t, s.Insert(ctx, &e))
	require.NoError(t, s.Delete(ctx, e.ID))

	_, err := s.Get(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, e.ID), ErrNotFound)
}

func TestAllAndCount(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for _, w := range []string{"banana", "apple", "cherry"} {
		e := vocab.NewEntry(vocab.Candidate{Word: w, WordDisplay: w})
		require.NoError(t, s.Insert(ctx, &e))
	}

	entries, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "apple", entries[0].Word)
	assert.Equal(t, "banana", entries[1].Word)
	assert.Equal(t, "cherry", entries[2].Word)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
