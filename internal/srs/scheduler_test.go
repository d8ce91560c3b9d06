package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangocli/tango/internal/vocab"
)

var reviewTime = time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

func TestScheduleProgression(t *testing.T) {
	// Three consecutive passes from a fresh state: 1 day, 6 days, then
	// round(6 * ease).
	state := vocab.NewScheduling()

	state, err := Schedule(4, state, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Repetitions)
	assert.Equal(t, 1, state.IntervalDays)
	assert.Equal(t, 2.5, state.Ease) // quality 4 leaves ease unchanged

	state, err = Schedule(4, state, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Repetitions)
	assert.Equal(t, 6, state.IntervalDays)

	state, err = Schedule(4, state, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Repetitions)
	assert.Equal(t, 15, state.IntervalDays) // round(6 * 2.5)
	assert.True(t, state.NextReview.Equal(reviewTime.AddDate(0, 0, 15)))
	assert.True(t, state.LastReview.Equal(reviewTime))
}

func TestScheduleFailResets(t *testing.T) {
	states := []vocab.Scheduling{
		vocab.NewScheduling(),
		{Repetitions: 5, Ease: 2.7, IntervalDays: 40},
		{Repetitions: 1, Ease: 1.3, IntervalDays: 6},
	}
	for _, prior := range states {
		for q := 0; q < PassThreshold; q++ {
			next, err := Schedule(q, prior, reviewTime)
			require.NoError(t, err)
			assert.Equal(t, 0, next.Repetitions)
			assert.Equal(t, 1, next.IntervalDays)
		}
	}
}

func TestScheduleEaseAdjustment(t *testing.T) {
	tests := []struct {
		quality int
		want    float64
	}{
		{5, 2.6},  // +0.1
		{4, 2.5},  // unchanged
		{3, 2.36}, // -0.14
		{0, 1.7},  // -0.8
	}
	for _, tt := range tests {
		next, err := Schedule(tt.quality, vocab.NewScheduling(), reviewTime)
		require.NoError(t, err)
		assert.Equal(t, tt.want, next.Ease, "quality %d", tt.quality)
	}
}

func TestScheduleEaseFloor(t *testing.T) {
	state := vocab.NewScheduling()
	var err error
	for i := 0; i < 20; i++ {
		state, err = Schedule(0, state, reviewTime)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.Ease, vocab.MinEase)
	}
	assert.Equal(t, vocab.MinEase, state.Ease)
}

func TestSchedulePassAfterFail(t *testing.T) {
	// Quality 5, then 1, then 4: the post-fail pass counts as a first
	// pass again.
	state := vocab.NewScheduling()

	state, err := Schedule(5, state, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Repetitions)
	assert.Equal(t, 1, state.IntervalDays)

	state, err = Schedule(1, state, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Repetitions)
	assert.Equal(t, 1, state.IntervalDays)

	state, err = Schedule(4, state, reviewTime)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Repetitions)
	assert.Equal(t, 1, state.IntervalDays)
}

func TestScheduleRejectsBadInput(t *testing.T) {
	_, err := Schedule(6, vocab.NewScheduling(), reviewTime)
	assert.ErrorIs(t, err, ErrQualityRange)

	_, err = Schedule(-1, vocab.NewScheduling(), reviewTime)
	assert.ErrorIs(t, err, ErrQualityRange)

	_, err = Schedule(4, vocab.Scheduling{Ease: 0.5}, reviewTime)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = Schedule(4, vocab.Scheduling{Ease: 2.5, Repetitions: -1}, reviewTime)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSelectDue(t *testing.T) {
	now := reviewTime
	entries := []vocab.Entry{
		{Word: "future", SRS: vocab.Scheduling{NextReview: now.AddDate(0, 0, 3)}},
		{Word: "overdue", SRS: vocab.Scheduling{NextReview: now.AddDate(0, 0, -2)}},
		{Word: "fresh", SRS: vocab.NewScheduling()},
		{Word: "exactly-now", SRS: vocab.Scheduling{NextReview: now}},
		{Word: "barely-overdue", SRS: vocab.Scheduling{NextReview: now.AddDate(0, 0, -1)}},
	}

	due := SelectDue(entries, now)
	require.Len(t, due, 4)

	// Never-reviewed entries carry the zero timestamp and sort first,
	// then overdue material oldest-first.
	assert.Equal(t, "fresh", due[0].Word)
	assert.Equal(t, "overdue", due[1].Word)
	assert.Equal(t, "barely-overdue", due[2].Word)
	assert.Equal(t, "exactly-now", due[3].Word)
}

func TestSelectDueEmpty(t *testing.T) {
	assert.Empty(t, SelectDue(nil, reviewTime))
}

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		name  string
		state vocab.Scheduling
		want  vocab.Level
	}{
		{"fresh", vocab.NewScheduling(), vocab.LevelNew},
		{"one pass", vocab.Scheduling{Repetitions: 1, Ease: 2.5, IntervalDays: 1, LastReview: reviewTime}, vocab.LevelLearning},
		{"failed once", vocab.Scheduling{Repetitions: 0, Ease: 2.2, IntervalDays: 1, LastReview: reviewTime}, vocab.LevelLearning},
		{"two passes", vocab.Scheduling{Repetitions: 2, Ease: 2.5, IntervalDays: 6, LastReview: reviewTime}, vocab.LevelReviewing},
		{"long interval", vocab.Scheduling{Repetitions: 4, Ease: 2.5, IntervalDays: 21, LastReview: reviewTime}, vocab.LevelMastered},
		{"just under mastered", vocab.Scheduling{Repetitions: 4, Ease: 2.5, IntervalDays: 20, LastReview: reviewTime}, vocab.LevelReviewing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLevel(tt.state))
		})
	}
}

func TestQualityFor(t *testing.T) {
	q, ok := QualityFor(vocab.ModeFlashcard, true)
	assert.True(t, ok)
	assert.Equal(t, 4, q)

	q, ok = QualityFor(vocab.ModeFlashcard, false)
	assert.True(t, ok)
	assert.Equal(t, 1, q)

	q, ok = QualityFor(vocab.ModeSpelling, true)
	assert.True(t, ok)
	assert.Equal(t, 5, q)

	q, ok = QualityFor(vocab.ModeSpelling, false)
	assert.True(t, ok)
	assert.Equal(t, 1, q)

	// Matching outcomes never feed the scheduler.
	_, ok = QualityFor(vocab.ModeMatching, true)
	assert.False(t, ok)
}
