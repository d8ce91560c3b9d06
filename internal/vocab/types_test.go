package vocab

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Abundant", "abundant"},
		{"  Give   Up  ", "give up"},
		{"", ""},
		{"self-esteem", "self-esteem"},
		{"don't", "don't"},
		{"give\tup", "give up"},
		{"give　up", "give up"},
		{"give \t　 up", "give up"},
		{"　abundant　", "abundant"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWord(tt.in))
	}
}

func TestStatsRecordAndAccuracy(t *testing.T) {
	var s Stats
	s.Record(ModeFlashcard, true)
	s.Record(ModeFlashcard, true)
	s.Record(ModeFlashcard, false)
	s.Record(ModeSpelling, true)
	s.Record(ModeMatching, false)

	assert.Equal(t, 2, s.FlashCorrect)
	assert.Equal(t, 1, s.FlashWrong)
	assert.InDelta(t, 2.0/3.0, s.Accuracy(ModeFlashcard), 1e-9)
	assert.Equal(t, 1.0, s.Accuracy(ModeSpelling))
	assert.Equal(t, 0.0, s.Accuracy(ModeMatching))
}

func TestSchedulingDue(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	assert.True(t, NewScheduling().Due(now), "unset next review is due immediately")
	assert.True(t, Scheduling{NextReview: now}.Due(now))
	assert.True(t, Scheduling{NextReview: now.Add(-time.Hour)}.Due(now))
	assert.False(t, Scheduling{NextReview: now.Add(time.Hour)}.Due(now))
}
