package furigana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReading(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	tests := []struct {
		in, want string
	}{
		{"豊富", "ホウフ"},
		{"収穫", "シュウカク"},
		{"abundant", "abundant"}, // no Japanese runes: untouched
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Reading(tt.in))
	}
}
