package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangocli/tango/internal/vocab"
)

func TestWriteTSV(t *testing.T) {
	entries := []vocab.Entry{
		{
			Word:        "abundant",
			WordDisplay: "abundant",
			Meaning:     "豊富な",
			Phonetic:    "əˈbʌndənt",
			POS:         "形",
			Examples: []vocab.Example{
				{En: "The abundant harvest fed the village.", Ja: "村は豊富な収穫で満たされた。"},
			},
			Synonyms: []string{"plentiful", "copious"},
		},
		{
			Word:    "scarce",
			Meaning: "乏しい",
			Examples: []vocab.Example{
				{En: "Water was scarce."},
			},
			Antonyms: []string{"abundant"},
		},
	}

	var buf strings.Builder
	require.NoError(t, WriteTSV(&buf, entries))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "word\tmeaning\tphonetic\tpos\texamples\tsynonyms\tantonyms", lines[0])
	assert.Equal(t,
		"abundant\t豊富な\təˈbʌndənt\t形\tThe abundant harvest fed the village. / 村は豊富な収穫で満たされた。\tplentiful, copious\t",
		lines[1])

	// WordDisplay is empty, falls back to the normalized word.
	assert.Equal(t, "scarce\t乏しい\t\t\tWater was scarce.\t\tabundant", lines[2])
}

func TestWriteTSVFlattensControlCharacters(t *testing.T) {
	entries := []vocab.Entry{
		{Word: "run", Meaning: "走る\tまたは\n経営する"},
	}

	var buf strings.Builder
	require.NoError(t, WriteTSV(&buf, entries))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "run\t走る または 経営する\t\t\t\t\t", lines[1])
}

func TestWriteTSVEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteTSV(&buf, nil))
	assert.Equal(t, "word\tmeaning\tphonetic\tpos\texamples\tsynonyms\tantonyms\n", buf.String())
}
