package cmd

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangocli/tango/internal/imageprep"
	"github.com/tangocli/tango/internal/vocab"
)

func TestScanUpscaleFlag(t *testing.T) {
	factor, err := scanCmd.Flags().GetInt("upscale")
	require.NoError(t, err)
	assert.Equal(t, 2, factor)

	// The flag value feeds imageprep.Prepare directly.
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	got := imageprep.Prepare(src, factor)
	assert.Equal(t, image.Rect(0, 0, 6, 6), got.Bounds())
}

func TestListLine(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	e := vocab.Entry{Word: "abundant", Meaning: "豊富な"}

	line := listLine(e, now, 8, nil)
	assert.Contains(t, line, "abundant")
	assert.Contains(t, line, "new")
	assert.Contains(t, line, "next: now")
	assert.Contains(t, line, "豊富な")

	e.SRS.NextReview = now.AddDate(0, 0, 6)
	line = listLine(e, now, 8, nil)
	assert.Contains(t, line, "next: 2026-09-05")
}

func TestListLineReadings(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	reading := func(s string) string {
		if s == "豊富な" {
			return "ホウフな"
		}
		return s
	}

	line := listLine(vocab.Entry{Word: "abundant", Meaning: "豊富な"}, now, 8, reading)
	assert.Contains(t, line, "豊富な [ホウフな]")

	// A reading identical to the meaning adds nothing.
	line = listLine(vocab.Entry{Word: "run", Meaning: "run fast"}, now, 8, reading)
	assert.NotContains(t, line, "[")

	// No annotator configured.
	line = listLine(vocab.Entry{Word: "scarce", Meaning: "乏しい"}, now, 8, nil)
	assert.NotContains(t, line, "[")
}
