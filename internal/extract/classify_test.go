package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJapaneseMajority(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"pure japanese", "豊富な", true},
		{"kana", "アップル", true},
		{"pure latin", "abundant", false},
		{"empty", "", false},
		{"whitespace only", "   \t", false},
		{"mixed above threshold", "形 豊富な abc", true},
		{"mostly latin with one kanji", "abundant harvest 実", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsJapaneseMajority(tt.line))
		})
	}
}

func TestIsLatinMajority(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"pure latin", "abundant", true},
		{"sentence with punctuation", "The abundant harvest fed the village.", true},
		{"pure japanese", "村は豊富な収穫で満たされた。", false},
		{"numbers only", "123456", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLatinMajority(tt.line))
		})
	}
}

func TestIsLongLatinSentence(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"full sentence", "The abundant harvest fed the village.", true},
		{"exactly three tokens", "feed the village", false},
		{"single headword", "abundant", false},
		{"japanese sentence", "村は豊富な収穫で満たされた。", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLongLatinSentence(tt.line))
		})
	}
}
