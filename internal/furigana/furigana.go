// Package furigana derives katakana readings for Japanese text using the
// kagome morphological analyzer. Readings are shown alongside glosses in
// review sessions and listings.
package furigana

import (
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Annotator tokenizes Japanese text and assembles readings. Construction
// loads the IPA dictionary, so build one and reuse it.
type Annotator struct {
	t *tokenizer.Tokenizer
}

// New creates an annotator backed by the bundled IPA dictionary.
func New() (*Annotator, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Annotator{t: t}, nil
}

// Reading returns the katakana reading of text. Tokens without a
// dictionary reading (Latin fragments, unknown words) keep their surface
// form. Text with no Japanese runes is returned unchanged.
func (a *Annotator) Reading(text string) string {
	if !containsJapanese(text) {
		return text
	}

	var b strings.Builder
	for _, tok := range a.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}

		// IPA feature layout: index 7 is the reading.
		features := tok.Features()
		if len(features) > 7 && features[7] != "*" {
			b.WriteString(features[7])
			continue
		}
		b.WriteString(tok.Surface)
	}
	return b.String()
}

func containsJapanese(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return true
		}
	}
	return false
}
