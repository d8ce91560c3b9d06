// Package export writes vocabulary entries in formats other tools can
// import. Anki imports tab-separated text directly, which makes TSV the
// portable deck format.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tangocli/tango/internal/vocab"
)

// Field order of each exported record.
var header = []string{"word", "meaning", "phonetic", "pos", "examples", "synonyms", "antonyms"}

// WriteTSV writes one record per entry. Examples are joined with <br> so
// they land in a single Anki field; tabs and newlines inside values are
// flattened to spaces.
func WriteTSV(w io.Writer, entries []vocab.Entry) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		word := e.WordDisplay
		if word == "" {
			word = e.Word
		}

		examples := make([]string, 0, len(e.Examples))
		for _, ex := range e.Examples {
			if ex.Ja != "" {
				examples = append(examples, ex.En+" / "+ex.Ja)
			} else {
				examples = append(examples, ex.En)
			}
		}

		record := []string{
			flatten(word),
			flatten(e.Meaning),
			flatten(e.Phonetic),
			flatten(e.POS),
			flatten(strings.Join(examples, "<br>")),
			flatten(strings.Join(e.Synonyms, ", ")),
			flatten(strings.Join(e.Antonyms, ", ")),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing entry %s: %w", e.Word, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
