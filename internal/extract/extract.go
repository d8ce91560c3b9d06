package extract

import (
	"strings"

	"github.com/tangocli/tango/internal/vocab"
)

// Extract runs the segmenter and field extractor over raw recognized text
// and returns the candidates in source order.
//
// Extract is total: empty or unparseable input yields an empty slice, never
// an error. Every returned candidate has a non-empty headword. No
// deduplication is applied across segments; repeated recognition passes
// over the same page can therefore repeat a word.
func Extract(raw string) []vocab.Candidate {
	out := []vocab.Candidate{}
	if strings.TrimSpace(raw) == "" {
		return out
	}

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	for _, strat := range strategies {
		bounds := strat.boundaries(lines)
		if len(bounds) == 0 {
			continue
		}
		for _, group := range groupLines(lines, bounds) {
			if c, ok := parseGroup(group); ok && c.Word != "" {
				out = append(out, c)
			}
		}
		return out
	}

	return append(out, directCandidates(lines)...)
}
