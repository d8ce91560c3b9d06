package extract

import (
	"regexp"
	"strings"

	"github.com/tangocli/tango/internal/vocab"
)

// meaningLookahead is how many lines below a headword the fallback scans
// for a Japanese meaning line.
const meaningLookahead = 3

// An optional entry number, then a Latin token of at least three letters.
var directHeadPattern = regexp.MustCompile(`^(?:\d{1,4}[.)]?\s*)?([A-Za-z][A-Za-z'’\-]{2,})`)

// Common recognized tokens that are never workbook headwords.
var directStoplist = map[string]bool{
	"the": true, "and": true, "are": true, "was": true, "were": true,
	"for": true, "not": true, "but": true, "you": true, "all": true,
	"can": true, "had": true, "has": true, "have": true, "her": true,
	"his": true, "him": true, "she": true, "they": true, "this": true,
	"that": true, "with": true, "from": true, "will": true, "what": true,
	"when": true, "your": true, "unit": true, "page": true,
}

// directCandidates is the last-resort strategy: no segmentation at all,
// each line scanned independently for a bare headword. Meanings come from
// a short lookahead and phonetics from a bracket group on the same line;
// multi-line detail (examples, synonyms) is never captured in this mode.
func directCandidates(lines []string) []vocab.Candidate {
	var out []vocab.Candidate
	seen := make(map[string]bool)

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || IsLongLatinSentence(line) {
			continue
		}

		m := directHeadPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		display := m[1]
		word := vocab.NormalizeWord(display)
		if directStoplist[word] || seen[word] {
			continue
		}
		seen[word] = true

		c := vocab.Candidate{Word: word, WordDisplay: display}
		if pm := phoneticPattern.FindStringSubmatch(line); pm != nil {
			c.Phonetic = strings.TrimSpace(pm[1])
		}
		for j := i + 1; j <= i+meaningLookahead && j < len(lines); j++ {
			if next := strings.TrimSpace(lines[j]); IsJapaneseMajority(next) {
				c.Meaning = next
				break
			}
		}
		out = append(out, c)
	}
	return out
}
