// Package extract turns noisy recognized text from scanned workbook pages
// into structured vocabulary candidates.
//
// Recognition output interleaves scripts and layouts vary between
// workbooks, so everything here is heuristic: segmentation strategies are
// tried in order from strict to permissive, and a line group that yields no
// headword is dropped rather than reported as an error. The pipeline never
// fails on merely noisy input; the worst case is fewer candidates than the
// page contains.
package extract

import (
	"strings"
	"unicode"
)

// Majority thresholds. Recognition interleaves scripts within a line, so a
// fractional majority is more robust than expecting clean separation.
const (
	japaneseThreshold = 0.3
	latinThreshold    = 0.5
)

func isJapaneseRune(r rune) bool {
	return unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han)
}

func isLatinRune(r rune) bool {
	return unicode.Is(unicode.Latin, r)
}

// scriptRatio returns the fraction of non-whitespace runes in line for
// which member reports true.
func scriptRatio(line string, member func(rune) bool) float64 {
	var total, hits int
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if member(r) {
			hits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// IsJapaneseMajority reports whether more than 30% of the non-whitespace
// runes are kana or kanji.
func IsJapaneseMajority(line string) bool {
	return scriptRatio(line, isJapaneseRune) > japaneseThreshold
}

// IsLatinMajority reports whether more than half of the non-whitespace
// runes are Latin letters.
func IsLatinMajority(line string) bool {
	return scriptRatio(line, isLatinRune) > latinThreshold
}

// IsLongLatinSentence reports whether the line is a Latin-majority line of
// more than three whitespace-delimited tokens. Such lines are example
// sentences, not headwords.
func IsLongLatinSentence(line string) bool {
	return IsLatinMajority(line) && len(strings.Fields(line)) > 3
}
