package extract

import "regexp"

var (
	// An entry number directly followed by a Latin headword.
	numberedLine = regexp.MustCompile(`^\d{1,4}\s+[A-Za-z]`)

	// A headword followed by an opening bracket (phonetic transcription)
	// or by a single-character part-of-speech tag.
	bracketLine = regexp.MustCompile(`^[A-Za-z]{2,}[A-Za-z'’ \-]*\s*[\[(（【]`)
	posLine     = regexp.MustCompile(`^[A-Za-z]{2,}[A-Za-z'’ \-]*\s+[` + posTags + `]`)
)

// A boundaryFunc inspects all lines and returns the indices that start a
// new entry, or nil when the strategy does not apply to this text.
type boundaryFunc func(lines []string) []int

// strategies are tried in order; the first one that finds any boundary
// wins. Each layer is strictly more permissive than the last, so precision
// degrades gracefully instead of producing zero output.
var strategies = []struct {
	name       string
	boundaries boundaryFunc
}{
	{"numbered", numberedBoundaries},
	{"marker", markerBoundaries},
}

// numberedBoundaries marks every line that opens with an entry number and
// a Latin headword.
func numberedBoundaries(lines []string) []int {
	var bounds []int
	for i, line := range lines {
		if numberedLine.MatchString(line) {
			bounds = append(bounds, i)
		}
	}
	return bounds
}

// markerBoundaries marks lines where a headword is followed by a phonetic
// bracket or a part-of-speech tag. Used for unnumbered workbook layouts.
func markerBoundaries(lines []string) []int {
	var bounds []int
	for i, line := range lines {
		if bracketLine.MatchString(line) || posLine.MatchString(line) {
			bounds = append(bounds, i)
		}
	}
	return bounds
}

// groupLines splits lines into one group per boundary; each group runs
// from its boundary up to the line before the next one.
func groupLines(lines []string, bounds []int) [][]string {
	groups := make([][]string, 0, len(bounds))
	for i, start := range bounds {
		end := len(lines)
		if i+1 < len(bounds) {
			end = bounds[i+1]
		}
		groups = append(groups, lines[start:end])
	}
	return groups
}
