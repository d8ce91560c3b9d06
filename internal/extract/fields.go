package extract

import (
	"regexp"
	"strings"

	"github.com/tangocli/tango/internal/vocab"
)

// posTags are the single-character part-of-speech markers used by Japanese
// vocabulary workbooks: adjective, noun, verb, adverb, conjunction,
// preposition, particle, interjection, pronoun.
const posTags = "形名動副接前助感代"

// Marker glyphs that open synonym and antonym lines.
const (
	synonymMarkers = "≒≈~～類同"
	antonymMarkers = "⇔↔反"
)

var (
	// Headword on the first line of a group: an optional entry number,
	// then a Latin word or phrase terminated by a phonetic bracket, a
	// part-of-speech tag, or the end of the line.
	headPattern = regexp.MustCompile(`^(?:\d{1,4}[.)]?\s+)?([A-Za-z][A-Za-z'’ \-]*?)\s*(?:[\[(（【]|[` + posTags + `]|$)`)

	// Looser fallback: optional number, then the first Latin token.
	looseHeadPattern = regexp.MustCompile(`^(?:\d{1,4}[.)]?\s*)?([A-Za-z][A-Za-z'’\-]*)`)

	// First bracket or parenthesis group, fullwidth included.
	phoneticPattern = regexp.MustCompile(`[\[(（【]([^\])）】]+)[\])）】]`)

	relationSplit = regexp.MustCompile(`[,、，\s]+`)
)

// parseGroup extracts one candidate from a line group. It returns false
// when no headword can be isolated; such groups are dropped silently.
func parseGroup(group []string) (vocab.Candidate, bool) {
	first := ""
	rest := group
	for len(rest) > 0 {
		first = strings.TrimSpace(rest[0])
		rest = rest[1:]
		if first != "" {
			break
		}
	}
	if first == "" {
		return vocab.Candidate{}, false
	}

	display := headwordOf(first)
	if display == "" {
		return vocab.Candidate{}, false
	}

	c := vocab.Candidate{
		Word:        vocab.NormalizeWord(display),
		WordDisplay: display,
	}

	var phoneticEnd int
	if loc := phoneticPattern.FindStringSubmatchIndex(first); loc != nil {
		c.Phonetic = strings.TrimSpace(first[loc[2]:loc[3]])
		phoneticEnd = loc[1]
	}

	if tag, after := firstPOS(first); tag != "" {
		c.POS = tag
		if m := strings.TrimSpace(first[after:]); m != "" {
			c.Meaning = m
		}
	} else if phoneticEnd > 0 {
		// No tag: the text after the closing bracket may be the meaning.
		if m := strings.TrimSpace(first[phoneticEnd:]); m != "" && IsJapaneseMajority(m) {
			c.Meaning = m
		}
	}

	var pending *vocab.Example
	flush := func() {
		if pending != nil {
			c.Examples = append(c.Examples, *pending)
			pending = nil
		}
	}

	for _, raw := range rest {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if words, ok := relationLine(line, synonymMarkers); ok {
			c.Synonyms = append(c.Synonyms, words...)
			continue
		}
		if words, ok := relationLine(line, antonymMarkers); ok {
			c.Antonyms = append(c.Antonyms, words...)
			continue
		}

		if IsJapaneseMajority(line) {
			switch {
			case c.Meaning == "":
				c.Meaning = line
			case pending != nil && pending.Ja == "":
				pending.Ja = line
				flush()
			}
			continue
		}

		if IsLatinMajority(line) {
			// A second source sentence before any translation flushes the
			// prior example as source-only.
			flush()
			pending = &vocab.Example{En: line}
		}
	}
	flush()

	return c, true
}

// headwordOf isolates the headword from the first line of a group.
func headwordOf(line string) string {
	if m := headPattern.FindStringSubmatch(line); m != nil && m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	if m := looseHeadPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// firstPOS returns the first part-of-speech tag in the line along with the
// byte offset just past it.
func firstPOS(line string) (string, int) {
	for i, r := range line {
		if strings.ContainsRune(posTags, r) {
			return string(r), i + len(string(r))
		}
	}
	return "", 0
}

// relationLine parses a synonym or antonym line. The marker glyph is
// stripped and the remainder split on commas, fullwidth commas and
// whitespace; only tokens that open with a Latin letter and are longer
// than one character are kept.
func relationLine(line string, markers string) ([]string, bool) {
	r := []rune(line)
	if len(r) == 0 || !strings.ContainsRune(markers, r[0]) {
		return nil, false
	}
	body := strings.TrimSpace(string(r[1:]))

	var words []string
	for _, tok := range relationSplit.Split(body, -1) {
		if len(tok) < 2 {
			continue
		}
		if first := []rune(tok)[0]; !isLatinRune(first) {
			continue
		}
		words = append(words, tok)
	}
	return words, true
}
