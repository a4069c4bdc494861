package segmenter

import (
	"regexp"
	"strings"
)

var nonLetter = regexp.MustCompile(`[^a-zA-Z']`)

// cleanWord lowercases and strips punctuation for vocabulary matching.
func cleanWord(word string) string {
	return strings.ToLower(nonLetter.ReplaceAllString(word, ""))
}

// Punctuation classes at the end of a word.
const (
	puncNone        = "none"
	puncSentenceEnd = "sentence_end"
	puncClauseEnd   = "clause_end"
	puncComma       = "comma"
)

// punctuationType detects the punctuation class at the end of a word.
func punctuationType(word string) string {
	stripped := strings.TrimRight(word, " \t\n\v\f\r")
	switch {
	case strings.HasSuffix(stripped, ".") || strings.HasSuffix(stripped, "!") || strings.HasSuffix(stripped, "?"):
		return puncSentenceEnd
	case strings.HasSuffix(stripped, ","):
		return puncComma
	case strings.HasSuffix(stripped, ";") || strings.HasSuffix(stripped, ":") ||
		strings.HasSuffix(stripped, "—") || strings.HasSuffix(stripped, "–") ||
		strings.HasSuffix(stripped, "-"):
		return puncClauseEnd
	}
	return puncNone
}

// BreakScore rates how good a break point the given word is, 0-20.
// Higher is better. nextGap is the silence before the following word and
// nextWord its text; pass 0 and "" at the end of the sequence.
//
// Factors: trailing punctuation (0-8), silence gap (0-6), a mood-shift word
// following (0-3), the word itself being a visual noun or action verb (0-3).
func BreakScore(word string, nextGap float64, nextWord string) int {
	score := 0

	switch punctuationType(word) {
	case puncSentenceEnd:
		score += 8
	case puncClauseEnd:
		score += 5
	case puncComma:
		score += 3
	}

	switch {
	case nextGap >= 0.5:
		score += 6
	case nextGap >= 0.3:
		score += 4
	case nextGap >= 0.15:
		score += 2
	}

	if nextWord != "" && moodShiftWords[cleanWord(nextWord)] {
		score += 3
	}

	current := cleanWord(word)
	if visualNouns[current] {
		score += 2
	}
	if actionVerbs[current] {
		score += 1
	}

	return score
}
