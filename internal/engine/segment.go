package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// conjunctions are the coordinating indicators that mark a compound query
// when no sentence boundary does.
var conjunctions = []string{"and", "but", "also", "plus", "additionally"}

// Segment splits a raw utterance into one or more candidate sub-queries.
// Sentence terminators win; otherwise the first whitespace-surrounded
// coordinating conjunction splits the original string in two. This is a
// heuristic, not a parser: an incidental "and" will split ("fish and chips"
// becomes two sub-queries), which is an accepted limitation.
func Segment(rawInput string) []string {
	var sentences []string
	for _, part := range strings.FieldsFunc(rawInput, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	if len(sentences) >= 2 {
		return sentences
	}

	if left, right, ok := splitOnConjunction(rawInput); ok {
		return []string{left, right}
	}

	if trimmed := strings.TrimSpace(rawInput); trimmed != "" {
		return []string{trimmed}
	}
	return []string{rawInput}
}

// splitOnConjunction splits the original input on the earliest conjunction
// that stands as its own word. Boundaries are non-word runes rather than
// literal spaces, so punctuation hugging the conjunction ("fuel ,and
// emissions") still splits the way the normalized text reads.
func splitOnConjunction(raw string) (string, string, bool) {
	lower := strings.ToLower(raw)
	bestIdx, bestLen := -1, 0
	for _, conj := range conjunctions {
		if idx := indexWord(lower, conj); idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			bestIdx, bestLen = idx, len(conj)
		}
	}
	if bestIdx < 0 {
		return "", "", false
	}
	left := strings.TrimSpace(raw[:bestIdx])
	right := strings.TrimSpace(raw[bestIdx+bestLen:])
	if Normalize(left) == "" || Normalize(right) == "" {
		return "", "", false
	}
	return left, right, true
}

// indexWord finds the first occurrence of w in s that is not part of a
// larger word.
func indexWord(s, w string) int {
	for from := 0; from < len(s); {
		idx := strings.Index(s[from:], w)
		if idx < 0 {
			return -1
		}
		idx += from
		if wordBounded(s, idx, len(w)) {
			return idx
		}
		from = idx + len(w)
	}
	return -1
}

func wordBounded(s string, idx, length int) bool {
	if before, _ := utf8.DecodeLastRuneInString(s[:idx]); idx > 0 && isWordRune(before) {
		return false
	}
	if after, _ := utf8.DecodeRuneInString(s[idx+length:]); idx+length < len(s) && isWordRune(after) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
