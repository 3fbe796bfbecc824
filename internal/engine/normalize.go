package engine

import "strings"

// Normalize lowercases text, strips sentence punctuation and collapses
// whitespace runs. It is idempotent and total: any input, including the
// empty string, produces a valid (possibly empty) result.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch r {
		case '.', ',', '!', '?', ';', ':':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Words splits normalized text into tokens.
func Words(normalized string) []string {
	return strings.Fields(normalized)
}

// Stem applies light plural and verb-suffix removal to a single word.
// Words shorter than 4 characters pass through unchanged.
func Stem(word string) string {
	w := word
	if len(w) < 4 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ies"):
		w = w[:len(w)-3] + "y"
	case hasSibilantES(w):
		w = w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		w = w[:len(w)-1]
	}
	// verb suffixes come off independently of the plural rules
	switch {
	case strings.HasSuffix(w, "ing"):
		w = w[:len(w)-3]
	case strings.HasSuffix(w, "ed"):
		w = w[:len(w)-2]
	}
	return w
}

// StemAll stems every word in place order.
func StemAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Stem(w)
	}
	return out
}

func hasSibilantES(w string) bool {
	for _, suffix := range []string{"ses", "xes", "zes", "ches", "shes"} {
		if strings.HasSuffix(w, suffix) {
			return true
		}
	}
	return false
}
