package engine

import (
	"regexp"
	"strings"
)

// maxInputLen bounds worst-case scoring cost; longer inputs are cut down to
// their first sentences before matching.
const maxInputLen = 200

const maxTruncatedSentences = 3

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<\s*script\b[^>]*>.*?<\s*/\s*script\s*>`)
	scriptTagRe   = regexp.MustCompile(`(?i)<\s*/?\s*script\b[^>]*>`)
	iframeBlockRe = regexp.MustCompile(`(?is)<\s*iframe\b[^>]*>.*?<\s*/\s*iframe\s*>`)
	iframeTagRe   = regexp.MustCompile(`(?i)<\s*/?\s*iframe\b[^>]*>`)
	jsURIRe       = regexp.MustCompile(`(?i)javascript\s*:`)
	eventAttrRe   = regexp.MustCompile(`(?i)\son\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
)

// Sanitize strips script/iframe markup, javascript: URIs and inline event
// handlers from user input, then truncates oversized input. Stripping is
// lossy and silent, and repeats until a pass removes nothing, so tags that
// reassemble from nested fragments are still caught.
func Sanitize(rawInput string) string {
	s := rawInput
	// terminates because every replacement strictly shrinks the string
	for {
		prev := s
		s = scriptBlockRe.ReplaceAllString(s, "")
		s = scriptTagRe.ReplaceAllString(s, "")
		s = iframeBlockRe.ReplaceAllString(s, "")
		s = iframeTagRe.ReplaceAllString(s, "")
		s = jsURIRe.ReplaceAllString(s, "")
		s = eventAttrRe.ReplaceAllString(s, "")
		if s == prev {
			break
		}
	}
	return truncateLong(s)
}

// truncateLong keeps the first few sentence segments of oversized input.
func truncateLong(s string) string {
	runes := []rune(s)
	if len(runes) <= maxInputLen {
		return s
	}

	seen := 0
	for i, r := range runes {
		if r == '.' || r == '!' || r == '?' {
			seen++
			if seen == maxTruncatedSentences {
				return strings.TrimSpace(string(runes[:i+1]))
			}
		}
	}
	// fewer sentence boundaries than the cap: hard cut
	return strings.TrimSpace(string(runes[:maxInputLen]))
}
