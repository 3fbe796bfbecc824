package engine

// fuzzyThreshold is the minimum normalized similarity treated as a match.
// The conservative variant: short of it, typo tolerance produces more noise
// than signal.
const fuzzyThreshold = 0.7

// minFuzzyLen is the shortest word worth fuzzy-comparing; below it nearly
// everything is within an edit or two of everything else.
const minFuzzyLen = 3

// Levenshtein computes the edit distance between two strings using a
// single-row DP over runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, lb+1)
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, minInt(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// Similarity returns 1 - distance/maxLen in [0,1]. Two empty strings are
// defined as identical.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
