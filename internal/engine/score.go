package engine

import "strings"

// Score weights. A whole-word keyword hit is worth twice a bare substring
// hit; stems and synonyms contribute less than direct matches; matching
// several distinct keywords earns a compounding bonus.
const (
	wholeWordWeight  = 3.0
	substringWeight  = 1.5
	fuzzyWeight      = 2.0
	stemWeight       = 2.0
	synonymWeight    = 1.5
	multiMatchWeight = 2.0
)

// synonyms maps entry keywords to alternative words a user might type.
var synonyms = map[string][]string{
	"electric":  {"ev", "evs", "tesla", "battery"},
	"fuel":      {"gas", "gasoline", "petrol"},
	"emissions": {"co2", "carbon", "pollution", "exhaust"},
	"reduce":    {"cut", "lower", "decrease", "minimize"},
	"hybrid":    {"phev", "prius"},
	"tax":       {"taxes", "deduction"},
	"rebate":    {"rebates", "subsidy", "subsidies"},
	"health":    {"asthma", "lungs", "respiratory"},
	"predict":   {"estimate", "forecast"},
	"buy":       {"purchase", "shopping", "upgrade"},
}

// query is one sub-query in the shapes the scorer needs.
type query struct {
	raw        string
	normalized string
	words      []string
	stems      []string
}

func newQuery(raw string) query {
	norm := Normalize(raw)
	words := Words(norm)
	return query{
		raw:        raw,
		normalized: norm,
		words:      words,
		stems:      StemAll(words),
	}
}

// scoreEntry computes the relevance of one knowledge entry for one
// sub-query. Entries that require a prediction score zero without one.
func scoreEntry(entry KnowledgeEntry, q query, hasPrediction bool) float64 {
	if entry.RequiresPrediction && !hasPrediction {
		return 0
	}

	total := 0.0
	matched := 0
	for _, keyword := range entry.Keywords {
		contributed := false

		if strings.Contains(q.normalized, keyword) {
			if hasWholeWord(q.normalized, keyword) {
				total += wholeWordWeight
			} else {
				total += substringWeight
			}
			contributed = true
		} else if len(keyword) >= minFuzzyLen && !strings.Contains(keyword, " ") {
			// at most one fuzzy credit per keyword
			for _, w := range q.words {
				if len(w) < minFuzzyLen {
					continue
				}
				if sim := Similarity(w, keyword); sim >= fuzzyThreshold {
					total += sim * fuzzyWeight
					contributed = true
					break
				}
			}
		}

		if !strings.Contains(keyword, " ") && hasWord(q.stems, Stem(keyword)) {
			total += stemWeight
			contributed = true
		}

		if syns, ok := synonyms[keyword]; ok {
			for _, syn := range syns {
				if hasWord(q.words, syn) {
					total += synonymWeight
					contributed = true
					break
				}
			}
		}

		if contributed {
			matched++
		}
	}

	if matched > 1 {
		total += multiMatchWeight * float64(matched)
	}
	return total * entry.Priority
}

// selectEntry picks the highest-scoring entry for a sub-query. Ties go to
// the earliest entry in registry order, which keeps selection deterministic.
func selectEntry(reg *Registry, q query, hasPrediction bool) (*KnowledgeEntry, float64) {
	var best *KnowledgeEntry
	bestScore := 0.0
	for i := range reg.entries {
		score := scoreEntry(reg.entries[i], q, hasPrediction)
		if score > bestScore {
			best = &reg.entries[i]
			bestScore = score
		}
	}
	return best, bestScore
}

func hasWholeWord(normalized, keyword string) bool {
	return strings.Contains(" "+normalized+" ", " "+keyword+" ")
}
