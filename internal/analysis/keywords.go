package analysis

import (
	"math"
	"sort"

	"github.com/surveypulse/surveypulse/internal/domain"
)

// Default top-N limits for the two keyword tables on the dashboard.
const (
	DefaultTopKeywords       = 10
	DefaultLeaderTopKeywords = 20
)

// Extractor ranks content-word frequencies across a text collection.
type Extractor struct {
	stopwords Stopwords
}

// NewExtractor builds an extractor using the given stopword set.
func NewExtractor(stopwords Stopwords) *Extractor {
	return &Extractor{stopwords: stopwords}
}

// Extract tokenizes every text, drops stopwords, counts occurrences per
// distinct word, and returns the topN entries sorted by descending count.
// Ties keep the order in which words were first encountered. Ratio is each
// count's percentage share of the total retained occurrences, rounded to
// one decimal place; an empty collection yields an empty result and never
// divides by zero.
func (e *Extractor) Extract(texts []string, topN int) []domain.KeywordEntry {
	counts := make(map[string]int)
	var order []string
	total := 0

	for _, text := range texts {
		for tok := range Tokens(text) {
			if !e.stopwords.IsContent(tok) {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
			total++
		}
	}

	entries := make([]domain.KeywordEntry, 0, len(order))
	for _, w := range order {
		entries = append(entries, domain.KeywordEntry{Word: w, Count: counts[w]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if topN >= 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	for i := range entries {
		if total > 0 {
			entries[i].Ratio = round1(float64(entries[i].Count) / float64(total) * 100)
		}
	}
	return entries
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
