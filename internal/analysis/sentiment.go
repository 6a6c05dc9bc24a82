package analysis

import "strings"

// Sentiment is the classification result for a single text.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
)

// Classifier scores texts against fixed positive and negative keyword lists.
// It is stateless; Classify is a pure function.
type Classifier struct {
	positive []string
	negative []string
}

// NewClassifier builds a classifier from injected word lists.
func NewClassifier(positive, negative []string) *Classifier {
	return &Classifier{positive: positive, negative: negative}
}

// Classify counts, for each list, how many of its entries occur as a
// substring anywhere in text. Each entry contributes at most one hit no
// matter how often it occurs. The larger side wins; ties (including 0-0,
// and therefore the empty text) are neutral.
func (c *Classifier) Classify(text string) Sentiment {
	if text == "" {
		return Neutral
	}

	pos := countHits(text, c.positive)
	neg := countHits(text, c.negative)

	switch {
	case pos > neg:
		return Positive
	case neg > pos:
		return Negative
	default:
		return Neutral
	}
}

func countHits(text string, words []string) int {
	hits := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			hits++
		}
	}
	return hits
}
