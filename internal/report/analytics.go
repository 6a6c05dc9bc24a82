package report

import (
	"github.com/surveypulse/surveypulse/internal/analysis"
	"github.com/surveypulse/surveypulse/internal/domain"
)

// Dashboard labels and chart colors for the three sentiment buckets.
const (
	positiveLabel = "긍정"
	neutralLabel  = "중립"
	negativeLabel = "부정"

	positiveFill = "#00C49F"
	neutralFill  = "#FFBB28"
	negativeFill = "#FF8042"
)

// KeywordSets holds the keyword tables for all suggestions and for each
// sentiment class separately.
type KeywordSets struct {
	Overall  []domain.KeywordEntry `json:"overall"`
	Positive []domain.KeywordEntry `json:"positive"`
	Negative []domain.KeywordEntry `json:"negative"`
}

// TextAnalytics is the sentiment and keyword view of the free-text
// suggestions in a response set.
type TextAnalytics struct {
	Sentiment []domain.SentimentBucket `json:"sentiment"`
	Keywords  KeywordSets              `json:"keywords"`
}

// AnalyzeSuggestions routes each response's suggestion text by branch,
// classifies it, and builds the bucket counts plus keyword frequency tables.
func AnalyzeSuggestions(responses []domain.Response, cls *analysis.Classifier, ex *analysis.Extractor) TextAnalytics {
	var all, positive, neutral, negative []string

	for _, r := range responses {
		text, ok := r.Suggestion()
		if !ok {
			continue
		}
		all = append(all, text)
		switch cls.Classify(text) {
		case analysis.Positive:
			positive = append(positive, text)
		case analysis.Negative:
			negative = append(negative, text)
		default:
			neutral = append(neutral, text)
		}
	}

	return TextAnalytics{
		Sentiment: []domain.SentimentBucket{
			{Name: positiveLabel, Value: len(positive), Fill: positiveFill, Texts: positive},
			{Name: neutralLabel, Value: len(neutral), Fill: neutralFill, Texts: neutral},
			{Name: negativeLabel, Value: len(negative), Fill: negativeFill, Texts: negative},
		},
		Keywords: KeywordSets{
			Overall:  ex.Extract(all, analysis.DefaultTopKeywords),
			Positive: ex.Extract(positive, analysis.DefaultTopKeywords),
			Negative: ex.Extract(negative, analysis.DefaultTopKeywords),
		},
	}
}

// Results is the full dashboard payload for the team-member survey.
type Results struct {
	Responses []domain.Response `json:"responses"`
	Summary   Summary           `json:"summary"`
	Analytics TextAnalytics     `json:"analytics"`
}

// LeaderResults is the dashboard payload for leader feedback: the raw
// responses plus a top-20 keyword table over all feedback texts.
type LeaderResults struct {
	Responses  []domain.LeaderResponse `json:"responses"`
	TotalCount int                     `json:"totalCount"`
	Keywords   []domain.KeywordEntry   `json:"keywords"`
}

// AnalyzeLeaderFeedback builds the leader dashboard payload.
func AnalyzeLeaderFeedback(responses []domain.LeaderResponse, ex *analysis.Extractor) LeaderResults {
	texts := make([]string, 0, len(responses))
	for _, lr := range responses {
		if lr.Feedback != "" {
			texts = append(texts, lr.Feedback)
		}
	}
	return LeaderResults{
		Responses:  responses,
		TotalCount: len(responses),
		Keywords:   ex.Extract(texts, analysis.DefaultLeaderTopKeywords),
	}
}
