package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surveypulse/surveypulse/internal/analysis"
	"github.com/surveypulse/surveypulse/internal/domain"
)

func testPipeline() (*analysis.Classifier, *analysis.Extractor) {
	cls := analysis.NewClassifier(analysis.DefaultPositiveWords, analysis.DefaultNegativeWords)
	ex := analysis.NewExtractor(analysis.NewStopwords(analysis.DefaultStopwords))
	return cls, ex
}

func withSuggestion(hasInterview bool, text string) domain.Response {
	r := domain.Response{Department: "영업실", Rank: "과장", HasInterview: hasInterview}
	if hasInterview {
		r.Interview = &domain.Interview{Suggestion: text}
	} else {
		r.NoInterview = &domain.NoInterview{Suggestion: text}
	}
	return r
}

func TestAnalyzeSuggestions_Buckets(t *testing.T) {
	cls, ex := testPipeline()
	responses := []domain.Response{
		withSuggestion(true, "팀장님 감사합니다 정말 도움이 되었습니다"),
		withSuggestion(false, "시간이 부족하고 너무 힘들었다"),
		withSuggestion(true, "123456"),
		withSuggestion(true, ""), // empty suggestions are not analyzed
	}

	analytics := AnalyzeSuggestions(responses, cls, ex)

	require.Len(t, analytics.Sentiment, 3)
	positive, neutral, negative := analytics.Sentiment[0], analytics.Sentiment[1], analytics.Sentiment[2]

	assert.Equal(t, "긍정", positive.Name)
	assert.Equal(t, "#00C49F", positive.Fill)
	assert.Equal(t, 1, positive.Value)

	assert.Equal(t, "중립", neutral.Name)
	assert.Equal(t, "#FFBB28", neutral.Fill)
	assert.Equal(t, 1, neutral.Value)

	assert.Equal(t, "부정", negative.Name)
	assert.Equal(t, "#FF8042", negative.Fill)
	assert.Equal(t, 1, negative.Value)
	assert.Equal(t, []string{"시간이 부족하고 너무 힘들었다"}, negative.Texts)
}

func TestAnalyzeSuggestions_KeywordsPerBucket(t *testing.T) {
	cls, ex := testPipeline()
	responses := []domain.Response{
		withSuggestion(true, "면담 감사합니다"),
		withSuggestion(false, "면담 시간 부족"),
	}

	analytics := AnalyzeSuggestions(responses, cls, ex)

	overallWords := words(analytics.Keywords.Overall)
	assert.Contains(t, overallWords, "면담")
	assert.Contains(t, words(analytics.Keywords.Negative), "시간")
	assert.NotContains(t, words(analytics.Keywords.Positive), "시간")
}

func TestAnalyzeSuggestions_EmptySet(t *testing.T) {
	cls, ex := testPipeline()
	analytics := AnalyzeSuggestions(nil, cls, ex)

	for _, bucket := range analytics.Sentiment {
		assert.Equal(t, 0, bucket.Value)
	}
	assert.Empty(t, analytics.Keywords.Overall)
}

func TestAnalyzeLeaderFeedback(t *testing.T) {
	_, ex := testPipeline()
	responses := []domain.LeaderResponse{
		{ID: 1, Department: "본사", Feedback: "면담 제도가 도움이 되었습니다"},
		{ID: 2, Department: "부산공장 및 기술연구소", Feedback: "면담 일정 조율이 어려웠습니다"},
	}

	results := AnalyzeLeaderFeedback(responses, ex)
	assert.Equal(t, 2, results.TotalCount)
	assert.Len(t, results.Responses, 2)
	assert.Contains(t, words(results.Keywords), "면담")
}

func TestAnalyzeLeaderFeedback_Empty(t *testing.T) {
	_, ex := testPipeline()
	results := AnalyzeLeaderFeedback(nil, ex)
	assert.Equal(t, 0, results.TotalCount)
	assert.Empty(t, results.Keywords)
}

func words(entries []domain.KeywordEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Word)
	}
	return out
}
