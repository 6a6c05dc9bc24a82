package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultPositiveWords, DefaultNegativeWords)
}

func TestClassify_Positive(t *testing.T) {
	// "감사" and "도움" hit the positive list, nothing hits the negative one.
	got := newTestClassifier().Classify("팀장님 감사합니다 정말 도움이 되었습니다")
	assert.Equal(t, Positive, got)
}

func TestClassify_Negative(t *testing.T) {
	// "시간", "부족", "힘들" all hit the negative list.
	got := newTestClassifier().Classify("시간이 부족하고 너무 힘들었다")
	assert.Equal(t, Negative, got)
}

func TestClassify_EmptyIsNeutral(t *testing.T) {
	assert.Equal(t, Neutral, newTestClassifier().Classify(""))
}

func TestClassify_NoHitsIsNeutral(t *testing.T) {
	assert.Equal(t, Neutral, newTestClassifier().Classify("123456"))
}

func TestClassify_TieIsNeutral(t *testing.T) {
	// One hit per side.
	cls := NewClassifier([]string{"좋"}, []string{"힘들"})
	assert.Equal(t, Neutral, cls.Classify("좋지만 힘들다"))
}

func TestClassify_EntryCountsOnce(t *testing.T) {
	// "좋" occurs twice but contributes one hit; two distinct negative
	// entries outweigh it.
	cls := NewClassifier([]string{"좋"}, []string{"힘들", "부족"})
	assert.Equal(t, Negative, cls.Classify("좋고 좋지만 힘들고 부족하다"))
}

func TestClassify_AlwaysReturnsKnownClass(t *testing.T) {
	cls := newTestClassifier()
	for _, text := range []string{"", "아무 내용", "감사", "힘들", "abc 123"} {
		got := cls.Classify(text)
		assert.Contains(t, []Sentiment{Positive, Neutral, Negative}, got)
	}
}
