package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInterviewResponse() *Response {
	return &Response{
		Department:   "영업실",
		Rank:         "과장",
		HasInterview: true,
		Interview: &Interview{
			Time:         "10~20분",
			Method:       "대면",
			Guidance:     "충분히 받았다",
			Satisfaction: "만족",
			Scores:       []int{5, 5, 4, 6, 3},
			Suggestion:   "감사합니다",
		},
	}
}

func validNoInterviewResponse() *Response {
	return &Response{
		Department:   "기획실",
		Rank:         "대리",
		HasInterview: false,
		NoInterview: &NoInterview{
			Reasons:    []string{"일정상 어려움"},
			Suggestion: "다음에는 꼭 진행되었으면 합니다",
		},
	}
}

func TestResponseValidate_Valid(t *testing.T) {
	assert.NoError(t, validInterviewResponse().Validate())
	assert.NoError(t, validNoInterviewResponse().Validate())
}

func TestResponseValidate_UnknownDepartment(t *testing.T) {
	r := validInterviewResponse()
	r.Department = "없는부서"
	err := r.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestResponseValidate_UnknownRank(t *testing.T) {
	r := validInterviewResponse()
	r.Rank = "인턴"
	assert.ErrorIs(t, r.Validate(), ErrInvalidSubmission)
}

func TestResponseValidate_BranchInvariant(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Response)
	}{
		{"interview branch without answers", func(r *Response) { r.Interview = nil }},
		{"interview branch with both payloads", func(r *Response) { r.NoInterview = &NoInterview{Reasons: []string{"일정상 어려움"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validInterviewResponse()
			tt.mutate(r)
			assert.ErrorIs(t, r.Validate(), ErrInvalidSubmission)
		})
	}

	t.Run("no-interview branch without answers", func(t *testing.T) {
		r := validNoInterviewResponse()
		r.NoInterview = nil
		assert.ErrorIs(t, r.Validate(), ErrInvalidSubmission)
	})
}

func TestResponseValidate_ScoreBounds(t *testing.T) {
	r := validInterviewResponse()
	r.Interview.Scores = []int{5, 5, 4, 7, 3}
	assert.ErrorIs(t, r.Validate(), ErrInvalidSubmission)

	r.Interview.Scores = []int{5, 5, 4, -1, 3}
	assert.ErrorIs(t, r.Validate(), ErrInvalidSubmission)

	r.Interview.Scores = []int{5, 5, 4}
	assert.ErrorIs(t, r.Validate(), ErrInvalidSubmission)
}

func TestResponseValidate_OtherMethodAllowed(t *testing.T) {
	r := validInterviewResponse()
	r.Interview.Method = OtherValue
	r.Interview.MethodOther = "메신저"
	assert.NoError(t, r.Validate())
}

func TestResponseValidate_OtherReasonNeedsText(t *testing.T) {
	r := validNoInterviewResponse()
	r.NoInterview.Reasons = []string{OtherValue}
	r.NoInterview.ReasonOther = ""
	assert.ErrorIs(t, r.Validate(), ErrInvalidSubmission)

	r.NoInterview.ReasonOther = "출장 중이었음"
	assert.NoError(t, r.Validate())
}

func TestSuggestion_RoutedByBranch(t *testing.T) {
	yes := validInterviewResponse()
	text, ok := yes.Suggestion()
	assert.True(t, ok)
	assert.Equal(t, "감사합니다", text)

	no := validNoInterviewResponse()
	text, ok = no.Suggestion()
	assert.True(t, ok)
	assert.Equal(t, "다음에는 꼭 진행되었으면 합니다", text)

	no.NoInterview.Suggestion = ""
	_, ok = no.Suggestion()
	assert.False(t, ok)
}

func TestMethodLabel_FoldsOther(t *testing.T) {
	iv := &Interview{Method: OtherValue, MethodOther: "메신저"}
	assert.Equal(t, "기타(메신저)", iv.MethodLabel())

	iv = &Interview{Method: "대면"}
	assert.Equal(t, "대면", iv.MethodLabel())
}

func TestReasonLabels_FoldsOther(t *testing.T) {
	ni := &NoInterview{Reasons: []string{"일정상 어려움", OtherValue}, ReasonOther: "출장"}
	assert.Equal(t, []string{"일정상 어려움", "기타(출장)"}, ni.ReasonLabels())
}

func TestLeaderResponseValidate(t *testing.T) {
	lr := &LeaderResponse{Department: "본사", Feedback: "수고 많으셨습니다"}
	assert.NoError(t, lr.Validate())

	missing := &LeaderResponse{Department: "", Feedback: "의견"}
	assert.ErrorIs(t, missing.Validate(), ErrInvalidSubmission)

	missing = &LeaderResponse{Department: "본사", Feedback: "   "}
	assert.ErrorIs(t, missing.Validate(), ErrInvalidSubmission)

	unknown := &LeaderResponse{Department: "해외지사", Feedback: "의견"}
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidSubmission)
}
