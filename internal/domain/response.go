package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Enumerated answer sets for the team-member survey. The labels are the
// exact strings the survey form presents, so stored records and chart
// buckets share one vocabulary.
var (
	Departments = []string{"기획실", "구매실", "지원실", "영업실", "공장장 직속", "생산담당", "관리담당", "기술연구소"}
	Ranks       = []string{"부장", "부부장", "차장", "과장", "대리", "사원"}

	InterviewTimes   = []string{"10분 미만", "10~20분", "20~40분", "40분 이상"}
	InterviewMethods = []string{"대면", "화상", "전화"}
	GuidanceLevels   = []string{"전혀 받지 못했다", "충분하지 않게 받았다", "어느 정도 받았다", "충분히 받았다"}
	Satisfactions    = []string{"만족", "불만족"}

	NoInterviewReasons = []string{"일정상 어려움", "메신저/문서 등 다른 방식으로 대체", "팀장 측에서 진행하지 않음"}
)

// OtherValue marks a free-text "other" choice for method and reason fields.
const OtherValue = "other"

// ScoreCount is the number of quality statements scored per interview.
const ScoreCount = 5

// Score bounds for the quality statements (inclusive).
const (
	MinScore = 0
	MaxScore = 6
)

// Interview holds the answers of a respondent whose interview took place.
type Interview struct {
	Time         string `json:"time"`
	Method       string `json:"method"`
	MethodOther  string `json:"methodOther,omitempty"`
	Guidance     string `json:"guidance"`
	Satisfaction string `json:"satisfaction"`
	Scores       []int  `json:"scores"`
	Suggestion   string `json:"suggestion,omitempty"`
}

// MethodLabel returns the display label for the interview method, folding a
// free-text "other" answer into a labeled bucket.
func (iv *Interview) MethodLabel() string {
	if iv.Method == OtherValue {
		return fmt.Sprintf("기타(%s)", iv.MethodOther)
	}
	return iv.Method
}

// NoInterview holds the answers of a respondent whose interview did not
// take place.
type NoInterview struct {
	Reasons     []string `json:"reasons"`
	ReasonOther string   `json:"reasonOther,omitempty"`
	Suggestion  string   `json:"suggestion,omitempty"`
}

// ReasonLabels returns the selected reasons with the "other" choice folded
// into a labeled bucket.
func (ni *NoInterview) ReasonLabels() []string {
	labels := make([]string, 0, len(ni.Reasons))
	for _, r := range ni.Reasons {
		if r == OtherValue {
			labels = append(labels, fmt.Sprintf("기타(%s)", ni.ReasonOther))
			continue
		}
		labels = append(labels, r)
	}
	return labels
}

// Response is one team-member survey submission. HasInterview selects which
// branch payload is populated; exactly one of Interview / NoInterview is
// non-nil on a valid record.
type Response struct {
	ID           int64        `json:"id"`
	SubmittedAt  time.Time    `json:"submittedAt"`
	Department   string       `json:"department"`
	Rank         string       `json:"rank"`
	HasInterview bool         `json:"hasInterview"`
	Interview    *Interview   `json:"interview,omitempty"`
	NoInterview  *NoInterview `json:"noInterview,omitempty"`
}

// Suggestion returns the free-text suggestion routed by branch, and whether
// a non-empty suggestion exists.
func (r *Response) Suggestion() (string, bool) {
	var s string
	if r.HasInterview {
		if r.Interview != nil {
			s = r.Interview.Suggestion
		}
	} else if r.NoInterview != nil {
		s = r.NoInterview.Suggestion
	}
	return s, s != ""
}

// Validate checks a submission before persistence: enum membership, the
// one-branch invariant, and score bounds.
func (r *Response) Validate() error {
	if !slices.Contains(Departments, r.Department) {
		return fmt.Errorf("%w: unknown department %q", ErrInvalidSubmission, r.Department)
	}
	if !slices.Contains(Ranks, r.Rank) {
		return fmt.Errorf("%w: unknown rank %q", ErrInvalidSubmission, r.Rank)
	}

	if r.HasInterview {
		if r.Interview == nil || r.NoInterview != nil {
			return fmt.Errorf("%w: interview branch requires interview answers only", ErrInvalidSubmission)
		}
		return r.Interview.validate()
	}

	if r.NoInterview == nil || r.Interview != nil {
		return fmt.Errorf("%w: no-interview branch requires no-interview answers only", ErrInvalidSubmission)
	}
	return r.NoInterview.validate()
}

func (iv *Interview) validate() error {
	if !slices.Contains(InterviewTimes, iv.Time) {
		return fmt.Errorf("%w: unknown interview time %q", ErrInvalidSubmission, iv.Time)
	}
	if iv.Method != OtherValue && !slices.Contains(InterviewMethods, iv.Method) {
		return fmt.Errorf("%w: unknown interview method %q", ErrInvalidSubmission, iv.Method)
	}
	if !slices.Contains(GuidanceLevels, iv.Guidance) {
		return fmt.Errorf("%w: unknown guidance level %q", ErrInvalidSubmission, iv.Guidance)
	}
	if !slices.Contains(Satisfactions, iv.Satisfaction) {
		return fmt.Errorf("%w: unknown satisfaction %q", ErrInvalidSubmission, iv.Satisfaction)
	}
	if len(iv.Scores) != ScoreCount {
		return fmt.Errorf("%w: expected %d scores, got %d", ErrInvalidSubmission, ScoreCount, len(iv.Scores))
	}
	for i, s := range iv.Scores {
		if s < MinScore || s > MaxScore {
			return fmt.Errorf("%w: score %d for statement %d out of range", ErrInvalidSubmission, s, i+1)
		}
	}
	return nil
}

func (ni *NoInterview) validate() error {
	if len(ni.Reasons) == 0 {
		return fmt.Errorf("%w: at least one reason is required", ErrInvalidSubmission)
	}
	for _, r := range ni.Reasons {
		if r != OtherValue && !slices.Contains(NoInterviewReasons, r) {
			return fmt.Errorf("%w: unknown reason %q", ErrInvalidSubmission, r)
		}
	}
	if slices.Contains(ni.Reasons, OtherValue) && strings.TrimSpace(ni.ReasonOther) == "" {
		return fmt.Errorf("%w: reason text is required when selecting other", ErrInvalidSubmission)
	}
	return nil
}

// ResponseRepository abstracts team-member response persistence. Append is
// atomic: a record is either fully stored or not stored at all. ListAll
// returns a consistent snapshot in creation order.
type ResponseRepository interface {
	ListAll(ctx context.Context) ([]Response, error)
	Append(ctx context.Context, r *Response) error
}
