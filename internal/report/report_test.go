package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surveypulse/surveypulse/internal/domain"
)

func interviewed(department, rank string, scores []int, satisfaction string) domain.Response {
	return domain.Response{
		Department:   department,
		Rank:         rank,
		HasInterview: true,
		Interview: &domain.Interview{
			Time:         "10~20분",
			Method:       "대면",
			Guidance:     "충분히 받았다",
			Satisfaction: satisfaction,
			Scores:       scores,
		},
	}
}

func notInterviewed(department, rank string) domain.Response {
	return domain.Response{
		Department:   department,
		Rank:         rank,
		HasInterview: false,
		NoInterview:  &domain.NoInterview{Reasons: []string{"일정상 어려움"}},
	}
}

func TestApply_DepartmentFilter(t *testing.T) {
	responses := []domain.Response{
		interviewed("영업실", "과장", []int{5, 5, 5, 5, 5}, "만족"),
		notInterviewed("영업실", "대리"),
		interviewed("기획실", "과장", []int{4, 4, 4, 4, 4}, "만족"),
		notInterviewed("구매실", "사원"),
		interviewed("지원실", "부장", []int{3, 3, 3, 3, 3}, "불만족"),
		notInterviewed("생산담당", "차장"),
		interviewed("관리담당", "과장", []int{2, 2, 2, 2, 2}, "만족"),
		notInterviewed("기술연구소", "사원"),
		interviewed("공장장 직속", "대리", []int{6, 6, 6, 6, 6}, "만족"),
		notInterviewed("기획실", "부부장"),
	}

	filtered := Apply(responses, Filter{Department: "영업실", Rank: FilterAll})
	require.Len(t, filtered, 2)

	summary := Summarize(filtered)
	assert.Equal(t, 2, summary.Overview.Total)
	assert.Equal(t, 1, summary.Overview.Interviewed)
	assert.Equal(t, 1, summary.Overview.NotInterviewed)
	assert.Equal(t, 50.0, summary.Overview.InterviewedPct)
}

func TestApply_RankAndDepartmentCombine(t *testing.T) {
	responses := []domain.Response{
		interviewed("영업실", "과장", []int{5, 5, 5, 5, 5}, "만족"),
		interviewed("영업실", "대리", []int{4, 4, 4, 4, 4}, "만족"),
		interviewed("기획실", "과장", []int{3, 3, 3, 3, 3}, "만족"),
	}

	filtered := Apply(responses, Filter{Department: "영업실", Rank: "과장"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "과장", filtered[0].Rank)
}

func TestApply_EmptyFilterMatchesAll(t *testing.T) {
	responses := []domain.Response{
		interviewed("영업실", "과장", []int{5, 5, 5, 5, 5}, "만족"),
		notInterviewed("기획실", "대리"),
	}
	assert.Len(t, Apply(responses, Filter{}), 2)
	assert.Len(t, Apply(responses, Filter{Department: FilterAll, Rank: FilterAll}), 2)
}

func TestSummarize_EmptySet(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Overview.Total)
	assert.Equal(t, 0.0, summary.Overview.InterviewedPct)
	assert.Equal(t, 0.0, summary.Overview.NotInterviewedPct)

	// Both satisfaction buckets present at zero.
	require.Len(t, summary.Satisfaction, 2)
	assert.Equal(t, CountItem{Name: "만족", Value: 0}, summary.Satisfaction[0])
	assert.Equal(t, CountItem{Name: "불만족", Value: 0}, summary.Satisfaction[1])

	require.Len(t, summary.Statements, 5)
	for _, st := range summary.Statements {
		assert.Equal(t, 0.0, st.Average)
		assert.Equal(t, 0, st.Count)
	}
}

func TestSummarize_PercentagesOneDecimal(t *testing.T) {
	responses := []domain.Response{
		interviewed("영업실", "과장", []int{5, 5, 5, 5, 5}, "만족"),
		interviewed("영업실", "대리", []int{4, 4, 4, 4, 4}, "만족"),
		notInterviewed("영업실", "사원"),
	}
	summary := Summarize(responses)
	assert.Equal(t, 66.7, summary.Overview.InterviewedPct)
	assert.Equal(t, 33.3, summary.Overview.NotInterviewedPct)
}

func TestSummarize_StatementStats(t *testing.T) {
	responses := []domain.Response{
		interviewed("영업실", "과장", []int{5, 0, 0, 0, 0}, "만족"),
		interviewed("영업실", "대리", []int{5, 0, 0, 0, 0}, "만족"),
		interviewed("영업실", "사원", []int{4, 0, 0, 0, 0}, "만족"),
	}

	summary := Summarize(responses)
	st := summary.Statements[0]
	assert.Equal(t, 14, st.Sum)
	assert.Equal(t, 3, st.Count)
	assert.Equal(t, 4.67, st.Average)
	assert.Equal(t, 2, st.Histogram[5])
	assert.Equal(t, 1, st.Histogram[4])
	for _, score := range []int{0, 1, 2, 3, 6} {
		assert.Equal(t, 0, st.Histogram[score], "score %d", score)
	}
}

func TestSummarize_MethodOtherFolded(t *testing.T) {
	r := interviewed("영업실", "과장", []int{1, 1, 1, 1, 1}, "만족")
	r.Interview.Method = domain.OtherValue
	r.Interview.MethodOther = "메신저"

	summary := Summarize([]domain.Response{r})
	require.Len(t, summary.Methods, 1)
	assert.Equal(t, "기타(메신저)", summary.Methods[0].Name)
	assert.Equal(t, 1, summary.Methods[0].Value)
}

func TestSummarize_DistributionsYesBranchOnly(t *testing.T) {
	responses := []domain.Response{
		interviewed("영업실", "과장", []int{1, 1, 1, 1, 1}, "만족"),
		notInterviewed("영업실", "대리"),
	}
	summary := Summarize(responses)

	assert.Equal(t, []CountItem{{Name: "10~20분", Value: 1}}, summary.Times)
	assert.Equal(t, []CountItem{{Name: "충분히 받았다", Value: 1}}, summary.Guidance)
	assert.Equal(t, 1, summary.Satisfaction[0].Value)
	assert.Equal(t, 0, summary.Satisfaction[1].Value)
}

func TestSummarize_Idempotent(t *testing.T) {
	responses := []domain.Response{
		interviewed("영업실", "과장", []int{5, 4, 3, 2, 1}, "만족"),
		notInterviewed("기획실", "대리"),
	}
	assert.Equal(t, Summarize(responses), Summarize(responses))
}
