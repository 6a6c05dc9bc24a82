package report

import (
	"math"

	"github.com/surveypulse/surveypulse/internal/domain"
)

// FilterAll matches every value of a filter dimension.
const FilterAll = "all"

// Filter restricts a report to one department and/or rank. Empty values are
// treated as "all".
type Filter struct {
	Department string
	Rank       string
}

func (f Filter) matches(r *domain.Response) bool {
	if f.Department != "" && f.Department != FilterAll && r.Department != f.Department {
		return false
	}
	if f.Rank != "" && f.Rank != FilterAll && r.Rank != f.Rank {
		return false
	}
	return true
}

// Apply returns the responses matching f, preserving order.
func Apply(responses []domain.Response, f Filter) []domain.Response {
	filtered := make([]domain.Response, 0, len(responses))
	for _, r := range responses {
		if f.matches(&r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// QualityStatements are the five Likert items scored 0..6 per interview.
var QualityStatements = []string{
	"팀장은 조직/팀 방향과 목표를 설명했다.",
	"과제의 우선순위와 목표가 명확해졌다.",
	"과제 목표의 구체화로 평가 기준이 명확해졌다.",
	"팀장은 내 의견을 충분히 경청하고 존중했다.",
	"면담 후 내가 해야 할 다음 액션이 명확해졌다.",
}

// CountItem is one bar or pie slice: a label and its count.
type CountItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Overview holds the headline response counts and their percentage shares.
type Overview struct {
	Total             int     `json:"total"`
	Interviewed       int     `json:"interviewed"`
	NotInterviewed    int     `json:"notInterviewed"`
	InterviewedPct    float64 `json:"interviewedPct"`
	NotInterviewedPct float64 `json:"notInterviewedPct"`
}

// StatementStat summarizes one quality statement: score sum, number of
// scored responses, their average, and a histogram over scores 0..6.
type StatementStat struct {
	Statement string                   `json:"statement"`
	Sum       int                      `json:"sum"`
	Count     int                      `json:"count"`
	Average   float64                  `json:"average"`
	Histogram [domain.MaxScore + 1]int `json:"histogram"`
}

// Summary is the aggregated view of a filtered response set.
type Summary struct {
	Overview     Overview        `json:"overview"`
	Satisfaction []CountItem     `json:"satisfaction"`
	Times        []CountItem     `json:"times"`
	Methods      []CountItem     `json:"methods"`
	Guidance     []CountItem     `json:"guidance"`
	Statements   []StatementStat `json:"statements"`
}

// Summarize aggregates an already-filtered response set. It is idempotent:
// identical inputs produce identical output.
func Summarize(responses []domain.Response) Summary {
	s := Summary{
		Satisfaction: make([]CountItem, 0, len(domain.Satisfactions)),
	}

	s.Overview.Total = len(responses)
	for _, r := range responses {
		if r.HasInterview {
			s.Overview.Interviewed++
		} else {
			s.Overview.NotInterviewed++
		}
	}
	if s.Overview.Total > 0 {
		s.Overview.InterviewedPct = round1(float64(s.Overview.Interviewed) / float64(s.Overview.Total) * 100)
		s.Overview.NotInterviewedPct = round1(float64(s.Overview.NotInterviewed) / float64(s.Overview.Total) * 100)
	}

	// Satisfaction always lists both enum values, even at zero.
	satisfaction := newCounter()
	for _, v := range domain.Satisfactions {
		satisfaction.ensure(v)
	}

	times := newCounter()
	methods := newCounter()
	guidance := newCounter()
	stats := make([]StatementStat, len(QualityStatements))
	for i := range stats {
		stats[i].Statement = QualityStatements[i]
	}

	for _, r := range responses {
		if !r.HasInterview || r.Interview == nil {
			continue
		}
		iv := r.Interview
		if iv.Satisfaction != "" {
			satisfaction.add(iv.Satisfaction)
		}
		if iv.Time != "" {
			times.add(iv.Time)
		}
		if iv.Method != "" {
			methods.add(iv.MethodLabel())
		}
		if iv.Guidance != "" {
			guidance.add(iv.Guidance)
		}
		for i, score := range iv.Scores {
			if i >= len(stats) || score < domain.MinScore || score > domain.MaxScore {
				continue
			}
			stats[i].Sum += score
			stats[i].Count++
			stats[i].Histogram[score]++
		}
	}

	for i := range stats {
		if stats[i].Count > 0 {
			stats[i].Average = round2(float64(stats[i].Sum) / float64(stats[i].Count))
		}
	}

	s.Satisfaction = satisfaction.items()
	s.Times = times.items()
	s.Methods = methods.items()
	s.Guidance = guidance.items()
	s.Statements = stats
	return s
}

// counter tallies labels preserving first-encounter order, which is the
// order the dashboard renders buckets in.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) ensure(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
		c.counts[name] = 0
	}
}

func (c *counter) add(name string) {
	c.ensure(name)
	c.counts[name]++
}

func (c *counter) items() []CountItem {
	items := make([]CountItem, 0, len(c.order))
	for _, name := range c.order {
		items = append(items, CountItem{Name: name, Value: c.counts[name]})
	}
	return items
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
