package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/surveypulse/surveypulse/internal/analysis"
	"github.com/surveypulse/surveypulse/internal/domain"
	"github.com/surveypulse/surveypulse/internal/metrics"
	"github.com/surveypulse/surveypulse/internal/report"
)

// Service orchestrates submissions and report generation.
type Service struct {
	responses  domain.ResponseRepository
	leaders    domain.LeaderRepository
	classifier *analysis.Classifier
	extractor  *analysis.Extractor
	clock      clockwork.Clock
}

// NewService creates the application layer service.
func NewService(responses domain.ResponseRepository, leaders domain.LeaderRepository, classifier *analysis.Classifier, extractor *analysis.Extractor, clock clockwork.Clock) *Service {
	return &Service{
		responses:  responses,
		leaders:    leaders,
		classifier: classifier,
		extractor:  extractor,
		clock:      clock,
	}
}

// SubmitResponse validates and persists a team-member response, stamping the
// submission time. The record is either fully appended or not appended at all.
func (s *Service) SubmitResponse(ctx context.Context, r *domain.Response) error {
	if err := r.Validate(); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("response", "rejected").Inc()
		return err
	}

	r.SubmittedAt = s.clock.Now()
	if err := s.responses.Append(ctx, r); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("response", "failed").Inc()
		return fmt.Errorf("failed to store response: %w", err)
	}

	metrics.SubmissionsTotal.WithLabelValues("response", "accepted").Inc()
	slog.InfoContext(ctx, "Response stored", "id", r.ID, "department", r.Department, "has_interview", r.HasInterview)
	return nil
}

// SubmitLeaderResponse validates and persists leader feedback.
func (s *Service) SubmitLeaderResponse(ctx context.Context, lr *domain.LeaderResponse) error {
	if err := lr.Validate(); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("leader", "rejected").Inc()
		return err
	}

	lr.SubmittedAt = s.clock.Now()
	if err := s.leaders.Append(ctx, lr); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("leader", "failed").Inc()
		return fmt.Errorf("failed to store leader response: %w", err)
	}

	metrics.SubmissionsTotal.WithLabelValues("leader", "accepted").Inc()
	slog.InfoContext(ctx, "Leader response stored", "id", lr.ID, "department", lr.Department)
	return nil
}

// Results recomputes the team-member dashboard payload for one filter. Store
// read failures degrade to an empty collection: analytics never fail, they
// report zeros.
func (s *Service) Results(ctx context.Context, f report.Filter) report.Results {
	all := s.loadResponses(ctx)
	filtered := report.Apply(all, f)

	metrics.ReportsTotal.WithLabelValues("results").Inc()
	return report.Results{
		Responses: filtered,
		Summary:   report.Summarize(filtered),
		Analytics: report.AnalyzeSuggestions(filtered, s.classifier, s.extractor),
	}
}

// ExportRows returns the filtered responses for the spreadsheet download.
func (s *Service) ExportRows(ctx context.Context, f report.Filter) []domain.Response {
	metrics.ReportsTotal.WithLabelValues("export").Inc()
	return report.Apply(s.loadResponses(ctx), f)
}

// LeaderResults recomputes the leader feedback dashboard payload.
func (s *Service) LeaderResults(ctx context.Context) report.LeaderResults {
	all, err := s.leaders.ListAll(ctx)
	if err != nil {
		metrics.StoreFallbacksTotal.WithLabelValues("leader_responses").Inc()
		slog.WarnContext(ctx, "Leader store read failed, falling back to empty collection", "error", err)
		all = nil
	}

	metrics.ReportsTotal.WithLabelValues("leader_results").Inc()
	return report.AnalyzeLeaderFeedback(all, s.extractor)
}

func (s *Service) loadResponses(ctx context.Context) []domain.Response {
	all, err := s.responses.ListAll(ctx)
	if err != nil {
		metrics.StoreFallbacksTotal.WithLabelValues("responses").Inc()
		slog.WarnContext(ctx, "Response store read failed, falling back to empty collection", "error", err)
		return nil
	}
	return all
}
