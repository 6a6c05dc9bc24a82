package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

// LeaderDepartments is the coarser grouping used on the leader feedback form.
var LeaderDepartments = []string{"본사", "부산공장 및 기술연구소"}

// LeaderResponse is one free-form feedback submission from a team leader.
type LeaderResponse struct {
	ID          int64     `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Department  string    `json:"department"`
	Feedback    string    `json:"feedback"`
}

// Validate rejects submissions missing their identifying fields.
func (lr *LeaderResponse) Validate() error {
	if strings.TrimSpace(lr.Department) == "" || strings.TrimSpace(lr.Feedback) == "" {
		return fmt.Errorf("%w: department and feedback are required", ErrInvalidSubmission)
	}
	if !slices.Contains(LeaderDepartments, lr.Department) {
		return fmt.Errorf("%w: unknown department %q", ErrInvalidSubmission, lr.Department)
	}
	return nil
}

// LeaderRepository abstracts leader feedback persistence with the same
// append/snapshot contract as ResponseRepository.
type LeaderRepository interface {
	ListAll(ctx context.Context) ([]LeaderResponse, error)
	Append(ctx context.Context, lr *LeaderResponse) error
}
