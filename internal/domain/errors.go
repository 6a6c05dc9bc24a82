package domain

import "errors"

var (
	ErrInvalidSubmission = errors.New("invalid submission")
)
