package util

import "errors"

var (
	ErrAssessmentNotFound    = errors.New("assessment not found")
	ErrInvalidLearner        = errors.New("invalid learner id")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
