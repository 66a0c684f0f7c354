package engine

import "errors"

var (
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrUnknownPolicy     = errors.New("unknown policy")
)
