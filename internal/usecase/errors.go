package usecase

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrProfileNotFound = errors.New("profile not found")
	ErrJobNotFound     = errors.New("job not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrBatchInProgress = errors.New("batch already running for user")
	ErrInternal        = errors.New("internal error")
)
