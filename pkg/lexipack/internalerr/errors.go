package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNoInput       = errors.New("input directory missing or empty")
	ErrEmptyCorpus   = errors.New("no words produced")
	ErrInvalidInput  = errors.New("invalid input")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidConfig = errors.New("invalid configuration")
)
