package domain

import "errors"

// Sentinel errors shared across the pipeline.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)
