package report

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("worker not found")
)
