package cleaning

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid assignment status transition")
	ErrNotFound          = errors.New("assignment not found")
	ErrSuspended         = errors.New("apartment services suspended")
)
