package maintenance

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid work order status transition")
	ErrDateOrder         = errors.New("work order dates must be non-decreasing")
	ErrNotFound          = errors.New("work order not found")
)
