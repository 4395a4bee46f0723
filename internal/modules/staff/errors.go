package staff

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("employee id or username already in use")
	ErrNotFound   = errors.New("record not found")
	ErrReferenced = errors.New("record is still referenced")
)
