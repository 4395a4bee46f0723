package catalog

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("record not found")
	ErrReferenced = errors.New("record is still referenced")
)
