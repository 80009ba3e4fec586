package availability

import "errors"

var (
	ErrValidation = errors.New("availability validation error")
)
