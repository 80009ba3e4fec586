package reservation

import "errors"

var (
	ErrValidation              = errors.New("reservation validation error")
	ErrNotFound                = errors.New("reservation not found")
	ErrConflict                = errors.New("reservation conflicts with an existing booking")
	ErrTableNotFound           = errors.New("table not found")
	ErrTableInactive           = errors.New("table is out of service")
	ErrCapacityExceeded        = errors.New("party size exceeds table capacity")
	ErrInvalidStatusTransition = errors.New("invalid reservation status transition")
)
