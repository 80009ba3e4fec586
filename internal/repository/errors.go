package repository

import "errors"

var (
	// ErrReservationConflict means an active reservation overlaps the
	// requested window. Returned from the insert transaction.
	ErrReservationConflict = errors.New("reservation conflict")

	// ErrDuplicateTableNumber means the human-facing table number is taken.
	ErrDuplicateTableNumber = errors.New("duplicate table number")
)
