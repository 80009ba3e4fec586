package table

import "errors"

var (
	ErrValidation      = errors.New("table validation error")
	ErrNotFound        = errors.New("table not found")
	ErrDuplicateNumber = errors.New("table number already exists")
	ErrHasReservations = errors.New("table has upcoming reservations")
)
