package table

import "ristorante/internal/domain"

type CreateTableRequest struct {
	Number   int                  `json:"number" binding:"required" validate:"gte=1"`
	Capacity int                  `json:"capacity" binding:"required" validate:"gte=1,lte=30"`
	Location domain.TableLocation `json:"location" binding:"required"`
}

type UpdateTableRequest struct {
	Number   *int                  `json:"number" validate:"omitempty,gte=1"`
	Capacity *int                  `json:"capacity" validate:"omitempty,gte=1,lte=30"`
	Location *domain.TableLocation `json:"location"`
	IsActive *bool                 `json:"is_active"`
}

// TableWithStatus is a table plus its derived live status and the
// reservation currently running or coming up next on it.
type TableWithStatus struct {
	domain.Table
	Status             domain.TableStatus  `json:"status"`
	CurrentReservation *domain.Reservation `json:"current_reservation,omitempty"`
	NextReservation    *domain.Reservation `json:"next_reservation,omitempty"`
}
