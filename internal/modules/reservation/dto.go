package reservation

import (
	"time"

	"ristorante/internal/domain"
)

type CreateReservationRequest struct {
	CustomerName    string    `json:"customer_name" binding:"required" validate:"required"`
	CustomerEmail   string    `json:"customer_email" binding:"required" validate:"required,email"`
	CustomerPhone   string    `json:"customer_phone"`
	DateTime        time.Time `json:"date_time" binding:"required" validate:"required"`
	PartySize       int       `json:"party_size" binding:"required" validate:"gte=1"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,gte=60,lte=300"`
	TableID         *int64    `json:"table_id,omitempty"`
	Notes           string    `json:"notes"`
}

type UpdateStatusRequest struct {
	Status domain.ReservationStatus `json:"status" binding:"required"`
}

type AssignTableRequest struct {
	TableID int64 `json:"table_id" binding:"required"`
}
