package customer

import (
	"time"

	"ristorante/internal/domain"
)

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

// CustomerSummary is a customer plus their booking count for list views.
type CustomerSummary struct {
	domain.Customer
	ReservationCount int64 `json:"reservation_count"`
}

type ListResult struct {
	Customers []CustomerSummary `json:"customers"`
	Total     int64             `json:"total"`
}

// DataExport is the personal data bundle handed out on a subject access
// request: the customer record and their full reservation history.
type DataExport struct {
	ExportedAt   time.Time            `json:"exported_at"`
	Customer     domain.Customer      `json:"customer"`
	Reservations []domain.Reservation `json:"reservations"`
}
