package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationSeated    ReservationStatus = "SEATED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationNoShow    ReservationStatus = "NO_SHOW"
)

// ActiveReservationStatuses are the statuses that block availability.
// Completed, cancelled and no-show reservations never conflict.
var ActiveReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationConfirmed,
	ReservationSeated,
}

func (s ReservationStatus) Active() bool {
	return s == ReservationPending || s == ReservationConfirmed || s == ReservationSeated
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationSeated,
		ReservationCompleted, ReservationCancelled, ReservationNoShow:
		return true
	}
	return false
}

const (
	// DefaultDurationMinutes is assumed when a reservation carries no duration.
	DefaultDurationMinutes = 120
	MinDurationMinutes     = 60
	MaxDurationMinutes     = 300
)

type Reservation struct {
	ID              int64             `json:"id"`
	ReferenceCode   string            `json:"reference_code"`
	CustomerID      int64             `json:"customer_id" validate:"required"`
	TableID         *int64            `json:"table_id,omitempty"` // nullable until a table is assigned
	DateTime        time.Time         `json:"date_time" validate:"required"`
	DurationMinutes int               `json:"duration_minutes" validate:"gte=60,lte=300"`
	PartySize       int               `json:"party_size" validate:"required,gte=1"`
	Status          ReservationStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty"`
	Table    *Table    `json:"table,omitempty"`
}

// EndTime is the exclusive end of the reservation's half-open window.
func (r *Reservation) EndTime() time.Time {
	d := r.DurationMinutes
	if d <= 0 {
		d = DefaultDurationMinutes
	}
	return r.DateTime.Add(time.Duration(d) * time.Minute)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals do not overlap.
// This is the single authoritative conflict rule; the same predicate runs
// on the read path and again inside the insert transaction.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
