package availability

import (
	"context"

	"ristorante/internal/domain"
	"ristorante/internal/repository"
)

// TableRepository is the table store as seen by the availability engine.
type TableRepository interface {
	List(ctx context.Context, f repository.TableFilters) ([]domain.Table, error)
}

// ReservationRepository is the reservation store as seen by the
// availability engine. Read-only: the engine never writes.
type ReservationRepository interface {
	List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error)
}
