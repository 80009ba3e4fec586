package table

import (
	"context"

	"ristorante/internal/domain"
	"ristorante/internal/repository"
)

type TableRepository interface {
	List(ctx context.Context, f repository.TableFilters) ([]domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	Create(ctx context.Context, t *domain.Table) error
	Update(ctx context.Context, t *domain.Table) error
	Delete(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error)
}

// EventSink receives floor plan changes for live dashboards. May be nil.
type EventSink interface {
	TableEvent(event string, t *domain.Table)
}
