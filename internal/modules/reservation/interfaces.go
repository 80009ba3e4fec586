package reservation

import (
	"context"

	"ristorante/internal/domain"
	"ristorante/internal/repository"
)

type ReservationRepository interface {
	CreateWithConflictCheck(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByReferenceCode(ctx context.Context, ref string) (*domain.Reservation, error)
	List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error)
	ListWithDetails(ctx context.Context, f repository.ReservationFilters) ([]repository.ReservationDetails, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	AssignTable(ctx context.Context, id int64, tableID int64) error
}

type CustomerRepository interface {
	FindOrCreateByEmail(ctx context.Context, name, email, phone string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// EventSink receives reservation mutations for live dashboards. May be nil.
type EventSink interface {
	ReservationEvent(event string, r *domain.Reservation)
}
