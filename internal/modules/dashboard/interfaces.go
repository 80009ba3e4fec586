package dashboard

import (
	"context"

	"ristorante/internal/domain"
	"ristorante/internal/repository"
)

type ReservationRepository interface {
	List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error)
}

type TableRepository interface {
	List(ctx context.Context, f repository.TableFilters) ([]domain.Table, error)
}
