package customer

import (
	"context"

	"ristorante/internal/domain"
	"ristorante/internal/repository"
)

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, f repository.CustomerFilters) ([]domain.Customer, int64, error)
	Update(ctx context.Context, c *domain.Customer) error
	Anonymize(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error)
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}
