package customer

import (
	"context"
	"time"

	"ristorante/internal/domain"
	"ristorante/internal/pkg/logger"
	"ristorante/internal/repository"
)

type Service struct {
	customers    CustomerRepository
	reservations ReservationRepository
}

func NewService(customers CustomerRepository, reservations ReservationRepository) *Service {
	return &Service{
		customers:    customers,
		reservations: reservations,
	}
}

func (s *Service) List(ctx context.Context, f repository.CustomerFilters) (*ListResult, error) {
	customers, total, err := s.customers.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]CustomerSummary, 0, len(customers))
	for _, c := range customers {
		count, err := s.reservations.CountByCustomer(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, CustomerSummary{Customer: c, ReservationCount: count})
	}
	return &ListResult{Customers: out, Total: total}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if c.Anonymized {
		return nil, ErrAlreadyAnonymized
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Export assembles the subject access bundle: the stored record plus every
// reservation linked to it.
func (s *Service) Export(ctx context.Context, id int64) (*DataExport, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	history, err := s.reservations.List(ctx, repository.ReservationFilters{CustomerID: &id})
	if err != nil {
		return nil, err
	}

	return &DataExport{
		ExportedAt:   time.Now().UTC(),
		Customer:     *c,
		Reservations: history,
	}, nil
}

// Erase fulfils an erasure request. Personal fields are scrubbed in place;
// reservation rows survive for occupancy history.
func (s *Service) Erase(ctx context.Context, id int64) error {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if c.Anonymized {
		return ErrAlreadyAnonymized
	}

	if err := s.customers.Anonymize(ctx, id); err != nil {
		return err
	}
	logger.Info.Printf("customer %d anonymized on erasure request", id)
	return nil
}
