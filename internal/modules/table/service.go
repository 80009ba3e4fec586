package table

import (
	"context"
	"errors"
	"time"

	"ristorante/internal/domain"
	"ristorante/internal/modules/availability"
	"ristorante/internal/repository"
)

type Service struct {
	tables       TableRepository
	reservations ReservationRepository
	events       EventSink
	now          func() time.Time
}

func NewService(tables TableRepository, reservations ReservationRepository, events EventSink) *Service {
	return &Service{
		tables:       tables,
		reservations: reservations,
		events:       events,
		now:          time.Now,
	}
}

func (s *Service) List(ctx context.Context, f repository.TableFilters) ([]domain.Table, error) {
	return s.tables.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	t, err := s.tables.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, req CreateTableRequest) (*domain.Table, error) {
	if !req.Location.Valid() {
		return nil, ErrValidation
	}

	t := &domain.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		Location: req.Location,
		IsActive: true,
	}
	if err := s.tables.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicateTableNumber) {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}

	if s.events != nil {
		s.events.TableEvent("table.created", t)
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTableRequest) (*domain.Table, error) {
	t, err := s.tables.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.Number != nil {
		t.Number = *req.Number
	}
	if req.Capacity != nil {
		t.Capacity = *req.Capacity
	}
	if req.Location != nil {
		if !req.Location.Valid() {
			return nil, ErrValidation
		}
		t.Location = *req.Location
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.tables.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicateTableNumber) {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}

	if s.events != nil {
		s.events.TableEvent("table.updated", t)
	}
	return t, nil
}

// Delete removes a table from the floor plan. Tables with upcoming active
// reservations are protected; deactivate them instead.
func (s *Service) Delete(ctx context.Context, id int64) error {
	t, err := s.tables.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}

	now := s.now()
	upcoming, err := s.reservations.List(ctx, repository.ReservationFilters{
		TableID:  &id,
		From:     &now,
		StatusIn: domain.ActiveReservationStatuses,
	})
	if err != nil {
		return err
	}
	if len(upcoming) > 0 {
		return ErrHasReservations
	}

	if err := s.tables.Delete(ctx, id); err != nil {
		return err
	}
	if s.events != nil {
		s.events.TableEvent("table.deleted", t)
	}
	return nil
}

// ListWithStatus returns the whole floor plan with each table's derived
// live status at the current time. The board's horizon is today: bookings
// after end of day do not mark a table RESERVED here, only in availability.
func (s *Service) ListWithStatus(ctx context.Context) ([]TableWithStatus, error) {
	tables, err := s.tables.List(ctx, repository.TableFilters{})
	if err != nil {
		return nil, err
	}

	now := s.now()

	// One query covers every table: anything confirmed or pending that could
	// still matter today, starting no earlier than the longest reservation
	// ago and no later than end of day.
	horizon := now.Add(-time.Duration(domain.MaxDurationMinutes) * time.Minute)
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	reservations, err := s.reservations.List(ctx, repository.ReservationFilters{
		From:     &horizon,
		To:       &endOfDay,
		StatusIn: domain.ActiveReservationStatuses,
	})
	if err != nil {
		return nil, err
	}

	byTable := make(map[int64][]domain.Reservation)
	for _, r := range reservations {
		if r.TableID != nil {
			byTable[*r.TableID] = append(byTable[*r.TableID], r)
		}
	}

	out := make([]TableWithStatus, 0, len(tables))
	for _, t := range tables {
		current, next := splitCurrentNext(byTable[t.ID], now)
		out = append(out, TableWithStatus{
			Table:              t,
			Status:             availability.ResolveTableStatus(t, byTable[t.ID], now),
			CurrentReservation: current,
			NextReservation:    next,
		})
	}
	return out, nil
}

// splitCurrentNext picks the reservation whose window contains now and the
// earliest one still ahead. Input is ordered by date_time ascending.
func splitCurrentNext(reservations []domain.Reservation, now time.Time) (current, next *domain.Reservation) {
	for i := range reservations {
		r := &reservations[i]
		if !now.Before(r.DateTime) && now.Before(r.EndTime()) {
			if current == nil {
				current = r
			}
			continue
		}
		if r.DateTime.After(now) && next == nil {
			next = r
		}
	}
	return current, next
}
