package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"ristorante/internal/domain"
	"ristorante/internal/mailer"
	"ristorante/internal/pkg/logger"
	"ristorante/internal/repository"
)

type Service struct {
	reservations ReservationRepository
	customers    CustomerRepository
	tables       TableRepository
	mail         mailer.Mailer
	events       EventSink
}

func NewService(
	reservations ReservationRepository,
	customers CustomerRepository,
	tables TableRepository,
	mail mailer.Mailer,
	events EventSink,
) *Service {
	return &Service{
		reservations: reservations,
		customers:    customers,
		tables:       tables,
		mail:         mail,
		events:       events,
	}
}

// allowedTransitions is the reservation lifecycle. Cancellation is a
// transition, never a row delete.
var allowedTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationPending:   {domain.ReservationConfirmed, domain.ReservationCancelled},
	domain.ReservationConfirmed: {domain.ReservationSeated, domain.ReservationCancelled, domain.ReservationNoShow},
	domain.ReservationSeated:    {domain.ReservationCompleted},
}

func transitionAllowed(from, to domain.ReservationStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s *Service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}
	if req.PartySize < 1 ||
		duration < domain.MinDurationMinutes || duration > domain.MaxDurationMinutes {
		return nil, ErrValidation
	}
	if req.DateTime.Before(time.Now()) {
		return nil, ErrValidation
	}

	if req.TableID != nil {
		table, err := s.tables.GetByID(ctx, *req.TableID)
		if err != nil {
			return nil, ErrTableNotFound
		}
		if !table.IsActive {
			return nil, ErrTableInactive
		}
		// Advisory at creation time; staff may still seat larger parties.
		if req.PartySize > table.Capacity {
			return nil, ErrCapacityExceeded
		}
	}

	customer, err := s.customers.FindOrCreateByEmail(ctx, req.CustomerName, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		return nil, err
	}

	r := &domain.Reservation{
		ReferenceCode:   newReferenceCode(),
		CustomerID:      customer.ID,
		TableID:         req.TableID,
		DateTime:        req.DateTime,
		DurationMinutes: duration,
		PartySize:       req.PartySize,
		Status:          domain.ReservationPending,
		Notes:           req.Notes,
	}

	// Overlap is re-validated inside the insert transaction; the earlier
	// availability check was advisory only.
	if err := s.reservations.CreateWithConflictCheck(ctx, r); err != nil {
		if errors.Is(err, repository.ErrReservationConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.mail != nil {
		if err := s.mail.SendReservationCreated(ctx, customer.Email, customer.Name, r.ReferenceCode, r.DateTime, r.PartySize); err != nil {
			logger.Error.Printf("reservation %s: created email failed: %v", r.ReferenceCode, err)
		}
	}
	if s.events != nil {
		s.events.ReservationEvent("reservation.created", r)
	}

	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r, nil
}

func (s *Service) GetByReferenceCode(ctx context.Context, ref string) (*domain.Reservation, error) {
	r, err := s.reservations.GetByReferenceCode(ctx, strings.ToUpper(strings.TrimSpace(ref)))
	if err != nil {
		return nil, ErrNotFound
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, f repository.ReservationFilters) ([]repository.ReservationDetails, error) {
	return s.reservations.ListWithDetails(ctx, f)
}

// UpdateStatus moves a reservation along its lifecycle and notifies the
// customer on confirm/cancel.
func (s *Service) UpdateStatus(ctx context.Context, id int64, newStatus domain.ReservationStatus) (*domain.Reservation, error) {
	if !newStatus.Valid() {
		return nil, ErrValidation
	}

	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if !transitionAllowed(r.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.reservations.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	r.Status = newStatus

	if s.mail != nil {
		customer, err := s.customers.GetByID(ctx, r.CustomerID)
		if err == nil && !customer.Anonymized {
			switch newStatus {
			case domain.ReservationConfirmed:
				if err := s.mail.SendReservationConfirmed(ctx, customer.Email, customer.Name, r.ReferenceCode, r.DateTime); err != nil {
					logger.Error.Printf("reservation %s: confirmed email failed: %v", r.ReferenceCode, err)
				}
			case domain.ReservationCancelled:
				if err := s.mail.SendReservationCancelled(ctx, customer.Email, customer.Name, r.ReferenceCode); err != nil {
					logger.Error.Printf("reservation %s: cancelled email failed: %v", r.ReferenceCode, err)
				}
			}
		}
	}
	if s.events != nil {
		s.events.ReservationEvent("reservation.status_changed", r)
	}

	return r, nil
}

// AssignTable attaches a table to a reservation that was created without
// one, re-checking capacity and activity.
func (s *Service) AssignTable(ctx context.Context, id, tableID int64) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !r.Status.Active() {
		return nil, ErrInvalidStatusTransition
	}

	table, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		return nil, ErrTableNotFound
	}
	if !table.IsActive {
		return nil, ErrTableInactive
	}
	if r.PartySize > table.Capacity {
		return nil, ErrCapacityExceeded
	}

	if err := s.reservations.AssignTable(ctx, id, tableID); err != nil {
		return nil, err
	}
	r.TableID = &tableID

	if s.events != nil {
		s.events.ReservationEvent("reservation.table_assigned", r)
	}
	return r, nil
}

// newReferenceCode builds the human-facing booking code, e.g. RES-3F2A91C4.
func newReferenceCode() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "RES-" + hex[:8]
}
