package dashboard

import (
	"context"
	"time"

	"ristorante/internal/domain"
	"ristorante/internal/modules/availability"
	"ristorante/internal/repository"
)

type Service struct {
	reservations ReservationRepository
	tables       TableRepository
	now          func() time.Time
}

func NewService(reservations ReservationRepository, tables TableRepository) *Service {
	return &Service{
		reservations: reservations,
		tables:       tables,
		now:          time.Now,
	}
}

// TodayStats builds the dashboard snapshot: today's reservations broken
// down by status, expected covers, and the live table status counts.
func (s *Service) TodayStats(ctx context.Context) (*Stats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	todays, err := s.reservations.List(ctx, repository.ReservationFilters{
		From: &startOfDay,
		To:   &endOfDay,
	})
	if err != nil {
		return nil, err
	}

	byStatus := make(map[domain.ReservationStatus]int)
	covers := 0
	for _, r := range todays {
		byStatus[r.Status]++
		if r.Status.Active() {
			covers += r.PartySize
		}
	}

	tables, err := s.tables.List(ctx, repository.TableFilters{})
	if err != nil {
		return nil, err
	}

	byTable := make(map[int64][]domain.Reservation)
	for _, r := range todays {
		if r.TableID != nil && r.Status.Active() {
			byTable[*r.TableID] = append(byTable[*r.TableID], r)
		}
	}

	breakdown := make(map[domain.TableStatus]int)
	active := 0
	for _, t := range tables {
		if t.IsActive {
			active++
		}
		breakdown[availability.ResolveTableStatus(t, byTable[t.ID], now)]++
	}

	return &Stats{
		Date:            startOfDay.Format("2006-01-02"),
		TotalToday:      len(todays),
		ByStatus:        byStatus,
		ExpectedCovers:  covers,
		TableBreakdown:  breakdown,
		ActiveTables:    active,
		CurrentOccupied: breakdown[domain.TableOccupied],
	}, nil
}
