package availability

import (
	"context"
	"fmt"
	"math"
	"time"

	"ristorante/internal/domain"
	"ristorante/internal/repository"
)

const (
	// Restaurant operating hours: slots 12:00 through 22:00 inclusive.
	openingHour = 12
	closingHour = 22

	maxRecommendations = 5

	// occupancyWindow is the fixed window the status resolver treats a
	// confirmed reservation as occupying its table, independent of the
	// reservation's own duration. The availability engine uses the real
	// duration; keeping the two distinct matches observed behavior.
	occupancyWindow = 2 * time.Hour
)

type Service struct {
	tables       TableRepository
	reservations ReservationRepository
}

func NewService(tables TableRepository, reservations ReservationRepository) *Service {
	return &Service{
		tables:       tables,
		reservations: reservations,
	}
}

// FindAvailableTables returns every table that can seat the party without a
// conflicting active reservation in the requested window. Read-only and
// advisory: the same overlap predicate runs again inside the reservation
// insert transaction.
func (s *Service) FindAvailableTables(ctx context.Context, req CheckRequest) (*Result, error) {
	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	if req.PartySize < 1 ||
		duration < domain.MinDurationMinutes || duration > domain.MaxDurationMinutes ||
		req.DateTime.IsZero() {
		return nil, ErrValidation
	}
	if req.PreferredLocation != nil && !req.PreferredLocation.Valid() {
		return nil, ErrValidation
	}

	active := true
	filters := repository.TableFilters{
		MinCapacity: &req.PartySize,
		IsActive:    &active,
		Location:    req.PreferredLocation,
	}
	candidates, err := s.tables.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	start := req.DateTime
	end := start.Add(time.Duration(duration) * time.Minute)

	// One range query covers every candidate: an active reservation can only
	// conflict if it starts before the requested end and no more than the
	// maximum duration before the requested start.
	horizon := start.Add(-time.Duration(domain.MaxDurationMinutes) * time.Minute)
	reservations, err := s.reservations.List(ctx, repository.ReservationFilters{
		From:     &horizon,
		To:       &end,
		StatusIn: domain.ActiveReservationStatuses,
	})
	if err != nil {
		return nil, err
	}

	busyTables := make(map[int64]bool)
	for _, r := range reservations {
		if r.TableID == nil {
			continue // unassigned reservations block no specific table
		}
		if domain.Overlaps(start, end, r.DateTime, r.EndTime()) {
			busyTables[*r.TableID] = true
		}
	}

	free := make([]domain.Table, 0, len(candidates))
	for _, t := range candidates {
		if !busyTables[t.ID] {
			free = append(free, t)
		}
	}

	return buildResult(free), nil
}

// buildResult groups the (already ordered) free tables by location and
// picks the first five as recommendations.
func buildResult(free []domain.Table) *Result {
	groups := make([]LocationGroup, 0)
	groupIdx := make(map[domain.TableLocation]int)

	for _, t := range free {
		idx, ok := groupIdx[t.Location]
		if !ok {
			idx = len(groups)
			groupIdx[t.Location] = idx
			groups = append(groups, LocationGroup{
				Location:        t.Location,
				PriceMultiplier: t.Location.PriceMultiplier(),
			})
		}
		groups[idx].Tables = append(groups[idx].Tables, t)
	}

	recs := make([]Recommendation, 0, maxRecommendations)
	for _, t := range free {
		if len(recs) == maxRecommendations {
			break
		}
		recs = append(recs, Recommendation{
			Table:           t,
			PriceMultiplier: t.Location.PriceMultiplier(),
		})
	}

	return &Result{
		Available:        len(free) > 0,
		TotalTables:      len(free),
		TablesByLocation: groups,
		Recommendations:  recs,
		AlternativeTimes: []string{},
	}
}

// ResolveTableStatus derives a table's live status. Precedence: inactive
// tables are OUT_OF_ORDER no matter what; a confirmed reservation whose
// fixed two-hour window contains now means OCCUPIED; a future confirmed
// reservation means RESERVED; otherwise AVAILABLE. MAINTENANCE is never
// produced here; it is reserved for a manual override path.
func ResolveTableStatus(t domain.Table, activeReservations []domain.Reservation, now time.Time) domain.TableStatus {
	if !t.IsActive {
		return domain.TableOutOfOrder
	}

	for _, r := range activeReservations {
		if r.Status != domain.ReservationConfirmed {
			continue
		}
		if !now.Before(r.DateTime) && now.Before(r.DateTime.Add(occupancyWindow)) {
			return domain.TableOccupied
		}
	}

	for _, r := range activeReservations {
		if r.Status == domain.ReservationConfirmed && r.DateTime.After(now) {
			return domain.TableReserved
		}
	}

	return domain.TableAvailable
}

// HourlyOccupancy computes per-hour occupancy over the fixed operating
// hours for one day. tables must be the active table set; reservations are
// filtered to active statuses here.
func HourlyOccupancy(day time.Time, reservations []domain.Reservation, tables []domain.Table) []HourSlot {
	totalTables := len(tables)

	// Occupancy is defined over the given table set. A reservation whose
	// table was deactivated or removed after booking must not shrink it.
	tableIDs := make(map[int64]bool, len(tables))
	for _, t := range tables {
		tableIDs[t.ID] = true
	}

	slots := make([]HourSlot, 0, closingHour-openingHour+1)
	for h := openingHour; h <= closingHour; h++ {
		slotTime := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location())

		occupied := make(map[int64]bool)
		for _, r := range reservations {
			if !r.Status.Active() || r.TableID == nil || !tableIDs[*r.TableID] {
				continue
			}
			if !slotTime.Before(r.DateTime) && slotTime.Before(r.EndTime()) {
				occupied[*r.TableID] = true
			}
		}

		freeCapacity := 0
		for _, t := range tables {
			if !occupied[t.ID] {
				freeCapacity += t.Capacity
			}
		}

		rate := 0
		if totalTables > 0 {
			rate = int(math.Round(100 * float64(len(occupied)) / float64(totalTables)))
		}

		slots = append(slots, HourSlot{
			Time:            fmt.Sprintf("%02d:00", h),
			AvailableTables: totalTables - len(occupied),
			TotalCapacity:   freeCapacity,
			OccupancyRate:   rate,
		})
	}
	return slots
}

// DailyOccupancy fetches one day's data and derives the hourly report plus
// peak hours (rate > 80) and up to three recommended times (rate < 60).
func (s *Service) DailyOccupancy(ctx context.Context, dateStr string) (*DailyReport, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	active := true
	tables, err := s.tables.List(ctx, repository.TableFilters{IsActive: &active})
	if err != nil {
		return nil, err
	}

	startOfDay := day
	endOfDay := day.Add(24 * time.Hour)
	reservations, err := s.reservations.List(ctx, repository.ReservationFilters{
		From:     &startOfDay,
		To:       &endOfDay,
		StatusIn: domain.ActiveReservationStatuses,
	})
	if err != nil {
		return nil, err
	}

	slots := HourlyOccupancy(day, reservations, tables)

	peak := make([]string, 0)
	recommended := make([]string, 0, 3)
	for _, slot := range slots {
		if slot.OccupancyRate > 80 {
			peak = append(peak, slot.Time)
		}
		if slot.OccupancyRate < 60 && len(recommended) < 3 {
			recommended = append(recommended, slot.Time)
		}
	}

	return &DailyReport{
		Date:             dateStr,
		Slots:            slots,
		PeakHours:        peak,
		RecommendedTimes: recommended,
	}, nil
}
