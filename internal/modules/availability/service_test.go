package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ristorante/internal/domain"
	"ristorante/internal/repository"
)

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) List(ctx context.Context, f repository.TableFilters) ([]domain.Table, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Table), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func tableID(id int64) *int64 { return &id }

func newTestService(tables []domain.Table, reservations []domain.Reservation) *Service {
	mockTables := new(MockTableRepository)
	mockTables.On("List", mock.Anything, mock.Anything).Return(tables, nil)

	mockReservations := new(MockReservationRepository)
	mockReservations.On("List", mock.Anything, mock.Anything).Return(reservations, nil)

	return NewService(mockTables, mockReservations)
}

func TestFindAvailableTables_OverlapExcludesTable(t *testing.T) {
	// T1 has a confirmed reservation 19:00-21:00; a 20:30-22:30 request
	// overlaps and must exclude it.
	t1 := domain.Table{ID: 1, Number: 1, Capacity: 4, Location: domain.LocationIndoorStandard, IsActive: true}
	res := domain.Reservation{
		ID:              10,
		TableID:         tableID(1),
		DateTime:        time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
		DurationMinutes: 120,
		Status:          domain.ReservationConfirmed,
	}

	service := newTestService([]domain.Table{t1}, []domain.Reservation{res})

	result, err := service.FindAvailableTables(context.Background(), CheckRequest{
		DateTime:        time.Date(2024, 6, 1, 20, 30, 0, 0, time.UTC),
		PartySize:       4,
		DurationMinutes: 120,
	})

	assert.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, 0, result.TotalTables)
	assert.Empty(t, result.Recommendations)
}

func TestFindAvailableTables_BackToBackIsNotAConflict(t *testing.T) {
	// Reservation 19:00-21:00; request 21:00-22:00 starts exactly at the
	// previous end. Half-open semantics: no conflict.
	t1 := domain.Table{ID: 1, Number: 1, Capacity: 4, Location: domain.LocationIndoorStandard, IsActive: true}
	res := domain.Reservation{
		ID:              10,
		TableID:         tableID(1),
		DateTime:        time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
		DurationMinutes: 120,
		Status:          domain.ReservationConfirmed,
	}

	service := newTestService([]domain.Table{t1}, []domain.Reservation{res})

	result, err := service.FindAvailableTables(context.Background(), CheckRequest{
		DateTime:        time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC),
		PartySize:       4,
		DurationMinutes: 60,
	})

	assert.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, 1, result.TotalTables)
}

func TestFindAvailableTables_ReservationStartingAtRequestedEnd(t *testing.T) {
	// Existing reservation starts exactly when the requested window ends.
	t1 := domain.Table{ID: 1, Number: 1, Capacity: 2, Location: domain.LocationBarArea, IsActive: true}
	res := domain.Reservation{
		ID:              11,
		TableID:         tableID(1),
		DateTime:        time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
		DurationMinutes: 120,
		Status:          domain.ReservationPending,
	}

	service := newTestService([]domain.Table{t1}, []domain.Reservation{res})

	result, err := service.FindAvailableTables(context.Background(), CheckRequest{
		DateTime:        time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
		PartySize:       2,
		DurationMinutes: 120,
	})

	assert.NoError(t, err)
	assert.True(t, result.Available)
}

func TestFindAvailableTables_CancelledReservationNeverBlocks(t *testing.T) {
	t1 := domain.Table{ID: 1, Number: 1, Capacity: 4, Location: domain.LocationIndoorWindow, IsActive: true}
	res := domain.Reservation{
		ID:              12,
		TableID:         tableID(1),
		DateTime:        time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
		DurationMinutes: 120,
		Status:          domain.ReservationCancelled,
	}

	service := newTestService([]domain.Table{t1}, []domain.Reservation{res})

	result, err := service.FindAvailableTables(context.Background(), CheckRequest{
		DateTime:  time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC),
		PartySize: 2,
	})

	assert.NoError(t, err)
	assert.True(t, result.Available)
}

func TestFindAvailableTables_GroupingAndMultipliers(t *testing.T) {
	tables := []domain.Table{
		{ID: 1, Number: 1, Capacity: 2, Location: domain.LocationBarArea, IsActive: true},
		{ID: 2, Number: 2, Capacity: 2, Location: domain.LocationIndoorStandard, IsActive: true},
		{ID: 3, Number: 3, Capacity: 4, Location: domain.LocationIndoorStandard, IsActive: true},
		{ID: 4, Number: 4, Capacity: 2, Location: domain.LocationTerraceSeaView, IsActive: true},
	}

	service := newTestService(tables, nil)

	result, err := service.FindAvailableTables(context.Background(), CheckRequest{
		DateTime:  time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
		PartySize: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, result.TotalTables)
	assert.Len(t, result.TablesByLocation, 3)

	// Group order follows the repository ordering.
	assert.Equal(t, domain.LocationBarArea, result.TablesByLocation[0].Location)
	assert.Equal(t, 0.8, result.TablesByLocation[0].PriceMultiplier)
	assert.Equal(t, domain.LocationIndoorStandard, result.TablesByLocation[1].Location)
	assert.Len(t, result.TablesByLocation[1].Tables, 2)
	assert.Equal(t, domain.LocationTerraceSeaView, result.TablesByLocation[2].Location)
	assert.Equal(t, 1.2, result.TablesByLocation[2].PriceMultiplier)

	assert.Len(t, result.Recommendations, 4)
	assert.Empty(t, result.AlternativeTimes)
}

func TestFindAvailableTables_RecommendationsCapAtFive(t *testing.T) {
	tables := make([]domain.Table, 0, 8)
	for i := int64(1); i <= 8; i++ {
		tables = append(tables, domain.Table{
			ID: i, Number: int(i), Capacity: 2,
			Location: domain.LocationIndoorStandard, IsActive: true,
		})
	}

	service := newTestService(tables, nil)

	result, err := service.FindAvailableTables(context.Background(), CheckRequest{
		DateTime:  time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
		PartySize: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 8, result.TotalTables)
	assert.Len(t, result.Recommendations, 5)
}

func TestFindAvailableTables_Idempotent(t *testing.T) {
	t1 := domain.Table{ID: 1, Number: 1, Capacity: 4, Location: domain.LocationTerraceStandard, IsActive: true}
	res := domain.Reservation{
		ID:              13,
		TableID:         tableID(1),
		DateTime:        time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
		Status:          domain.ReservationSeated,
	}

	service := newTestService([]domain.Table{t1}, []domain.Reservation{res})

	req := CheckRequest{
		DateTime:  time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
		PartySize: 2,
	}

	first, err := service.FindAvailableTables(context.Background(), req)
	assert.NoError(t, err)
	second, err := service.FindAvailableTables(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindAvailableTables_Validation(t *testing.T) {
	service := newTestService(nil, nil)

	cases := []struct {
		name string
		req  CheckRequest
	}{
		{"zero party size", CheckRequest{DateTime: time.Now(), PartySize: 0}},
		{"duration too short", CheckRequest{DateTime: time.Now(), PartySize: 2, DurationMinutes: 30}},
		{"duration too long", CheckRequest{DateTime: time.Now(), PartySize: 2, DurationMinutes: 301}},
		{"zero time", CheckRequest{PartySize: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.FindAvailableTables(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestResolveTableStatus_OutOfOrderWinsOverEverything(t *testing.T) {
	now := time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC)
	inactive := domain.Table{ID: 1, Capacity: 4, IsActive: false}

	// Even a currently running confirmed reservation cannot override.
	running := domain.Reservation{
		TableID:         tableID(1),
		DateTime:        now.Add(-30 * time.Minute),
		DurationMinutes: 120,
		Status:          domain.ReservationConfirmed,
	}

	status := ResolveTableStatus(inactive, []domain.Reservation{running}, now)
	assert.Equal(t, domain.TableOutOfOrder, status)
}

func TestResolveTableStatus_OccupiedUsesFixedTwoHourWindow(t *testing.T) {
	table := domain.Table{ID: 1, Capacity: 4, IsActive: true}
	start := time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)

	// Reservation duration is 180 minutes, but the resolver's window is a
	// fixed two hours: at 21:30 the table no longer counts as occupied.
	res := domain.Reservation{
		TableID:         tableID(1),
		DateTime:        start,
		DurationMinutes: 180,
		Status:          domain.ReservationConfirmed,
	}

	assert.Equal(t, domain.TableOccupied,
		ResolveTableStatus(table, []domain.Reservation{res}, start.Add(90*time.Minute)))
	assert.Equal(t, domain.TableAvailable,
		ResolveTableStatus(table, []domain.Reservation{res}, start.Add(150*time.Minute)))
}

func TestResolveTableStatus_FutureConfirmedMeansReserved(t *testing.T) {
	table := domain.Table{ID: 1, Capacity: 4, IsActive: true}
	now := time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)

	res := domain.Reservation{
		TableID:         tableID(1),
		DateTime:        now.Add(3 * time.Hour),
		DurationMinutes: 120,
		Status:          domain.ReservationConfirmed,
	}

	assert.Equal(t, domain.TableReserved, ResolveTableStatus(table, []domain.Reservation{res}, now))
}

func TestResolveTableStatus_PendingDoesNotOccupy(t *testing.T) {
	table := domain.Table{ID: 1, Capacity: 4, IsActive: true}
	now := time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC)

	// Pending reservations are active for conflict detection but do not
	// drive the live status to OCCUPIED or RESERVED.
	res := domain.Reservation{
		TableID:         tableID(1),
		DateTime:        now.Add(-time.Hour),
		DurationMinutes: 120,
		Status:          domain.ReservationPending,
	}

	assert.Equal(t, domain.TableAvailable, ResolveTableStatus(table, []domain.Reservation{res}, now))
}

func TestHourlyOccupancy_ConcreteScenario(t *testing.T) {
	// Two active tables, one occupied 18:00-20:00 (capacity 2), the other
	// free (capacity 4). At 19:00: one table available, capacity 4, 50%.
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tables := []domain.Table{
		{ID: 1, Number: 1, Capacity: 2, IsActive: true},
		{ID: 2, Number: 2, Capacity: 4, IsActive: true},
	}
	reservations := []domain.Reservation{
		{
			TableID:         tableID(1),
			DateTime:        time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
			DurationMinutes: 120,
			Status:          domain.ReservationConfirmed,
		},
	}

	slots := HourlyOccupancy(day, reservations, tables)
	assert.Len(t, slots, 11)
	assert.Equal(t, "12:00", slots[0].Time)
	assert.Equal(t, "22:00", slots[10].Time)

	nineteen := slots[7]
	assert.Equal(t, "19:00", nineteen.Time)
	assert.Equal(t, 1, nineteen.AvailableTables)
	assert.Equal(t, 4, nineteen.TotalCapacity)
	assert.Equal(t, 50, nineteen.OccupancyRate)

	// Half-open end: at 20:00 the 18:00-20:00 reservation is over.
	twenty := slots[8]
	assert.Equal(t, 2, twenty.AvailableTables)
	assert.Equal(t, 6, twenty.TotalCapacity)
	assert.Equal(t, 0, twenty.OccupancyRate)
}

func TestHourlyOccupancy_IgnoresReservationsOnDeactivatedTables(t *testing.T) {
	// Table 1 was deactivated after the booking was taken, so only table 2
	// is in the active set. Its 19:00 reservation must not count: the free
	// table stays available and the rate stays at zero.
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tables := []domain.Table{
		{ID: 2, Number: 2, Capacity: 4, IsActive: true},
	}
	reservations := []domain.Reservation{
		{
			TableID:         tableID(1),
			DateTime:        time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
			DurationMinutes: 120,
			Status:          domain.ReservationConfirmed,
		},
	}

	slots := HourlyOccupancy(day, reservations, tables)

	nineteen := slots[7]
	assert.Equal(t, "19:00", nineteen.Time)
	assert.Equal(t, 1, nineteen.AvailableTables)
	assert.Equal(t, 4, nineteen.TotalCapacity)
	assert.Equal(t, 0, nineteen.OccupancyRate)
}

func TestHourlyOccupancy_NoActiveTables(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := HourlyOccupancy(day, nil, nil)
	assert.Len(t, slots, 11)
	for _, slot := range slots {
		assert.Equal(t, 0, slot.OccupancyRate)
		assert.Equal(t, 0, slot.AvailableTables)
		assert.Equal(t, 0, slot.TotalCapacity)
	}
}

func TestDailyOccupancy_PeakAndRecommendedTimes(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tables := []domain.Table{{ID: 1, Number: 1, Capacity: 4, IsActive: true}}

	// The single table is booked 19:00-21:00 → 100% at 19:00 and 20:00.
	reservations := []domain.Reservation{
		{
			TableID:         tableID(1),
			DateTime:        time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
			DurationMinutes: 120,
			Status:          domain.ReservationConfirmed,
		},
	}

	mockTables := new(MockTableRepository)
	mockTables.On("List", mock.Anything, mock.Anything).Return(tables, nil)
	mockReservations := new(MockReservationRepository)
	mockReservations.On("List", mock.Anything, mock.Anything).Return(reservations, nil)

	service := NewService(mockTables, mockReservations)

	report, err := service.DailyOccupancy(context.Background(), day.Format("2006-01-02"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"19:00", "20:00"}, report.PeakHours)
	// First three sub-60% slots in chronological order.
	assert.Equal(t, []string{"12:00", "13:00", "14:00"}, report.RecommendedTimes)
}

func TestDailyOccupancy_BadDate(t *testing.T) {
	service := newTestService(nil, nil)

	_, err := service.DailyOccupancy(context.Background(), "not-a-date")
	assert.ErrorIs(t, err, ErrValidation)
}
