package reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ristorante/internal/domain"
	"ristorante/internal/repository"
)

type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) CreateWithConflictCheck(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) GetByReferenceCode(ctx context.Context, ref string) (*domain.Reservation, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) ListWithDetails(ctx context.Context, f repository.ReservationFilters) ([]repository.ReservationDetails, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ReservationDetails), args.Error(1)
}

func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockReservationRepo) AssignTable(ctx context.Context, id int64, tableID int64) error {
	args := m.Called(ctx, id, tableID)
	return args.Error(0)
}

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) FindOrCreateByEmail(ctx context.Context, name, email, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, name, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockTableRepo struct {
	mock.Mock
}

func (m *MockTableRepo) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) ReservationEvent(event string, r *domain.Reservation) {
	m.Called(event, r)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendReservationCreated(ctx context.Context, to, name, refCode string, start time.Time, partySize int) error {
	args := m.Called(ctx, to, name, refCode, start, partySize)
	return args.Error(0)
}

func (m *MockMailer) SendReservationConfirmed(ctx context.Context, to, name, refCode string, start time.Time) error {
	args := m.Called(ctx, to, name, refCode, start)
	return args.Error(0)
}

func (m *MockMailer) SendReservationCancelled(ctx context.Context, to, name, refCode string) error {
	args := m.Called(ctx, to, name, refCode)
	return args.Error(0)
}

func ptrInt64(v int64) *int64 { return &v }

func validCreateRequest() CreateReservationRequest {
	return CreateReservationRequest{
		CustomerName:  "Anna Rossi",
		CustomerEmail: "anna@example.com",
		CustomerPhone: "+39 333 1234567",
		DateTime:      time.Now().Add(48 * time.Hour),
		PartySize:     2,
	}
}

func TestCreateReservation_Success(t *testing.T) {
	reservations := new(MockReservationRepo)
	customers := new(MockCustomerRepo)
	sink := new(MockEventSink)
	mail := new(MockMailer)

	customers.On("FindOrCreateByEmail", mock.Anything, "Anna Rossi", "anna@example.com", "+39 333 1234567").
		Return(&domain.Customer{ID: 7, Name: "Anna Rossi", Email: "anna@example.com"}, nil)
	reservations.On("CreateWithConflictCheck", mock.Anything, mock.Anything).Return(nil)
	mail.On("SendReservationCreated", mock.Anything, "anna@example.com", "Anna Rossi", mock.Anything, mock.Anything, 2).Return(nil)
	sink.On("ReservationEvent", "reservation.created", mock.Anything).Return()

	service := NewService(reservations, customers, new(MockTableRepo), mail, sink)

	r, err := service.CreateReservation(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationPending, r.Status)
	assert.Equal(t, int64(7), r.CustomerID)
	// Duration defaults when omitted.
	assert.Equal(t, domain.DefaultDurationMinutes, r.DurationMinutes)
	assert.True(t, strings.HasPrefix(r.ReferenceCode, "RES-"))
	assert.Len(t, r.ReferenceCode, 12)

	reservations.AssertExpectations(t)
	customers.AssertExpectations(t)
	mail.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestCreateReservation_ConflictFromRepository(t *testing.T) {
	reservations := new(MockReservationRepo)
	customers := new(MockCustomerRepo)

	customers.On("FindOrCreateByEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.Customer{ID: 7}, nil)
	reservations.On("CreateWithConflictCheck", mock.Anything, mock.Anything).
		Return(repository.ErrReservationConflict)

	service := NewService(reservations, customers, new(MockTableRepo), nil, nil)

	_, err := service.CreateReservation(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateReservation_Validation(t *testing.T) {
	service := NewService(new(MockReservationRepo), new(MockCustomerRepo), new(MockTableRepo), nil, nil)

	past := validCreateRequest()
	past.DateTime = time.Now().Add(-time.Hour)

	tooShort := validCreateRequest()
	tooShort.DurationMinutes = 45

	tooLong := validCreateRequest()
	tooLong.DurationMinutes = 400

	noGuests := validCreateRequest()
	noGuests.PartySize = 0

	cases := []struct {
		name string
		req  CreateReservationRequest
	}{
		{"past date", past},
		{"duration below minimum", tooShort},
		{"duration above maximum", tooLong},
		{"zero party size", noGuests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateReservation(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateReservation_TableChecks(t *testing.T) {
	tables := new(MockTableRepo)
	tables.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Table{ID: 1, Capacity: 2, IsActive: true}, nil)
	tables.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Table{ID: 2, Capacity: 8, IsActive: false}, nil)
	tables.On("GetByID", mock.Anything, int64(99)).Return(nil, assert.AnError)

	service := NewService(new(MockReservationRepo), new(MockCustomerRepo), tables, nil, nil)

	overCapacity := validCreateRequest()
	overCapacity.PartySize = 6
	overCapacity.TableID = ptrInt64(1)
	_, err := service.CreateReservation(context.Background(), overCapacity)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	inactive := validCreateRequest()
	inactive.TableID = ptrInt64(2)
	_, err = service.CreateReservation(context.Background(), inactive)
	assert.ErrorIs(t, err, ErrTableInactive)

	missing := validCreateRequest()
	missing.TableID = ptrInt64(99)
	_, err = service.CreateReservation(context.Background(), missing)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestUpdateStatus_ConfirmSendsEmail(t *testing.T) {
	reservations := new(MockReservationRepo)
	customers := new(MockCustomerRepo)
	mail := new(MockMailer)
	sink := new(MockEventSink)

	start := time.Now().Add(24 * time.Hour)
	reservations.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID: 5, ReferenceCode: "RES-AB12CD34", CustomerID: 7,
		DateTime: start, Status: domain.ReservationPending,
	}, nil)
	reservations.On("UpdateStatus", mock.Anything, int64(5), domain.ReservationConfirmed).Return(nil)
	customers.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Customer{ID: 7, Name: "Anna", Email: "anna@example.com"}, nil)
	mail.On("SendReservationConfirmed", mock.Anything, "anna@example.com", "Anna", "RES-AB12CD34", start).Return(nil)
	sink.On("ReservationEvent", "reservation.status_changed", mock.Anything).Return()

	service := NewService(reservations, customers, new(MockTableRepo), mail, sink)

	r, err := service.UpdateStatus(context.Background(), 5, domain.ReservationConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, r.Status)
	mail.AssertExpectations(t)
}

func TestUpdateStatus_AnonymizedCustomerGetsNoEmail(t *testing.T) {
	reservations := new(MockReservationRepo)
	customers := new(MockCustomerRepo)
	mail := new(MockMailer)

	reservations.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID: 5, CustomerID: 7, Status: domain.ReservationConfirmed,
	}, nil)
	reservations.On("UpdateStatus", mock.Anything, int64(5), domain.ReservationCancelled).Return(nil)
	customers.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Customer{ID: 7, Anonymized: true}, nil)

	service := NewService(reservations, customers, new(MockTableRepo), mail, nil)

	_, err := service.UpdateStatus(context.Background(), 5, domain.ReservationCancelled)
	assert.NoError(t, err)
	mail.AssertNotCalled(t, "SendReservationCancelled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_TransitionGuards(t *testing.T) {
	cases := []struct {
		name    string
		from    domain.ReservationStatus
		to      domain.ReservationStatus
		allowed bool
	}{
		{"pending to confirmed", domain.ReservationPending, domain.ReservationConfirmed, true},
		{"pending to cancelled", domain.ReservationPending, domain.ReservationCancelled, true},
		{"pending to seated", domain.ReservationPending, domain.ReservationSeated, false},
		{"confirmed to seated", domain.ReservationConfirmed, domain.ReservationSeated, true},
		{"confirmed to no-show", domain.ReservationConfirmed, domain.ReservationNoShow, true},
		{"seated to completed", domain.ReservationSeated, domain.ReservationCompleted, true},
		{"seated to cancelled", domain.ReservationSeated, domain.ReservationCancelled, false},
		{"completed is terminal", domain.ReservationCompleted, domain.ReservationSeated, false},
		{"cancelled is terminal", domain.ReservationCancelled, domain.ReservationConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reservations := new(MockReservationRepo)
			customers := new(MockCustomerRepo)

			reservations.On("GetByID", mock.Anything, int64(1)).
				Return(&domain.Reservation{ID: 1, CustomerID: 7, Status: tc.from}, nil)
			reservations.On("UpdateStatus", mock.Anything, int64(1), tc.to).Return(nil)
			customers.On("GetByID", mock.Anything, int64(7)).
				Return(&domain.Customer{ID: 7, Anonymized: true}, nil)

			service := NewService(reservations, customers, new(MockTableRepo), nil, nil)

			_, err := service.UpdateStatus(context.Background(), 1, tc.to)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			}
		})
	}
}

func TestAssignTable_Success(t *testing.T) {
	reservations := new(MockReservationRepo)
	tables := new(MockTableRepo)
	sink := new(MockEventSink)

	reservations.On("GetByID", mock.Anything, int64(3)).Return(&domain.Reservation{
		ID: 3, PartySize: 4, Status: domain.ReservationConfirmed,
	}, nil)
	tables.On("GetByID", mock.Anything, int64(9)).
		Return(&domain.Table{ID: 9, Capacity: 6, IsActive: true}, nil)
	reservations.On("AssignTable", mock.Anything, int64(3), int64(9)).Return(nil)
	sink.On("ReservationEvent", "reservation.table_assigned", mock.Anything).Return()

	service := NewService(reservations, new(MockCustomerRepo), tables, nil, sink)

	r, err := service.AssignTable(context.Background(), 3, 9)
	assert.NoError(t, err)
	assert.NotNil(t, r.TableID)
	assert.Equal(t, int64(9), *r.TableID)
	sink.AssertExpectations(t)
}

func TestAssignTable_RejectsFinishedReservation(t *testing.T) {
	reservations := new(MockReservationRepo)
	reservations.On("GetByID", mock.Anything, int64(3)).Return(&domain.Reservation{
		ID: 3, PartySize: 2, Status: domain.ReservationCompleted,
	}, nil)

	service := NewService(reservations, new(MockCustomerRepo), new(MockTableRepo), nil, nil)

	_, err := service.AssignTable(context.Background(), 3, 9)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestAssignTable_CapacityCheck(t *testing.T) {
	reservations := new(MockReservationRepo)
	tables := new(MockTableRepo)

	reservations.On("GetByID", mock.Anything, int64(3)).Return(&domain.Reservation{
		ID: 3, PartySize: 8, Status: domain.ReservationConfirmed,
	}, nil)
	tables.On("GetByID", mock.Anything, int64(9)).
		Return(&domain.Table{ID: 9, Capacity: 4, IsActive: true}, nil)

	service := NewService(reservations, new(MockCustomerRepo), tables, nil, nil)

	_, err := service.AssignTable(context.Background(), 3, 9)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestGetByReferenceCode_NormalizesInput(t *testing.T) {
	reservations := new(MockReservationRepo)
	reservations.On("GetByReferenceCode", mock.Anything, "RES-AB12CD34").
		Return(&domain.Reservation{ID: 1, ReferenceCode: "RES-AB12CD34"}, nil)

	service := NewService(reservations, new(MockCustomerRepo), new(MockTableRepo), nil, nil)

	r, err := service.GetByReferenceCode(context.Background(), "  res-ab12cd34 ")
	assert.NoError(t, err)
	assert.Equal(t, "RES-AB12CD34", r.ReferenceCode)
	reservations.AssertExpectations(t)
}
