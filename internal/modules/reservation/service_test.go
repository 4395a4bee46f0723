package reservation

import (
	"context"
	"testing"

	"aparthotel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListByApartment(ctx context.Context, apartmentID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	if r != nil {
		r.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) Update(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) List(ctx context.Context) ([]domain.Apartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func validCreateRequest() CreateReservationRequest {
	return CreateReservationRequest{
		ApartmentID:    7,
		GuestFirstName: "Ana",
		GuestLastName:  "Torres",
		CheckInDate:    "2023-10-24",
		CheckOutDate:   "2023-10-28",
	}
}

func TestService_Create_Success(t *testing.T) {
	reservations := new(MockReservationRepository)
	apartments := new(MockApartmentRepository)

	apartments.On("GetByID", mock.Anything, int64(7)).Return(&domain.Apartment{ID: 7}, nil)
	reservations.On("ListByApartment", mock.Anything, int64(7)).Return([]domain.Reservation{}, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(reservations, apartments, nil)
	r, err := svc.Create(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(999), r.ID)
	assert.Equal(t, day("2023-10-24"), r.CheckInDate)
	reservations.AssertExpectations(t)
}

func TestService_Create_Conflict(t *testing.T) {
	reservations := new(MockReservationRepository)
	apartments := new(MockApartmentRepository)

	apartments.On("GetByID", mock.Anything, int64(7)).Return(&domain.Apartment{ID: 7}, nil)
	reservations.On("ListByApartment", mock.Anything, int64(7)).Return([]domain.Reservation{
		{ID: 1, ApartmentID: 7, CheckInDate: day("2023-10-20"), CheckOutDate: day("2023-10-26")},
	}, nil)

	svc := NewService(reservations, apartments, nil)
	_, err := svc.Create(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrConflict)
	reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_EqualDatesRejected(t *testing.T) {
	svc := NewService(new(MockReservationRepository), new(MockApartmentRepository), nil)

	req := validCreateRequest()
	req.CheckOutDate = req.CheckInDate
	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_ReversedDatesRejected(t *testing.T) {
	svc := NewService(new(MockReservationRepository), new(MockApartmentRepository), nil)

	req := validCreateRequest()
	req.CheckInDate = "2023-10-28"
	req.CheckOutDate = "2023-10-24"
	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_MissingApartment(t *testing.T) {
	reservations := new(MockReservationRepository)
	apartments := new(MockApartmentRepository)

	apartments.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(reservations, apartments, nil)
	_, err := svc.Create(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_SkipsOwnInterval(t *testing.T) {
	reservations := new(MockReservationRepository)
	apartments := new(MockApartmentRepository)

	current := &domain.Reservation{
		ID: 1, ApartmentID: 7,
		CheckInDate: day("2023-10-24"), CheckOutDate: day("2023-10-28"),
	}
	reservations.On("GetByID", mock.Anything, int64(1)).Return(current, nil)
	apartments.On("GetByID", mock.Anything, int64(7)).Return(&domain.Apartment{ID: 7}, nil)
	reservations.On("ListByApartment", mock.Anything, int64(7)).Return([]domain.Reservation{*current}, nil)
	reservations.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(reservations, apartments, nil)
	req := UpdateReservationRequest{
		ApartmentID:    7,
		GuestFirstName: "Ana",
		GuestLastName:  "Torres",
		CheckInDate:    "2023-10-25",
		CheckOutDate:   "2023-10-29",
	}
	r, err := svc.Update(context.Background(), 1, req)

	assert.NoError(t, err)
	assert.Equal(t, day("2023-10-25"), r.CheckInDate)
	reservations.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	reservations := new(MockReservationRepository)
	reservations.On("Delete", mock.Anything, int64(42)).Return(gorm.ErrRecordNotFound)

	svc := NewService(reservations, new(MockApartmentRepository), nil)
	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_StatusBoard(t *testing.T) {
	reservations := new(MockReservationRepository)
	apartments := new(MockApartmentRepository)

	apartments.On("List", mock.Anything).Return([]domain.Apartment{
		{ID: 1, Name: "0101"},
		{ID: 2, Name: "0201", ServicesSuspended: true},
	}, nil)
	reservations.On("ListByApartment", mock.Anything, int64(1)).Return([]domain.Reservation{
		{ID: 10, ApartmentID: 1, CheckInDate: day("2023-06-12"), CheckOutDate: day("2023-06-18")},
	}, nil)
	reservations.On("ListByApartment", mock.Anything, int64(2)).Return([]domain.Reservation{}, nil)

	svc := NewService(reservations, apartments, nil)
	board, err := svc.StatusBoard(context.Background(), "2023-06-15")

	assert.NoError(t, err)
	assert.Len(t, board, 2)
	assert.Equal(t, domain.OccupancyOccupied, board[0].Status)
	assert.Equal(t, int64(10), board[0].Reservation.ID)
	assert.Equal(t, domain.OccupancyFree, board[1].Status)
	assert.True(t, board[1].Suspended)
}
