package report

import (
	"context"
	"testing"
	"time"

	"aparthotel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) ListByWorkerAndDate(ctx context.Context, workerID int64, date time.Time) ([]domain.Assignment, error) {
	args := m.Called(ctx, workerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Assignment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
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

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d.UTC()
}

func testApartments() []domain.Apartment {
	return []domain.Apartment{
		{ID: 1, Name: "0101", CleaningTimeMinutes: 60},
		{ID: 2, Name: "0102", CleaningTimeMinutes: 90},
	}
}

func TestService_DailyProgress(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	users := new(MockUserRepository)
	apartments := new(MockApartmentRepository)

	quota := 480
	users.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{ID: 10, DailyMinutes: &quota}, nil)
	apartments.On("List", mock.Anything).Return(testApartments(), nil)
	assignments.On("ListByWorkerAndDate", mock.Anything, int64(10), day("2023-06-15")).Return([]domain.Assignment{
		// solo, completed: full 60 minutes
		{ID: 1, ApartmentID: 1, WorkerIDs: []int64{10}, Status: domain.AssignmentCompleted},
		// shared with one other, still pending: 45 minutes pending
		{ID: 2, ApartmentID: 2, WorkerIDs: []int64{10, 11}, Status: domain.AssignmentPending},
	}, nil)

	svc := NewService(assignments, users, apartments)
	p, err := svc.DailyProgress(context.Background(), 10, "2023-06-15")

	assert.NoError(t, err)
	assert.InDelta(t, 1.0, p.CompletedCount, 1e-9)
	assert.InDelta(t, 1.5, p.TotalCount, 1e-9)
	assert.InDelta(t, 60.0, p.CompletedMinutes, 1e-9)
	assert.InDelta(t, 45.0, p.PendingMinutes, 1e-9)
	assert.Equal(t, 480, p.QuotaMinutes)
	assert.InDelta(t, 1.0/1.5, p.PctTasks, 1e-9)
	if assert.NotNil(t, p.PctTime) {
		assert.InDelta(t, 60.0/480.0, *p.PctTime, 1e-9)
	}
}

func TestService_DailyProgress_NoQuotaMeansNoPctTime(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	users := new(MockUserRepository)
	apartments := new(MockApartmentRepository)

	users.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{ID: 10}, nil)
	apartments.On("List", mock.Anything).Return(testApartments(), nil)
	assignments.On("ListByWorkerAndDate", mock.Anything, int64(10), day("2023-06-15")).Return([]domain.Assignment{
		{ID: 1, ApartmentID: 1, WorkerIDs: []int64{10}, Status: domain.AssignmentVerified},
	}, nil)

	svc := NewService(assignments, users, apartments)
	p, err := svc.DailyProgress(context.Background(), 10, "2023-06-15")

	assert.NoError(t, err)
	assert.Nil(t, p.PctTime)
	assert.Equal(t, 0, p.QuotaMinutes)
	assert.InDelta(t, 1.0, p.PctTasks, 1e-9)
}

func TestService_DailyProgress_VerifiedCountsAsCompleted(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	users := new(MockUserRepository)
	apartments := new(MockApartmentRepository)

	users.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{ID: 10}, nil)
	apartments.On("List", mock.Anything).Return(testApartments(), nil)
	assignments.On("ListByWorkerAndDate", mock.Anything, int64(10), day("2023-06-15")).Return([]domain.Assignment{
		{ID: 1, ApartmentID: 1, WorkerIDs: []int64{10}, Status: domain.AssignmentVerified},
		{ID: 2, ApartmentID: 2, WorkerIDs: []int64{10}, Status: domain.AssignmentCompleted},
	}, nil)

	svc := NewService(assignments, users, apartments)
	p, err := svc.DailyProgress(context.Background(), 10, "2023-06-15")

	assert.NoError(t, err)
	assert.InDelta(t, 2.0, p.CompletedCount, 1e-9)
	assert.InDelta(t, 150.0, p.CompletedMinutes, 1e-9)
	assert.InDelta(t, 0.0, p.PendingMinutes, 1e-9)
}

func TestService_DailyProgress_UnknownWorker(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(new(MockAssignmentRepository), users, new(MockApartmentRepository))
	_, err := svc.DailyProgress(context.Background(), 404, "2023-06-15")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DailyProgress_BadDate(t *testing.T) {
	svc := NewService(new(MockAssignmentRepository), new(MockUserRepository), new(MockApartmentRepository))
	_, err := svc.DailyProgress(context.Background(), 10, "June 15th")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Workload_SharedTaskNeverDoubleCounts(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	users := new(MockUserRepository)
	apartments := new(MockApartmentRepository)

	users.On("List", mock.Anything).Return([]domain.User{
		{ID: 10, Name: "Lucía Gómez"},
		{ID: 11, Name: "Rosa Martínez"},
	}, nil)
	apartments.On("List", mock.Anything).Return(testApartments(), nil)
	assignments.On("ListByDateRange", mock.Anything, day("2023-06-01"), day("2023-06-30")).Return([]domain.Assignment{
		{ID: 1, ApartmentID: 1, WorkerIDs: []int64{10, 11}, Status: domain.AssignmentVerified, Shared: true},
	}, nil)

	svc := NewService(assignments, users, apartments)
	rows, err := svc.Workload(context.Background(), "2023-06-01", "2023-06-30", 0)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	var totalMinutes, totalCount float64
	for _, row := range rows {
		totalMinutes += row.CompletedMinutes
		totalCount += row.ApartmentCount
	}
	assert.InDelta(t, 60.0, totalMinutes, 1e-9)
	assert.InDelta(t, 1.0, totalCount, 1e-9)
}

func TestService_Workload_FilterByWorker(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	users := new(MockUserRepository)
	apartments := new(MockApartmentRepository)

	users.On("List", mock.Anything).Return([]domain.User{
		{ID: 10, Name: "Lucía Gómez"},
		{ID: 11, Name: "Rosa Martínez"},
	}, nil)
	apartments.On("List", mock.Anything).Return(testApartments(), nil)
	assignments.On("ListByDateRange", mock.Anything, day("2023-06-01"), day("2023-06-30")).Return([]domain.Assignment{
		{ID: 1, ApartmentID: 1, WorkerIDs: []int64{10, 11}, Status: domain.AssignmentVerified},
		{ID: 2, ApartmentID: 2, WorkerIDs: []int64{11}, Status: domain.AssignmentPending},
	}, nil)

	svc := NewService(assignments, users, apartments)
	rows, err := svc.Workload(context.Background(), "2023-06-01", "2023-06-30", 11)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, int64(11), rows[0].WorkerID)
	assert.InDelta(t, 30.0, rows[0].CompletedMinutes, 1e-9)
	assert.InDelta(t, 90.0, rows[0].PendingMinutes, 1e-9)
}

func TestService_Workload_ReversedRangeRejected(t *testing.T) {
	svc := NewService(new(MockAssignmentRepository), new(MockUserRepository), new(MockApartmentRepository))
	_, err := svc.Workload(context.Background(), "2023-06-30", "2023-06-01", 0)

	assert.ErrorIs(t, err, ErrValidation)
}
