package cleaning

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

func (m *MockAssignmentRepository) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) List(ctx context.Context) ([]domain.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Assignment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ExistsForApartmentOnDate(ctx context.Context, apartmentID int64, date time.Time) (bool, error) {
	args := m.Called(ctx, apartmentID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *domain.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, id int64) error {
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

type MockTaskTypeRepository struct {
	mock.Mock
}

func (m *MockTaskTypeRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(assignments *MockAssignmentRepository, apartments *MockApartmentRepository, users *MockUserRepository, taskTypes *MockTaskTypeRepository) *Service {
	return NewService(assignments, apartments, users, taskTypes, nil)
}

func TestService_Create_Success(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	apartments := new(MockApartmentRepository)
	users := new(MockUserRepository)

	apartments.On("GetByID", mock.Anything, int64(3)).Return(&domain.Apartment{ID: 3}, nil)
	users.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{ID: 10}, nil)
	users.On("GetByID", mock.Anything, int64(11)).Return(&domain.User{ID: 11}, nil)
	assignments.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(assignments, apartments, users, new(MockTaskTypeRepository))
	a, err := svc.Create(context.Background(), CreateAssignmentRequest{
		ApartmentID: 3,
		WorkerIDs:   []int64{10, 11},
		Date:        "2023-06-15",
		Shared:      true,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.AssignmentPending, a.Status)
	assert.Empty(t, a.CompletedTaskIDs)
	assignments.AssertExpectations(t)
}

func TestService_Create_EmptyWorkersRejected(t *testing.T) {
	svc := newTestService(new(MockAssignmentRepository), new(MockApartmentRepository), new(MockUserRepository), new(MockTaskTypeRepository))

	_, err := svc.Create(context.Background(), CreateAssignmentRequest{
		ApartmentID: 3,
		WorkerIDs:   []int64{},
		Date:        "2023-06-15",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_SuspendedApartmentRejected(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	apartments := new(MockApartmentRepository)

	apartments.On("GetByID", mock.Anything, int64(3)).Return(&domain.Apartment{ID: 3, ServicesSuspended: true}, nil)

	svc := newTestService(assignments, apartments, new(MockUserRepository), new(MockTaskTypeRepository))
	_, err := svc.Create(context.Background(), CreateAssignmentRequest{
		ApartmentID: 3,
		WorkerIDs:   []int64{10},
		Date:        "2023-06-15",
	})

	assert.ErrorIs(t, err, ErrSuspended)
	assignments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Complete_Success(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	taskTypes := new(MockTaskTypeRepository)

	taskTypes.On("CountByIDs", mock.Anything, []int64{1, 2}).Return(int64(2), nil)
	assignments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Assignment{
		ID: 5, Status: domain.AssignmentPending,
	}, nil)
	assignments.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(assignments, new(MockApartmentRepository), new(MockUserRepository), taskTypes)
	a, err := svc.Complete(context.Background(), 5, CompleteAssignmentRequest{
		CompletedTaskIDs: []int64{1, 2},
		Observations:     "broken lamp in bedroom",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.AssignmentCompleted, a.Status)
	assert.Equal(t, []int64{1, 2}, a.CompletedTaskIDs)
	assert.Equal(t, "broken lamp in bedroom", a.Observations)
}

func TestService_Complete_EmptyTasksRejected(t *testing.T) {
	svc := newTestService(new(MockAssignmentRepository), new(MockApartmentRepository), new(MockUserRepository), new(MockTaskTypeRepository))

	_, err := svc.Complete(context.Background(), 5, CompleteAssignmentRequest{CompletedTaskIDs: []int64{}})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Complete_UnknownTaskTypeRejected(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	taskTypes := new(MockTaskTypeRepository)

	taskTypes.On("CountByIDs", mock.Anything, []int64{1, 99}).Return(int64(1), nil)

	svc := newTestService(assignments, new(MockApartmentRepository), new(MockUserRepository), taskTypes)
	_, err := svc.Complete(context.Background(), 5, CompleteAssignmentRequest{CompletedTaskIDs: []int64{1, 99}})

	assert.ErrorIs(t, err, ErrValidation)
	assignments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Complete_AlreadyCompletedRejected(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	taskTypes := new(MockTaskTypeRepository)

	taskTypes.On("CountByIDs", mock.Anything, []int64{1}).Return(int64(1), nil)
	assignments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Assignment{
		ID: 5, Status: domain.AssignmentCompleted,
	}, nil)

	svc := newTestService(assignments, new(MockApartmentRepository), new(MockUserRepository), taskTypes)
	_, err := svc.Complete(context.Background(), 5, CompleteAssignmentRequest{CompletedTaskIDs: []int64{1}})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Reassign_NonPendingRejected(t *testing.T) {
	assignments := new(MockAssignmentRepository)

	assignments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Assignment{
		ID: 5, Status: domain.AssignmentCompleted,
	}, nil)

	svc := newTestService(assignments, new(MockApartmentRepository), new(MockUserRepository), new(MockTaskTypeRepository))
	_, err := svc.Reassign(context.Background(), 5, ReassignRequest{WorkerIDs: []int64{12}})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assignments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Verify_OnlyFromCompleted(t *testing.T) {
	assignments := new(MockAssignmentRepository)

	assignments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Assignment{
		ID: 5, Status: domain.AssignmentPending,
	}, nil)

	svc := newTestService(assignments, new(MockApartmentRepository), new(MockUserRepository), new(MockTaskTypeRepository))
	_, err := svc.Verify(context.Background(), 5)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Verify_DoubleVerifyRejected(t *testing.T) {
	assignments := new(MockAssignmentRepository)

	assignments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Assignment{
		ID: 5, Status: domain.AssignmentVerified,
	}, nil)

	svc := newTestService(assignments, new(MockApartmentRepository), new(MockUserRepository), new(MockTaskTypeRepository))
	_, err := svc.Verify(context.Background(), 5)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Reopen_KeepsTasksAndObservations(t *testing.T) {
	assignments := new(MockAssignmentRepository)

	assignments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Assignment{
		ID:               5,
		Status:           domain.AssignmentVerified,
		CompletedTaskIDs: []int64{1, 2},
		Observations:     "stain on carpet",
	}, nil)
	assignments.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(assignments, new(MockApartmentRepository), new(MockUserRepository), new(MockTaskTypeRepository))
	a, err := svc.Reopen(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.AssignmentPending, a.Status)
	assert.Equal(t, []int64{1, 2}, a.CompletedTaskIDs)
	assert.Equal(t, "stain on carpet", a.Observations)
}

func TestService_Reopen_PendingRejected(t *testing.T) {
	assignments := new(MockAssignmentRepository)

	assignments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Assignment{
		ID: 5, Status: domain.AssignmentPending,
	}, nil)

	svc := newTestService(assignments, new(MockApartmentRepository), new(MockUserRepository), new(MockTaskTypeRepository))
	_, err := svc.Reopen(context.Background(), 5)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_GetByID_NotFound(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	assignments.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(assignments, new(MockApartmentRepository), new(MockUserRepository), new(MockTaskTypeRepository))
	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_EligibleApartments(t *testing.T) {
	assignments := new(MockAssignmentRepository)
	apartments := new(MockApartmentRepository)

	apartments.On("List", mock.Anything).Return([]domain.Apartment{
		{ID: 1, Name: "0101", Size: domain.SizeSmall, CleaningTimeMinutes: 45},
		{ID: 2, Name: "0102", Size: domain.SizeMedium, CleaningTimeMinutes: 60, ServicesSuspended: true},
		{ID: 3, Name: "0201", Size: domain.SizeLarge, CleaningTimeMinutes: 90},
	}, nil)
	assignments.On("ExistsForApartmentOnDate", mock.Anything, int64(1), mock.Anything).Return(false, nil)
	assignments.On("ExistsForApartmentOnDate", mock.Anything, int64(3), mock.Anything).Return(true, nil)

	svc := newTestService(assignments, apartments, new(MockUserRepository), new(MockTaskTypeRepository))
	eligible, err := svc.EligibleApartments(context.Background(), "2023-06-15")

	assert.NoError(t, err)
	assert.Len(t, eligible, 1)
	assert.Equal(t, int64(1), eligible[0].ApartmentID)
}

func TestCredit(t *testing.T) {
	t.Run("solo worker keeps full credit", func(t *testing.T) {
		minutes, share := Credit(60, 1)
		assert.Equal(t, 60.0, minutes)
		assert.Equal(t, 1.0, share)
	})

	t.Run("two workers split evenly", func(t *testing.T) {
		minutes, share := Credit(60, 2)
		assert.Equal(t, 30.0, minutes)
		assert.Equal(t, 0.5, share)
	})

	t.Run("three workers", func(t *testing.T) {
		minutes, share := Credit(90, 3)
		assert.InDelta(t, 30.0, minutes, 1e-9)
		assert.InDelta(t, 1.0/3.0, share, 1e-9)
	})

	t.Run("zero workers treated as one", func(t *testing.T) {
		minutes, share := Credit(60, 0)
		assert.Equal(t, 60.0, minutes)
		assert.Equal(t, 1.0, share)
	})
}
