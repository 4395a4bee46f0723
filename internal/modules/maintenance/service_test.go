package maintenance

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
type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) List(ctx context.Context) ([]domain.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) ListByApartment(ctx context.Context, apartmentID int64) ([]domain.WorkOrder, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) Create(ctx context.Context, w *domain.WorkOrder) error {
	args := m.Called(ctx, w)
	if w != nil {
		w.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, w *domain.WorkOrder) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d.UTC()
}

func TestService_Create_Success(t *testing.T) {
	workOrders := new(MockWorkOrderRepository)
	apartments := new(MockApartmentRepository)

	apartments.On("GetByID", mock.Anything, int64(3)).Return(&domain.Apartment{ID: 3}, nil)
	workOrders.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(workOrders, apartments, nil)
	w, err := svc.Create(context.Background(), CreateWorkOrderRequest{
		ApartmentID:    3,
		RequestDate:    "2023-01-01",
		RequesterName:  "Carlos Duarte",
		RequestDetails: "leaking kitchen faucet",
		RequestMedium:  "phone",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.WorkOrderRequested, w.Status)
	assert.Nil(t, w.CompletionDate)
	workOrders.AssertExpectations(t)
}

func TestService_Create_UnknownMediumRejected(t *testing.T) {
	svc := NewService(new(MockWorkOrderRepository), new(MockApartmentRepository), nil)

	_, err := svc.Create(context.Background(), CreateWorkOrderRequest{
		ApartmentID:   3,
		RequestDate:   "2023-01-01",
		RequesterName: "Carlos Duarte",
		RequestMedium: "carrier-pigeon",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_LogWorkDone_Success(t *testing.T) {
	workOrders := new(MockWorkOrderRepository)

	workOrders.On("GetByID", mock.Anything, int64(5)).Return(&domain.WorkOrder{
		ID: 5, Status: domain.WorkOrderRequested, RequestDate: day("2023-01-01"),
	}, nil)
	workOrders.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(workOrders, new(MockApartmentRepository), nil)
	w, err := svc.LogWorkDone(context.Background(), 5, LogWorkDoneRequest{
		CompletionDate: "2023-01-03",
		MaterialsUsed:  "faucet cartridge",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.WorkOrderDone, w.Status)
	assert.Equal(t, day("2023-01-03"), *w.CompletionDate)
}

func TestService_LogWorkDone_CompletionBeforeRequestRejected(t *testing.T) {
	workOrders := new(MockWorkOrderRepository)

	workOrders.On("GetByID", mock.Anything, int64(5)).Return(&domain.WorkOrder{
		ID: 5, Status: domain.WorkOrderRequested, RequestDate: day("2023-01-01"),
	}, nil)

	svc := NewService(workOrders, new(MockApartmentRepository), nil)
	_, err := svc.LogWorkDone(context.Background(), 5, LogWorkDoneRequest{CompletionDate: "2022-12-31"})

	assert.ErrorIs(t, err, ErrDateOrder)
	workOrders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_LogWorkDone_AlreadyDoneRejected(t *testing.T) {
	workOrders := new(MockWorkOrderRepository)

	done := day("2023-01-03")
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(&domain.WorkOrder{
		ID: 5, Status: domain.WorkOrderDone, RequestDate: day("2023-01-01"), CompletionDate: &done,
	}, nil)

	svc := NewService(workOrders, new(MockApartmentRepository), nil)
	_, err := svc.LogWorkDone(context.Background(), 5, LogWorkDoneRequest{CompletionDate: "2023-01-05"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_LogApproval_Success(t *testing.T) {
	workOrders := new(MockWorkOrderRepository)

	done := day("2023-01-03")
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(&domain.WorkOrder{
		ID: 5, Status: domain.WorkOrderDone, RequestDate: day("2023-01-01"), CompletionDate: &done,
	}, nil)
	workOrders.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(workOrders, new(MockApartmentRepository), nil)
	w, err := svc.LogApproval(context.Background(), 5, LogApprovalRequest{
		ApprovalDate: "2023-01-04",
		ApprovalName: "Marta Ibarra",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.WorkOrderApproved, w.Status)
	assert.Equal(t, day("2023-01-04"), *w.ApprovalDate)
	assert.Equal(t, "Marta Ibarra", w.ApprovalName)
}

func TestService_LogApproval_BeforeCompletionRejected(t *testing.T) {
	workOrders := new(MockWorkOrderRepository)

	done := day("2023-01-03")
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(&domain.WorkOrder{
		ID: 5, Status: domain.WorkOrderDone, RequestDate: day("2023-01-01"), CompletionDate: &done,
	}, nil)

	svc := NewService(workOrders, new(MockApartmentRepository), nil)
	_, err := svc.LogApproval(context.Background(), 5, LogApprovalRequest{
		ApprovalDate: "2023-01-02",
		ApprovalName: "Marta Ibarra",
	})

	assert.ErrorIs(t, err, ErrDateOrder)
}

func TestService_LogApproval_FromRequestedRejected(t *testing.T) {
	workOrders := new(MockWorkOrderRepository)

	workOrders.On("GetByID", mock.Anything, int64(5)).Return(&domain.WorkOrder{
		ID: 5, Status: domain.WorkOrderRequested, RequestDate: day("2023-01-01"),
	}, nil)

	svc := NewService(workOrders, new(MockApartmentRepository), nil)
	_, err := svc.LogApproval(context.Background(), 5, LogApprovalRequest{
		ApprovalDate: "2023-01-04",
		ApprovalName: "Marta Ibarra",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Delete_AnyState(t *testing.T) {
	workOrders := new(MockWorkOrderRepository)
	workOrders.On("Delete", mock.Anything, int64(5)).Return(nil)

	svc := NewService(workOrders, new(MockApartmentRepository), nil)
	assert.NoError(t, svc.Delete(context.Background(), 5))
}

func TestService_Delete_NotFound(t *testing.T) {
	workOrders := new(MockWorkOrderRepository)
	workOrders.On("Delete", mock.Anything, int64(42)).Return(gorm.ErrRecordNotFound)

	svc := NewService(workOrders, new(MockApartmentRepository), nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrNotFound)
}
