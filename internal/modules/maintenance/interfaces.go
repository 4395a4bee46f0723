package maintenance

import (
	"context"

	"aparthotel/internal/domain"
)

type WorkOrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error)
	List(ctx context.Context) ([]domain.WorkOrder, error)
	ListByApartment(ctx context.Context, apartmentID int64) ([]domain.WorkOrder, error)
	Create(ctx context.Context, w *domain.WorkOrder) error
	Update(ctx context.Context, w *domain.WorkOrder) error
	Delete(ctx context.Context, id int64) error
}

type ApartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
}

type EventPublisher interface {
	Publish(eventType string, payload interface{})
}
