package catalog

import (
	"context"

	"aparthotel/internal/domain"
)

type ApartmentRepository interface {
	List(ctx context.Context) ([]domain.Apartment, error)
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
	Create(ctx context.Context, a *domain.Apartment) error
	Update(ctx context.Context, a *domain.Apartment) error
	Delete(ctx context.Context, id int64) error
}

type TaskTypeRepository interface {
	List(ctx context.Context) ([]domain.TaskType, error)
	GetByID(ctx context.Context, id int64) (*domain.TaskType, error)
	Create(ctx context.Context, t *domain.TaskType) error
	Update(ctx context.Context, t *domain.TaskType) error
	Delete(ctx context.Context, id int64) error
}

// ReferenceCounter reports how many records of one kind point at an
// apartment. Reservations, assignments and work orders each provide one.
type ReferenceCounter interface {
	CountByApartment(ctx context.Context, apartmentID int64) (int64, error)
}
