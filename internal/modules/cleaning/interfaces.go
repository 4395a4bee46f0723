package cleaning

import (
	"context"
	"time"

	"aparthotel/internal/domain"
)

// AssignmentRepository — only the methods the cleaning service uses
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	List(ctx context.Context) ([]domain.Assignment, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.Assignment, error)
	ExistsForApartmentOnDate(ctx context.Context, apartmentID int64, date time.Time) (bool, error)
	Create(ctx context.Context, a *domain.Assignment) error
	Update(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, id int64) error
}

type ApartmentRepository interface {
	List(ctx context.Context) ([]domain.Apartment, error)
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type TaskTypeRepository interface {
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
}

type EventPublisher interface {
	Publish(eventType string, payload interface{})
}
