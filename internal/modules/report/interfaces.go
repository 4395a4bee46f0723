package report

import (
	"context"
	"time"

	"aparthotel/internal/domain"
)

type AssignmentRepository interface {
	ListByWorkerAndDate(ctx context.Context, workerID int64, date time.Time) ([]domain.Assignment, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Assignment, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type ApartmentRepository interface {
	List(ctx context.Context) ([]domain.Apartment, error)
}
