package reservation

import (
	"context"

	"aparthotel/internal/domain"
)

// ReservationRepository — only the methods the reservation service uses
type ReservationRepository interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByApartment(ctx context.Context, apartmentID int64) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Create(ctx context.Context, r *domain.Reservation) error
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
}

type ApartmentRepository interface {
	List(ctx context.Context) ([]domain.Apartment, error)
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
}

// EventPublisher pushes change notifications to connected dashboards.
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}
