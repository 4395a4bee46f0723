package catalog

import (
	"context"
	"errors"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	apartments ApartmentRepository
	taskTypes  TaskTypeRepository
	refs       []ReferenceCounter
}

// NewService takes one ReferenceCounter per record kind that can pin an
// apartment: reservations, assignments, work orders.
func NewService(apartments ApartmentRepository, taskTypes TaskTypeRepository, refs ...ReferenceCounter) *Service {
	return &Service{apartments: apartments, taskTypes: taskTypes, refs: refs}
}

func (s *Service) ListApartments(ctx context.Context) ([]domain.Apartment, error) {
	return s.apartments.List(ctx)
}

func (s *Service) GetApartment(ctx context.Context, id int64) (*domain.Apartment, error) {
	ap, err := s.apartments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ap, nil
}

func (s *Service) CreateApartment(ctx context.Context, req ApartmentRequest) (*domain.Apartment, error) {
	size, ok := parseSize(req.Size)
	if !ok {
		return nil, ErrValidation
	}

	ap := &domain.Apartment{
		Name:                req.Name,
		Size:                size,
		SquareMeters:        req.SquareMeters,
		Bedrooms:            req.Bedrooms,
		Bathrooms:           req.Bathrooms,
		CleaningTimeMinutes: req.CleaningTimeMinutes,
		ServicesSuspended:   req.ServicesSuspended,
	}

	if err := s.apartments.Create(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}

func (s *Service) UpdateApartment(ctx context.Context, id int64, req ApartmentRequest) (*domain.Apartment, error) {
	size, ok := parseSize(req.Size)
	if !ok {
		return nil, ErrValidation
	}

	ap, err := s.GetApartment(ctx, id)
	if err != nil {
		return nil, err
	}

	ap.Name = req.Name
	ap.Size = size
	ap.SquareMeters = req.SquareMeters
	ap.Bedrooms = req.Bedrooms
	ap.Bathrooms = req.Bathrooms
	ap.CleaningTimeMinutes = req.CleaningTimeMinutes
	ap.ServicesSuspended = req.ServicesSuspended

	if err := s.apartments.Update(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}

// DeleteApartment refuses while any reservation, assignment or work order
// still points at the apartment.
func (s *Service) DeleteApartment(ctx context.Context, id int64) error {
	for _, ref := range s.refs {
		cnt, err := ref.CountByApartment(ctx, id)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrReferenced
		}
	}

	if err := s.apartments.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListTaskTypes(ctx context.Context) ([]domain.TaskType, error) {
	return s.taskTypes.List(ctx)
}

func (s *Service) CreateTaskType(ctx context.Context, req TaskTypeRequest) (*domain.TaskType, error) {
	t := &domain.TaskType{Code: req.Code, Description: req.Description}
	if err := s.taskTypes.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateTaskType(ctx context.Context, id int64, req TaskTypeRequest) (*domain.TaskType, error) {
	t, err := s.taskTypes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t.Code = req.Code
	t.Description = req.Description
	if err := s.taskTypes.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) DeleteTaskType(ctx context.Context, id int64) error {
	if err := s.taskTypes.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
