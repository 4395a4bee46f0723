package cleaning

import (
	"context"
	"errors"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	assignments AssignmentRepository
	apartments  ApartmentRepository
	users       UserRepository
	taskTypes   TaskTypeRepository
	events      EventPublisher
}

func NewService(
	assignments AssignmentRepository,
	apartments ApartmentRepository,
	users UserRepository,
	taskTypes TaskTypeRepository,
	events EventPublisher,
) *Service {
	return &Service{
		assignments: assignments,
		apartments:  apartments,
		users:       users,
		taskTypes:   taskTypes,
		events:      events,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Assignment, error) {
	return s.assignments.List(ctx)
}

func (s *Service) ListByDate(ctx context.Context, dateStr string) ([]domain.Assignment, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, ErrValidation
	}
	return s.assignments.ListByDate(ctx, date)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Create(ctx context.Context, req CreateAssignmentRequest) (*domain.Assignment, error) {
	if len(req.WorkerIDs) == 0 {
		return nil, ErrValidation
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	ap, err := s.apartments.GetByID(ctx, req.ApartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	if ap.ServicesSuspended {
		return nil, ErrSuspended
	}

	for _, workerID := range req.WorkerIDs {
		if _, err := s.users.GetByID(ctx, workerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
	}

	a := &domain.Assignment{
		ApartmentID:      req.ApartmentID,
		WorkerIDs:        req.WorkerIDs,
		Date:             date,
		Notes:            req.Notes,
		Status:           domain.AssignmentPending,
		Shared:           req.Shared,
		CompletedTaskIDs: []int64{},
	}

	if err := s.assignments.Create(ctx, a); err != nil {
		return nil, err
	}

	s.publish(a)
	return a, nil
}

// Complete closes a pending assignment with the tasks actually performed.
// An empty task list is rejected: a completion with no work recorded is a
// data-entry mistake.
func (s *Service) Complete(ctx context.Context, id int64, req CompleteAssignmentRequest) (*domain.Assignment, error) {
	if len(req.CompletedTaskIDs) == 0 {
		return nil, ErrValidation
	}

	cnt, err := s.taskTypes.CountByIDs(ctx, req.CompletedTaskIDs)
	if err != nil {
		return nil, err
	}
	if cnt != int64(len(req.CompletedTaskIDs)) {
		return nil, ErrValidation
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.AssignmentPending {
		return nil, ErrInvalidTransition
	}

	a.Status = domain.AssignmentCompleted
	a.CompletedTaskIDs = req.CompletedTaskIDs
	a.Observations = req.Observations

	if err := s.assignments.Update(ctx, a); err != nil {
		return nil, err
	}

	s.publish(a)
	return a, nil
}

// Reassign replaces the worker set. Only pending assignments can be
// reassigned; correcting a completed one requires an explicit reopen first.
func (s *Service) Reassign(ctx context.Context, id int64, req ReassignRequest) (*domain.Assignment, error) {
	if len(req.WorkerIDs) == 0 {
		return nil, ErrValidation
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.AssignmentPending {
		return nil, ErrInvalidTransition
	}

	for _, workerID := range req.WorkerIDs {
		if _, err := s.users.GetByID(ctx, workerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
	}

	a.WorkerIDs = req.WorkerIDs
	if err := s.assignments.Update(ctx, a); err != nil {
		return nil, err
	}

	s.publish(a)
	return a, nil
}

func (s *Service) Verify(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.AssignmentCompleted {
		return nil, ErrInvalidTransition
	}

	a.Status = domain.AssignmentVerified
	if err := s.assignments.Update(ctx, a); err != nil {
		return nil, err
	}

	s.publish(a)
	return a, nil
}

// Reopen returns any non-pending assignment to PENDING. The completed-task
// list and observations are kept so a correction can be made in place.
func (s *Service) Reopen(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == domain.AssignmentPending {
		return nil, ErrInvalidTransition
	}

	a.Status = domain.AssignmentPending
	if err := s.assignments.Update(ctx, a); err != nil {
		return nil, err
	}

	s.publish(a)
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.assignments.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if s.events != nil {
		s.events.Publish("assignment_changed", map[string]any{"id": id, "deleted": true})
	}
	return nil
}

// EligibleApartments lists the apartments a new assignment can target for a
// date. One assignment per apartment per date is enforced here, by
// filtering, not by a hard constraint.
func (s *Service) EligibleApartments(ctx context.Context, dateStr string) ([]EligibleApartment, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	apartments, err := s.apartments.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]EligibleApartment, 0, len(apartments))
	for _, ap := range apartments {
		if ap.ServicesSuspended {
			continue
		}
		taken, err := s.assignments.ExistsForApartmentOnDate(ctx, ap.ID, date)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}
		out = append(out, EligibleApartment{
			ApartmentID:         ap.ID,
			Name:                ap.Name,
			Size:                string(ap.Size),
			CleaningTimeMinutes: ap.CleaningTimeMinutes,
		})
	}
	return out, nil
}

func (s *Service) publish(a *domain.Assignment) {
	if s.events != nil {
		s.events.Publish("assignment_changed", a)
	}
}
