package maintenance

import (
	"context"
	"errors"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	workOrders WorkOrderRepository
	apartments ApartmentRepository
	events     EventPublisher
}

func NewService(workOrders WorkOrderRepository, apartments ApartmentRepository, events EventPublisher) *Service {
	return &Service{workOrders: workOrders, apartments: apartments, events: events}
}

func (s *Service) List(ctx context.Context) ([]domain.WorkOrder, error) {
	return s.workOrders.List(ctx)
}

func (s *Service) ListByApartment(ctx context.Context, apartmentID int64) ([]domain.WorkOrder, error) {
	return s.workOrders.ListByApartment(ctx, apartmentID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	w, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) Create(ctx context.Context, req CreateWorkOrderRequest) (*domain.WorkOrder, error) {
	requestDate, err := parseDate(req.RequestDate)
	if err != nil {
		return nil, ErrValidation
	}
	medium, ok := parseMedium(req.RequestMedium)
	if !ok {
		return nil, ErrValidation
	}

	if _, err := s.apartments.GetByID(ctx, req.ApartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	w := &domain.WorkOrder{
		ApartmentID:    req.ApartmentID,
		RequestDate:    requestDate,
		RequesterName:  req.RequesterName,
		RequestDetails: req.RequestDetails,
		RequestMedium:  medium,
		Status:         domain.WorkOrderRequested,
	}

	if err := s.workOrders.Create(ctx, w); err != nil {
		return nil, err
	}

	s.publish(w)
	return w, nil
}

// LogWorkDone advances a requested order to done. The date check runs before
// the status check so a bad date never leaves a half-applied transition.
func (s *Service) LogWorkDone(ctx context.Context, id int64, req LogWorkDoneRequest) (*domain.WorkOrder, error) {
	completionDate, err := parseDate(req.CompletionDate)
	if err != nil {
		return nil, ErrValidation
	}

	w, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if completionDate.Before(w.RequestDate) {
		return nil, ErrDateOrder
	}
	if w.Status != domain.WorkOrderRequested {
		return nil, ErrInvalidTransition
	}

	w.Status = domain.WorkOrderDone
	w.CompletionDate = &completionDate
	w.MaterialsUsed = req.MaterialsUsed

	if err := s.workOrders.Update(ctx, w); err != nil {
		return nil, err
	}

	s.publish(w)
	return w, nil
}

func (s *Service) LogApproval(ctx context.Context, id int64, req LogApprovalRequest) (*domain.WorkOrder, error) {
	approvalDate, err := parseDate(req.ApprovalDate)
	if err != nil {
		return nil, ErrValidation
	}

	w, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Status != domain.WorkOrderDone {
		return nil, ErrInvalidTransition
	}
	if w.CompletionDate != nil && approvalDate.Before(*w.CompletionDate) {
		return nil, ErrDateOrder
	}

	w.Status = domain.WorkOrderApproved
	w.ApprovalDate = &approvalDate
	w.ApprovalName = req.ApprovalName

	if err := s.workOrders.Update(ctx, w); err != nil {
		return nil, err
	}

	s.publish(w)
	return w, nil
}

// Delete removes a work order in any state. Approved orders are deletable
// too; the paper trail lives outside the system.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.workOrders.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if s.events != nil {
		s.events.Publish("work_order_changed", map[string]any{"id": id, "deleted": true})
	}
	return nil
}

func (s *Service) publish(w *domain.WorkOrder) {
	if s.events != nil {
		s.events.Publish("work_order_changed", w)
	}
}
