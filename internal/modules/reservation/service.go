package reservation

import (
	"context"
	"errors"
	"time"

	"aparthotel/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	reservations ReservationRepository
	apartments   ApartmentRepository
	events       EventPublisher
}

func NewService(reservations ReservationRepository, apartments ApartmentRepository, events EventPublisher) *Service {
	return &Service{
		reservations: reservations,
		apartments:   apartments,
		events:       events,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	checkIn, checkOut, err := s.validateDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.apartments.GetByID(ctx, req.ApartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	existing, err := s.reservations.ListByApartment(ctx, req.ApartmentID)
	if err != nil {
		return nil, err
	}
	if conflict := findConflict(existing, checkIn, checkOut, 0); conflict != nil {
		return nil, ErrConflict
	}

	r := &domain.Reservation{
		ApartmentID:         req.ApartmentID,
		GuestFirstName:      req.GuestFirstName,
		GuestLastName:       req.GuestLastName,
		GuestDocument:       req.GuestDocument,
		VehicleRegistration: req.VehicleRegistration,
		CheckInDate:         checkIn,
		CheckOutDate:        checkOut,
		Details:             req.Details,
	}

	if err := s.reservations.Create(ctx, r); err != nil {
		// Postgres exclusion constraint backstop: two writers racing past
		// the snapshot check still cannot both commit.
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23P01" {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("reservation_changed", r)
	}

	return r, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateReservationRequest) (*domain.Reservation, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	checkIn, checkOut, err := s.validateDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.apartments.GetByID(ctx, req.ApartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	existing, err := s.reservations.ListByApartment(ctx, req.ApartmentID)
	if err != nil {
		return nil, err
	}
	if conflict := findConflict(existing, checkIn, checkOut, id); conflict != nil {
		return nil, ErrConflict
	}

	r.ApartmentID = req.ApartmentID
	r.GuestFirstName = req.GuestFirstName
	r.GuestLastName = req.GuestLastName
	r.GuestDocument = req.GuestDocument
	r.VehicleRegistration = req.VehicleRegistration
	r.CheckInDate = checkIn
	r.CheckOutDate = checkOut
	r.Details = req.Details

	if err := s.reservations.Update(ctx, r); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23P01" {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("reservation_changed", r)
	}

	return r, nil
}

// Delete removes a reservation for good. There is no soft delete here: the
// operator action is explicit and irreversible.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.reservations.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if s.events != nil {
		s.events.Publish("reservation_changed", map[string]any{"id": id, "deleted": true})
	}

	return nil
}

// StatusBoard resolves every apartment's occupancy for the given day.
func (s *Service) StatusBoard(ctx context.Context, dateStr string) ([]ApartmentStatus, error) {
	var day time.Time
	if dateStr == "" {
		now := time.Now().UTC()
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		var err error
		day, err = parseDate(dateStr)
		if err != nil {
			return nil, ErrValidation
		}
	}

	apartments, err := s.apartments.List(ctx)
	if err != nil {
		return nil, err
	}

	board := make([]ApartmentStatus, 0, len(apartments))
	for _, ap := range apartments {
		reservations, err := s.reservations.ListByApartment(ctx, ap.ID)
		if err != nil {
			return nil, err
		}

		status, associated := ResolveStatus(day, reservations)
		board = append(board, ApartmentStatus{
			ApartmentID: ap.ID,
			Name:        ap.Name,
			Suspended:   ap.ServicesSuspended,
			Status:      status,
			Reservation: associated,
		})
	}
	return board, nil
}

func (s *Service) validateDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := parseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	checkOut, err := parseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	// date order is checked before any overlap scan
	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return checkIn, checkOut, nil
}
