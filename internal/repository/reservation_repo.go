package repository

import (
	"context"
	"time"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	ApartmentID         int64     `gorm:"column:apartment_id;index"`
	GuestFirstName      string    `gorm:"column:guest_first_name"`
	GuestLastName       string    `gorm:"column:guest_last_name"`
	GuestDocument       string    `gorm:"column:guest_document"`
	VehicleRegistration *string   `gorm:"column:vehicle_registration"`
	CheckInDate         time.Time `gorm:"column:check_in_date"`
	CheckOutDate        time.Time `gorm:"column:check_out_date"`
	Details             *string   `gorm:"column:details"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var vehicle, details string
	if m.VehicleRegistration != nil {
		vehicle = *m.VehicleRegistration
	}
	if m.Details != nil {
		details = *m.Details
	}

	return &domain.Reservation{
		ID:                  m.ID,
		ApartmentID:         m.ApartmentID,
		GuestFirstName:      m.GuestFirstName,
		GuestLastName:       m.GuestLastName,
		GuestDocument:       m.GuestDocument,
		VehicleRegistration: vehicle,
		CheckInDate:         m.CheckInDate,
		CheckOutDate:        m.CheckOutDate,
		Details:             details,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toReservationModel(res *domain.Reservation) reservationModel {
	var vehicle, details *string
	if res.VehicleRegistration != "" {
		v := res.VehicleRegistration
		vehicle = &v
	}
	if res.Details != "" {
		v := res.Details
		details = &v
	}

	return reservationModel{
		ID:                  res.ID,
		ApartmentID:         res.ApartmentID,
		GuestFirstName:      res.GuestFirstName,
		GuestLastName:       res.GuestLastName,
		GuestDocument:       res.GuestDocument,
		VehicleRegistration: vehicle,
		CheckInDate:         res.CheckInDate,
		CheckOutDate:        res.CheckOutDate,
		Details:             details,
		CreatedAt:           res.CreatedAt,
		UpdatedAt:           res.UpdatedAt,
	}
}

func (r *ReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	var ms []reservationModel
	if tx := r.db.WithContext(ctx).Order("check_in_date").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservations(ms), nil
}

// ListByApartment returns the full reservation snapshot for one apartment,
// the input both the overlap check and the status resolver work on.
func (r *ReservationRepository) ListByApartment(ctx context.Context, apartmentID int64) ([]domain.Reservation, error) {
	var ms []reservationModel
	tx := r.db.WithContext(ctx).
		Where("apartment_id = ?", apartmentID).
		Order("check_in_date").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservations(ms), nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&reservationModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReservationRepository) CountByApartment(ctx context.Context, apartmentID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("apartment_id = ?", apartmentID).
		Count(&cnt)
	return cnt, tx.Error
}

func toDomainReservations(ms []reservationModel) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out
}
