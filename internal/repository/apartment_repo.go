package repository

import (
	"context"
	"time"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type ApartmentRepository struct {
	db *gorm.DB
}

func NewApartmentRepository(db *gorm.DB) *ApartmentRepository {
	return &ApartmentRepository{db: db}
}

type apartmentModel struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	Name                string    `gorm:"column:name"`
	Size                string    `gorm:"column:size"`
	SquareMeters        int       `gorm:"column:square_meters"`
	Bedrooms            int       `gorm:"column:bedrooms"`
	Bathrooms           int       `gorm:"column:bathrooms"`
	CleaningTimeMinutes int       `gorm:"column:cleaning_time_minutes"`
	ServicesSuspended   bool      `gorm:"column:services_suspended"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (apartmentModel) TableName() string { return "apartments" }

func toDomainApartment(m apartmentModel) *domain.Apartment {
	return &domain.Apartment{
		ID:                  m.ID,
		Name:                m.Name,
		Size:                domain.ApartmentSize(m.Size),
		SquareMeters:        m.SquareMeters,
		Bedrooms:            m.Bedrooms,
		Bathrooms:           m.Bathrooms,
		CleaningTimeMinutes: m.CleaningTimeMinutes,
		ServicesSuspended:   m.ServicesSuspended,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toApartmentModel(a *domain.Apartment) apartmentModel {
	return apartmentModel{
		ID:                  a.ID,
		Name:                a.Name,
		Size:                string(a.Size),
		SquareMeters:        a.SquareMeters,
		Bedrooms:            a.Bedrooms,
		Bathrooms:           a.Bathrooms,
		CleaningTimeMinutes: a.CleaningTimeMinutes,
		ServicesSuspended:   a.ServicesSuspended,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func (r *ApartmentRepository) List(ctx context.Context) ([]domain.Apartment, error) {
	var ms []apartmentModel
	if tx := r.db.WithContext(ctx).Order("name").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Apartment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainApartment(m))
	}
	return out, nil
}

func (r *ApartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	var m apartmentModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainApartment(m), nil
}

func (r *ApartmentRepository) Create(ctx context.Context, a *domain.Apartment) error {
	m := toApartmentModel(a)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainApartment(m)
	return nil
}

func (r *ApartmentRepository) Update(ctx context.Context, a *domain.Apartment) error {
	m := toApartmentModel(a)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainApartment(m)
	return nil
}

func (r *ApartmentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&apartmentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
