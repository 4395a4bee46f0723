package repository

import (
	"context"
	"time"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type LogbookRepository struct {
	db *gorm.DB
}

func NewLogbookRepository(db *gorm.DB) *LogbookRepository {
	return &LogbookRepository{db: db}
}

type logbookEntryModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Date        time.Time `gorm:"column:date;index"`
	AuthorID    int64     `gorm:"column:author_id"`
	ApartmentID *int64    `gorm:"column:apartment_id"`
	Text        string    `gorm:"column:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (logbookEntryModel) TableName() string { return "logbook_entries" }

func toDomainLogbookEntry(m logbookEntryModel) *domain.LogbookEntry {
	return &domain.LogbookEntry{
		ID:          m.ID,
		Date:        m.Date,
		AuthorID:    m.AuthorID,
		ApartmentID: m.ApartmentID,
		Text:        m.Text,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *LogbookRepository) List(ctx context.Context) ([]domain.LogbookEntry, error) {
	var ms []logbookEntryModel
	if tx := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.LogbookEntry, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainLogbookEntry(m))
	}
	return out, nil
}

func (r *LogbookRepository) GetByID(ctx context.Context, id int64) (*domain.LogbookEntry, error) {
	var m logbookEntryModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLogbookEntry(m), nil
}

func (r *LogbookRepository) Create(ctx context.Context, e *domain.LogbookEntry) error {
	m := logbookEntryModel{
		Date:        e.Date,
		AuthorID:    e.AuthorID,
		ApartmentID: e.ApartmentID,
		Text:        e.Text,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainLogbookEntry(m)
	return nil
}

func (r *LogbookRepository) Update(ctx context.Context, e *domain.LogbookEntry) error {
	m := logbookEntryModel{
		ID:          e.ID,
		Date:        e.Date,
		AuthorID:    e.AuthorID,
		ApartmentID: e.ApartmentID,
		Text:        e.Text,
		CreatedAt:   e.CreatedAt,
	}
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainLogbookEntry(m)
	return nil
}

func (r *LogbookRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&logbookEntryModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
