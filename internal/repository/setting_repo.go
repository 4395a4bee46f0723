package repository

import (
	"context"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

type settingModel struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value"`
}

func (settingModel) TableName() string { return "settings" }

func (r *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var m settingModel
	if tx := r.db.WithContext(ctx).Where("key = ?", key).First(&m); tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Setting{Key: m.Key, Value: m.Value}, nil
}

func (r *SettingRepository) Set(ctx context.Context, s *domain.Setting) error {
	m := settingModel{Key: s.Key, Value: s.Value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&m).Error
}
