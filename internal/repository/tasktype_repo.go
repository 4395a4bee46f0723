package repository

import (
	"context"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type TaskTypeRepository struct {
	db *gorm.DB
}

func NewTaskTypeRepository(db *gorm.DB) *TaskTypeRepository {
	return &TaskTypeRepository{db: db}
}

type taskTypeModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Code        string `gorm:"column:code;uniqueIndex"`
	Description string `gorm:"column:description"`
}

func (taskTypeModel) TableName() string { return "task_types" }

func toDomainTaskType(m taskTypeModel) *domain.TaskType {
	return &domain.TaskType{ID: m.ID, Code: m.Code, Description: m.Description}
}

func (r *TaskTypeRepository) List(ctx context.Context) ([]domain.TaskType, error) {
	var ms []taskTypeModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.TaskType, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainTaskType(m))
	}
	return out, nil
}

func (r *TaskTypeRepository) GetByID(ctx context.Context, id int64) (*domain.TaskType, error) {
	var m taskTypeModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTaskType(m), nil
}

// CountByIDs returns how many of the given ids exist; used to validate an
// assignment's completed-task list against the controlled vocabulary.
func (r *TaskTypeRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&taskTypeModel{}).Where("id IN ?", ids).Count(&cnt)
	return cnt, tx.Error
}

func (r *TaskTypeRepository) Create(ctx context.Context, t *domain.TaskType) error {
	m := taskTypeModel{Code: t.Code, Description: t.Description}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	t.ID = m.ID
	return nil
}

func (r *TaskTypeRepository) Update(ctx context.Context, t *domain.TaskType) error {
	m := taskTypeModel{ID: t.ID, Code: t.Code, Description: t.Description}
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *TaskTypeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&taskTypeModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
