package repository

import (
	"context"
	"time"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

type assignmentModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	ApartmentID  int64     `gorm:"column:apartment_id;index"`
	Date         time.Time `gorm:"column:date;index"`
	Notes        *string   `gorm:"column:notes"`
	Status       string    `gorm:"column:status"`
	Shared       bool      `gorm:"column:shared"`
	Observations *string   `gorm:"column:observations"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (assignmentModel) TableName() string { return "assignments" }

type assignmentWorkerModel struct {
	AssignmentID int64 `gorm:"column:assignment_id;primaryKey"`
	WorkerID     int64 `gorm:"column:worker_id;primaryKey"`
}

func (assignmentWorkerModel) TableName() string { return "assignment_workers" }

type assignmentTaskModel struct {
	AssignmentID int64 `gorm:"column:assignment_id;primaryKey"`
	TaskTypeID   int64 `gorm:"column:task_type_id;primaryKey"`
}

func (assignmentTaskModel) TableName() string { return "assignment_tasks" }

func toDomainAssignment(m assignmentModel, workerIDs, taskIDs []int64) *domain.Assignment {
	var notes, observations string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.Observations != nil {
		observations = *m.Observations
	}

	return &domain.Assignment{
		ID:               m.ID,
		ApartmentID:      m.ApartmentID,
		WorkerIDs:        workerIDs,
		Date:             m.Date,
		Notes:            notes,
		Status:           domain.AssignmentStatus(m.Status),
		Shared:           m.Shared,
		CompletedTaskIDs: taskIDs,
		Observations:     observations,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toAssignmentModel(a *domain.Assignment) assignmentModel {
	var notes, observations *string
	if a.Notes != "" {
		v := a.Notes
		notes = &v
	}
	if a.Observations != "" {
		v := a.Observations
		observations = &v
	}

	return assignmentModel{
		ID:           a.ID,
		ApartmentID:  a.ApartmentID,
		Date:         a.Date,
		Notes:        notes,
		Status:       string(a.Status),
		Shared:       a.Shared,
		Observations: observations,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	var m assignmentModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrate(ctx, m)
}

func (r *AssignmentRepository) List(ctx context.Context) ([]domain.Assignment, error) {
	var ms []assignmentModel
	if tx := r.db.WithContext(ctx).Order("date, id").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrateAll(ctx, ms)
}

func (r *AssignmentRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Assignment, error) {
	var ms []assignmentModel
	tx := r.db.WithContext(ctx).Where("date = ?", date).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrateAll(ctx, ms)
}

func (r *AssignmentRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Assignment, error) {
	var ms []assignmentModel
	tx := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date, id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrateAll(ctx, ms)
}

// ListByWorkerAndDate returns the worker's assignments for one day, the
// snapshot the daily progress rollup is computed from.
func (r *AssignmentRepository) ListByWorkerAndDate(ctx context.Context, workerID int64, date time.Time) ([]domain.Assignment, error) {
	var links []assignmentWorkerModel
	if tx := r.db.WithContext(ctx).Where("worker_id = ?", workerID).Find(&links); tx.Error != nil {
		return nil, tx.Error
	}
	if len(links) == 0 {
		return []domain.Assignment{}, nil
	}

	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.AssignmentID)
	}

	var ms []assignmentModel
	tx := r.db.WithContext(ctx).
		Where("id IN ? AND date = ?", ids, date).
		Order("id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrateAll(ctx, ms)
}

// ExistsForApartmentOnDate backs the one-assignment-per-apartment-per-date
// eligibility filter.
func (r *AssignmentRepository) ExistsForApartmentOnDate(ctx context.Context, apartmentID int64, date time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&assignmentModel{}).
		Where("apartment_id = ? AND date = ?", apartmentID, date).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *AssignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toAssignmentModel(a)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, workerID := range a.WorkerIDs {
			if err := tx.Create(&assignmentWorkerModel{AssignmentID: m.ID, WorkerID: workerID}).Error; err != nil {
				return err
			}
		}
		a.ID = m.ID
		a.CreatedAt = m.CreatedAt
		a.UpdatedAt = m.UpdatedAt
		return nil
	})
}

func (r *AssignmentRepository) Update(ctx context.Context, a *domain.Assignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toAssignmentModel(a)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("assignment_id = ?", a.ID).Delete(&assignmentWorkerModel{}).Error; err != nil {
			return err
		}
		for _, workerID := range a.WorkerIDs {
			if err := tx.Create(&assignmentWorkerModel{AssignmentID: a.ID, WorkerID: workerID}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("assignment_id = ?", a.ID).Delete(&assignmentTaskModel{}).Error; err != nil {
			return err
		}
		for _, taskID := range a.CompletedTaskIDs {
			if err := tx.Create(&assignmentTaskModel{AssignmentID: a.ID, TaskTypeID: taskID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", id).Delete(&assignmentWorkerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assignment_id = ?", id).Delete(&assignmentTaskModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&assignmentModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *AssignmentRepository) CountByApartment(ctx context.Context, apartmentID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&assignmentModel{}).
		Where("apartment_id = ?", apartmentID).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *AssignmentRepository) hydrate(ctx context.Context, m assignmentModel) (*domain.Assignment, error) {
	var workerLinks []assignmentWorkerModel
	if tx := r.db.WithContext(ctx).Where("assignment_id = ?", m.ID).Order("worker_id").Find(&workerLinks); tx.Error != nil {
		return nil, tx.Error
	}
	var taskLinks []assignmentTaskModel
	if tx := r.db.WithContext(ctx).Where("assignment_id = ?", m.ID).Order("task_type_id").Find(&taskLinks); tx.Error != nil {
		return nil, tx.Error
	}

	workerIDs := make([]int64, 0, len(workerLinks))
	for _, l := range workerLinks {
		workerIDs = append(workerIDs, l.WorkerID)
	}
	taskIDs := make([]int64, 0, len(taskLinks))
	for _, l := range taskLinks {
		taskIDs = append(taskIDs, l.TaskTypeID)
	}

	return toDomainAssignment(m, workerIDs, taskIDs), nil
}

func (r *AssignmentRepository) hydrateAll(ctx context.Context, ms []assignmentModel) ([]domain.Assignment, error) {
	out := make([]domain.Assignment, 0, len(ms))
	for _, m := range ms {
		a, err := r.hydrate(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}
