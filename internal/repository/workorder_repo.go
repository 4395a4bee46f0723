package repository

import (
	"context"
	"time"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

type workOrderModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	ApartmentID    int64      `gorm:"column:apartment_id;index"`
	RequestDate    time.Time  `gorm:"column:request_date"`
	RequesterName  string     `gorm:"column:requester_name"`
	RequestDetails *string    `gorm:"column:request_details"`
	RequestMedium  string     `gorm:"column:request_medium"`
	Status         string     `gorm:"column:status"`
	CompletionDate *time.Time `gorm:"column:completion_date"`
	MaterialsUsed  *string    `gorm:"column:materials_used"`
	ApprovalName   *string    `gorm:"column:approval_name"`
	ApprovalDate   *time.Time `gorm:"column:approval_date"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (workOrderModel) TableName() string { return "work_orders" }

func toDomainWorkOrder(m workOrderModel) *domain.WorkOrder {
	var details, materials, approvalName string
	if m.RequestDetails != nil {
		details = *m.RequestDetails
	}
	if m.MaterialsUsed != nil {
		materials = *m.MaterialsUsed
	}
	if m.ApprovalName != nil {
		approvalName = *m.ApprovalName
	}

	return &domain.WorkOrder{
		ID:             m.ID,
		ApartmentID:    m.ApartmentID,
		RequestDate:    m.RequestDate,
		RequesterName:  m.RequesterName,
		RequestDetails: details,
		RequestMedium:  domain.RequestMedium(m.RequestMedium),
		Status:         domain.WorkOrderStatus(m.Status),
		CompletionDate: m.CompletionDate,
		MaterialsUsed:  materials,
		ApprovalName:   approvalName,
		ApprovalDate:   m.ApprovalDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toWorkOrderModel(w *domain.WorkOrder) workOrderModel {
	var details, materials, approvalName *string
	if w.RequestDetails != "" {
		v := w.RequestDetails
		details = &v
	}
	if w.MaterialsUsed != "" {
		v := w.MaterialsUsed
		materials = &v
	}
	if w.ApprovalName != "" {
		v := w.ApprovalName
		approvalName = &v
	}

	return workOrderModel{
		ID:             w.ID,
		ApartmentID:    w.ApartmentID,
		RequestDate:    w.RequestDate,
		RequesterName:  w.RequesterName,
		RequestDetails: details,
		RequestMedium:  string(w.RequestMedium),
		Status:         string(w.Status),
		CompletionDate: w.CompletionDate,
		MaterialsUsed:  materials,
		ApprovalName:   approvalName,
		ApprovalDate:   w.ApprovalDate,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func (r *WorkOrderRepository) List(ctx context.Context) ([]domain.WorkOrder, error) {
	var ms []workOrderModel
	if tx := r.db.WithContext(ctx).Order("request_date, id").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.WorkOrder, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainWorkOrder(m))
	}
	return out, nil
}

func (r *WorkOrderRepository) ListByApartment(ctx context.Context, apartmentID int64) ([]domain.WorkOrder, error) {
	var ms []workOrderModel
	tx := r.db.WithContext(ctx).
		Where("apartment_id = ?", apartmentID).
		Order("request_date, id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.WorkOrder, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainWorkOrder(m))
	}
	return out, nil
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	var m workOrderModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainWorkOrder(m), nil
}

func (r *WorkOrderRepository) Create(ctx context.Context, w *domain.WorkOrder) error {
	m := toWorkOrderModel(w)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*w = *toDomainWorkOrder(m)
	return nil
}

func (r *WorkOrderRepository) Update(ctx context.Context, w *domain.WorkOrder) error {
	m := toWorkOrderModel(w)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	*w = *toDomainWorkOrder(m)
	return nil
}

func (r *WorkOrderRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&workOrderModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkOrderRepository) CountByApartment(ctx context.Context, apartmentID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&workOrderModel{}).
		Where("apartment_id = ?", apartmentID).
		Count(&cnt)
	return cnt, tx.Error
}
