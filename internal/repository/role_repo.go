package repository

import (
	"context"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

type roleModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Key  string `gorm:"column:key;uniqueIndex"`
	Name string `gorm:"column:name"`
}

func (roleModel) TableName() string { return "roles" }

func toDomainRole(m roleModel) *domain.Role {
	return &domain.Role{
		ID:   m.ID,
		Key:  domain.RoleKey(m.Key),
		Name: m.Name,
	}
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	var ms []roleModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Role, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRole(m))
	}
	return out, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	var m roleModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRole(m), nil
}

func (r *RoleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Role, error) {
	var ms []roleModel
	if tx := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Role, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRole(m))
	}
	return out, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	m := roleModel{Key: string(role.Key), Name: role.Name}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	role.ID = m.ID
	return nil
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) error {
	m := roleModel{ID: role.ID, Key: string(role.Key), Name: role.Name}
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&roleModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountUsers returns how many users still reference the role. Role deletion
// is blocked while this is non-zero.
func (r *RoleRepository) CountUsers(ctx context.Context, roleID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userRoleModel{}).Where("role_id = ?", roleID).Count(&cnt)
	return cnt, tx.Error
}
