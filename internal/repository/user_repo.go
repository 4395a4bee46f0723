package repository

import (
	"context"
	"time"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	EmployeeID   string    `gorm:"column:employee_id;uniqueIndex"`
	Name         string    `gorm:"column:name"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	DailyMinutes *int      `gorm:"column:daily_minutes"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type userRoleModel struct {
	UserID int64 `gorm:"column:user_id;primaryKey"`
	RoleID int64 `gorm:"column:role_id;primaryKey"`
}

func (userRoleModel) TableName() string { return "user_roles" }

func toDomainUser(m userModel, roles []domain.Role) *domain.User {
	return &domain.User{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Roles:        roles,
		DailyMinutes: m.DailyMinutes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		EmployeeID:   u.EmployeeID,
		Name:         u.Name,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		DailyMinutes: u.DailyMinutes,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var ms []userModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		roles, err := r.rolesForUser(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDomainUser(m, roles))
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	roles, err := r.rolesForUser(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainUser(m, roles), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	if tx := r.db.WithContext(ctx).Where("username = ?", username).First(&m); tx.Error != nil {
		return nil, tx.Error
	}
	roles, err := r.rolesForUser(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainUser(m, roles), nil
}

func (r *UserRepository) ExistsByEmployeeID(ctx context.Context, employeeID string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("employee_id = ? AND id <> ?", employeeID, excludeID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toUserModel(u)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, role := range u.Roles {
			if err := tx.Create(&userRoleModel{UserID: m.ID, RoleID: role.ID}).Error; err != nil {
				return err
			}
		}
		u.ID = m.ID
		u.CreatedAt = m.CreatedAt
		u.UpdatedAt = m.UpdatedAt
		return nil
	})
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toUserModel(u)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&userRoleModel{}).Error; err != nil {
			return err
		}
		for _, role := range u.Roles {
			if err := tx.Create(&userRoleModel{UserID: u.ID, RoleID: role.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&userRoleModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&userModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *UserRepository) rolesForUser(ctx context.Context, userID int64) ([]domain.Role, error) {
	var links []userRoleModel
	if tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&links); tx.Error != nil {
		return nil, tx.Error
	}
	if len(links) == 0 {
		return []domain.Role{}, nil
	}

	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.RoleID)
	}

	var rms []roleModel
	if tx := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&rms); tx.Error != nil {
		return nil, tx.Error
	}

	roles := make([]domain.Role, 0, len(rms))
	for _, rm := range rms {
		roles = append(roles, *toDomainRole(rm))
	}
	return roles, nil
}
