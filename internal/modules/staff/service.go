package staff

import (
	"context"
	"errors"

	"aparthotel/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users UserRepository
	roles RoleRepository
}

func NewService(users UserRepository, roles RoleRepository) *Service {
	return &Service{users: users, roles: roles}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	if len(req.RoleIDs) == 0 {
		return nil, ErrValidation
	}
	if err := s.checkUnique(ctx, req.EmployeeID, req.Username, 0); err != nil {
		return nil, err
	}

	roles, err := s.resolveRoles(ctx, req.RoleIDs)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hash),
		Roles:        roles,
		DailyMinutes: req.DailyMinutes,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	if len(req.RoleIDs) == 0 {
		return nil, ErrValidation
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.checkUnique(ctx, req.EmployeeID, req.Username, id); err != nil {
		return nil, err
	}

	roles, err := s.resolveRoles(ctx, req.RoleIDs)
	if err != nil {
		return nil, err
	}

	u.EmployeeID = req.EmployeeID
	u.Name = req.Name
	u.Username = req.Username
	u.Roles = roles
	u.DailyMinutes = req.DailyMinutes

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *Service) CreateRole(ctx context.Context, req RoleRequest) (*domain.Role, error) {
	role := &domain.Role{Key: domain.RoleKey(req.Key), Name: req.Name}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *Service) UpdateRole(ctx context.Context, id int64, req RoleRequest) (*domain.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	role.Key = domain.RoleKey(req.Key)
	role.Name = req.Name
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// DeleteRole refuses to remove a role any user still holds.
func (s *Service) DeleteRole(ctx context.Context, id int64) error {
	cnt, err := s.roles.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrReferenced
	}

	if err := s.roles.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) checkUnique(ctx context.Context, employeeID, username string, excludeID int64) error {
	exists, err := s.users.ExistsByEmployeeID(ctx, employeeID, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}

	exists, err = s.users.ExistsByUsername(ctx, username, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return nil
}

func (s *Service) resolveRoles(ctx context.Context, ids []int64) ([]domain.Role, error) {
	roles, err := s.roles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(ids) {
		return nil, ErrValidation
	}
	return roles, nil
}
