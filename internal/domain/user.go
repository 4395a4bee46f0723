package domain

import "time"

// RoleKey is the stable identifier a role is matched by. Role names are
// display-only and can be renamed without breaking permission checks.
type RoleKey string

const (
	RoleSupervisor  RoleKey = "supervisor"
	RoleManager     RoleKey = "manager"
	RoleCleaner     RoleKey = "cleaner"
	RoleReception   RoleKey = "reception"
	RoleMaintenance RoleKey = "maintenance"
)

type Role struct {
	ID   int64   `json:"id"`
	Key  RoleKey `json:"key"`
	Name string  `json:"name" validate:"required"`
}

type User struct {
	ID           int64     `json:"id"`
	EmployeeID   string    `json:"employee_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Username     string    `json:"username" validate:"required"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	DailyMinutes *int      `json:"daily_minutes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user carries the given role key.
func (u *User) HasRole(key RoleKey) bool {
	for _, r := range u.Roles {
		if r.Key == key {
			return true
		}
	}
	return false
}

// RoleKeys returns the stable keys of all roles assigned to the user.
func (u *User) RoleKeys() []string {
	keys := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		keys = append(keys, string(r.Key))
	}
	return keys
}
