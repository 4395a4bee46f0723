package staff

type CreateUserRequest struct {
	EmployeeID   string  `json:"employee_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Username     string  `json:"username" binding:"required"`
	Password     string  `json:"password" binding:"required,min=8"`
	RoleIDs      []int64 `json:"role_ids" binding:"required"`
	DailyMinutes *int    `json:"daily_minutes"`
}

type UpdateUserRequest struct {
	EmployeeID   string  `json:"employee_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Username     string  `json:"username" binding:"required"`
	Password     string  `json:"password"`
	RoleIDs      []int64 `json:"role_ids" binding:"required"`
	DailyMinutes *int    `json:"daily_minutes"`
}

type RoleRequest struct {
	Key  string `json:"key" binding:"required"`
	Name string `json:"name" binding:"required"`
}
