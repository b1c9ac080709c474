package user

type CreateUserRequest struct {
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"omitempty,oneof=ADMIN HR_MANAGER SUPERVISOR EMPLOYEE"`
}

type UpdateUserStatusRequest struct {
	IsActive bool `json:"is_active"`
}

type UserResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

type UserWithRolesResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id,omitempty"`
	EmployeeNumber string   `json:"employee_number,omitempty"`
	Email          string   `json:"email"`
	FullName       string   `json:"full_name,omitempty"`
	IsActive       bool     `json:"is_active"`
	Roles          []string `json:"roles"`
	CreatedAt      string   `json:"created_at"`
}

type AssignRoleRequest struct {
	RoleName string `json:"role_name" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type ForceResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
