package employee

type CreateEmployeeRequest struct {
	EmployeeNumber   string `json:"employee_number"`
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Designation      string `json:"designation" binding:"required"`
	Department       string `json:"department" binding:"required"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=ACTIVE ON_LEAVE TERMINATED"`
}

type UpdateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Designation      string `json:"designation" binding:"required"`
	Department       string `json:"department" binding:"required"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=ACTIVE ON_LEAVE TERMINATED"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	EmployeeNumber   string `json:"employee_number"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Designation      string `json:"designation"`
	Department       string `json:"department"`
	HireDate         string `json:"hire_date"`
	EmploymentStatus string `json:"employment_status"`
}
