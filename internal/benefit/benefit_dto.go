package benefit

type CreateBenefitRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required,uuid"`
	BenefitType  string `json:"benefit_type" binding:"required"`
	Amount       int64  `json:"amount" binding:"required"`
	Description  string `json:"description"`
	AssignedDate string `json:"assigned_date"`
}

type UpdateBenefitRequest struct {
	BenefitType string `json:"benefit_type" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description"`
}

type BenefitResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	BenefitType  string `json:"benefit_type"`
	Amount       int64  `json:"amount"`
	Description  string `json:"description,omitempty"`
	AssignedDate string `json:"assigned_date"`
}
