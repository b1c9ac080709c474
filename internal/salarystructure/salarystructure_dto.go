package salarystructure

type CreateSalaryStructureRequest struct {
	EmployeeID    string `json:"employee_id" binding:"required,uuid"`
	BasicPay      int64  `json:"basic_pay" binding:"required"`
	HRA           int64  `json:"hra"`
	Allowances    int64  `json:"allowances"`
	PFPercentBps  *int64 `json:"pf_percent_bps"`
	EffectiveFrom string `json:"effective_from" binding:"required"`
}

type SalaryStructureResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	BasicPay      int64  `json:"basic_pay"`
	HRA           int64  `json:"hra"`
	Allowances    int64  `json:"allowances"`
	PFPercentBps  *int64 `json:"pf_percent_bps,omitempty"`
	EffectiveFrom string `json:"effective_from"`
	CreatedAt     string `json:"created_at"`
}
