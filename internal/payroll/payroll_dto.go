package payroll

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
}

type MarkPaidRequest struct {
	PaymentMode string `json:"payment_mode" binding:"required"`
}

type PayrollResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	GrossPay   int64 `json:"gross_pay"`
	EmployeePF int64 `json:"employee_pf"`
	EmployerPF int64 `json:"employer_pf"`
	IncomeTax  int64 `json:"income_tax"`
	NetPay     int64 `json:"net_pay"`

	IsVerified   bool   `json:"is_verified"`
	IsPaid       bool   `json:"is_paid"`
	VerifiedBy   string `json:"verified_by,omitempty"`
	VerifiedDate string `json:"verified_date,omitempty"`
	PaidDate     string `json:"paid_date,omitempty"`
	PaymentMode  string `json:"payment_mode,omitempty"`

	ProcessedBy   string `json:"processed_by"`
	ProcessedDate string `json:"processed_date"`

	PayslipURL string `json:"payslip_url,omitempty"`
}

type PayrollDetailResponse struct {
	PayrollResponse
	EmployeeName   string `json:"employee_name"`
	EmployeeNumber string `json:"employee_number"`
	ProcessorName  string `json:"processor_name,omitempty"`
	VerifierName   string `json:"verifier_name,omitempty"`
}
