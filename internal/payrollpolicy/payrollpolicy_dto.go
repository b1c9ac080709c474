package payrollpolicy

type CreatePayrollPolicyRequest struct {
	DefaultPFPercentBps int64 `json:"default_pf_percent_bps" binding:"min=0,max=10000"`
	OvertimeRatePerHour int64 `json:"overtime_rate_per_hour" binding:"min=0"`
}

type PayrollPolicyResponse struct {
	ID                  string `json:"id"`
	DefaultPFPercentBps int64  `json:"default_pf_percent_bps"`
	OvertimeRatePerHour int64  `json:"overtime_rate_per_hour"`
	EffectiveFrom       string `json:"effective_from"`
}
