package timesheet

type SubmitTimesheetRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required,uuid"`
	WorkDate        string `json:"work_date" binding:"required"`
	MinutesWorked   int64  `json:"minutes_worked" binding:"required"`
	OvertimeMinutes int64  `json:"overtime_minutes"`
	Description     string `json:"description"`
}

type UpdateTimesheetRequest struct {
	MinutesWorked   int64  `json:"minutes_worked" binding:"required"`
	OvertimeMinutes int64  `json:"overtime_minutes"`
	Description     string `json:"description"`
}

type TimesheetResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	WorkDate        string `json:"work_date"`
	MinutesWorked   int64  `json:"minutes_worked"`
	OvertimeMinutes int64  `json:"overtime_minutes"`
	Description     string `json:"description,omitempty"`
	Status          string `json:"status"`
	ApprovedBy      string `json:"approved_by,omitempty"`
	ApprovedAt      string `json:"approved_at,omitempty"`
}

type OvertimePreviewResponse struct {
	EmployeeID          string `json:"employee_id"`
	Month               int    `json:"month"`
	Year                int    `json:"year"`
	OvertimeMinutes     int64  `json:"overtime_minutes"`
	OvertimeRatePerHour int64  `json:"overtime_rate_per_hour"`
	EstimatedPay        int64  `json:"estimated_pay"`
}
