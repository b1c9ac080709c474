package events

import "time"

const PayrollLifecycleTopic = "hr.payroll.lifecycle.v1"

const (
	PayrollGenerated = "payroll_generated"
	PayrollVerified  = "payroll_verified"
	PayrollPaid      = "payroll_paid"
)

type PayrollLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
