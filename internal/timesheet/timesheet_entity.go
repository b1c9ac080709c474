package timesheet

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSubmitted = "SUBMITTED"
	StatusApproved  = "APPROVED"
)

// Durasi disimpan dalam menit supaya tidak ada pecahan jam.
type TimesheetEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;index:idx_timesheets_employee"`
	WorkDate        time.Time `gorm:"index"`
	MinutesWorked   int64
	OvertimeMinutes int64
	Description     string
	Status          string     `gorm:"default:SUBMITTED"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (TimesheetEntry) TableName() string {
	return "timesheet_entries"
}
