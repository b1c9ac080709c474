package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive     = "ACTIVE"
	StatusOnLeave    = "ON_LEAVE"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber   string    `gorm:"uniqueIndex:uq_employee_number"`
	FullName         string
	Email            string `gorm:"uniqueIndex:uq_employee_email"`
	Phone            string
	Designation      string
	Department       string
	HireDate         time.Time
	EmploymentStatus string `gorm:"default:ACTIVE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
