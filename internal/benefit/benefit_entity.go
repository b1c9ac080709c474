package benefit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Benefit bersifat bulanan: selama barisnya ada, Amount ikut
// diperhitungkan ke gross pay setiap periode payroll.
type Benefit struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;index:idx_benefits_employee"`
	BenefitType  string
	Amount       int64
	Description  string
	AssignedDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Benefit) TableName() string {
	return "benefits"
}
