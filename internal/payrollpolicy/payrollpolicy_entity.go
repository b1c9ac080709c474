package payrollpolicy

import (
	"time"

	"github.com/google/uuid"
)

// PayrollPolicy bersifat append-only: perubahan kebijakan membuat baris
// baru, payroll yang sudah terbit tetap merekam nilai lamanya sendiri.
type PayrollPolicy struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DefaultPFPercentBps int64     `gorm:"column:default_pf_percent_bps"`
	OvertimeRatePerHour int64
	EffectiveFrom       time.Time `gorm:"index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (PayrollPolicy) TableName() string {
	return "payroll_policies"
}
