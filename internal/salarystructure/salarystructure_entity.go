package salarystructure

import (
	"time"

	"github.com/google/uuid"
)

// SalaryStructure adalah assignment gaji yang append-only: revisi gaji
// membuat baris baru, baris lama dipertahankan sebagai histori.
// Financials disimpan dalam satuan terkecil (minor units).
type SalaryStructure struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;index:idx_salary_structures_employee"`
	BasicPay      int64
	HRA           int64  `gorm:"column:hra"`
	Allowances    int64
	PFPercentBps  *int64 `gorm:"column:pf_percent_bps"`
	EffectiveFrom time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	EmployeeName string `gorm:"->;-:migration"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}
