package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentModeBankTransfer  = "BANK_TRANSFER"
	PaymentModeCash          = "CASH"
	PaymentModeCheque        = "CHEQUE"
	PaymentModeDigitalWallet = "DIGITAL_WALLET"
)

// Payroll adalah satu slip gaji per (employee, month, year). Unique index
// uq_payrolls_employee_period adalah satu-satunya otoritas anti duplikat.
// Financials disimpan dalam satuan terkecil (minor units) untuk hindari
// floating error.
type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payrolls_employee_period"`
	Month      int       `gorm:"type:int;not null;uniqueIndex:uq_payrolls_employee_period"`
	Year       int       `gorm:"type:int;not null;uniqueIndex:uq_payrolls_employee_period"`

	// Dihitung sekali saat generate, tidak pernah dihitung ulang
	GrossPay   int64 `gorm:"type:bigint;not null;default:0"`
	EmployeePF int64 `gorm:"type:bigint;not null;default:0"`
	EmployerPF int64 `gorm:"type:bigint;not null;default:0"`
	IncomeTax  int64 `gorm:"type:bigint;not null;default:0"`
	NetPay     int64 `gorm:"type:bigint;not null;default:0"`

	// Lifecycle: generated -> verified -> paid, flag hanya naik
	IsVerified   bool       `gorm:"not null;default:false"`
	IsPaid       bool       `gorm:"not null;default:false"`
	VerifiedBy   *uuid.UUID `gorm:"type:uuid"`
	VerifiedDate *time.Time
	PaidDate     *time.Time
	PaymentMode  *string `gorm:"type:varchar(20)"`

	ProcessedBy   uuid.UUID `gorm:"type:uuid;not null"`
	ProcessedDate time.Time `gorm:"not null"`

	PayslipURL         *string
	PayslipGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payroll) TableName() string {
	return "payrolls"
}

// PayrollDetailRow adalah hasil join untuk tampilan admin.
type PayrollDetailRow struct {
	Payroll
	EmployeeName   string
	EmployeeNumber string
	ProcessorName  string
	VerifierName   string
}

func ValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentModeBankTransfer, PaymentModeCash, PaymentModeCheque, PaymentModeDigitalWallet:
		return true
	}
	return false
}
