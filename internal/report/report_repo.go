package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type PayrollRegisterRow struct {
	EmployeeNumber string
	EmployeeName   string
	Month          int
	Year           int
	GrossPay       int64
	EmployeePF     int64
	EmployerPF     int64
	IncomeTax      int64
	NetPay         int64
	IsVerified     bool
	IsPaid         bool
	PaymentMode    *string
	ProcessedDate  time.Time
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	PayrollRegister(ctx context.Context, month, year int) ([]PayrollRegisterRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) PayrollRegister(ctx context.Context, month, year int) ([]PayrollRegisterRow, error) {
	var rows []PayrollRegisterRow
	query := `
SELECT
	employees.employee_number,
	employees.full_name AS employee_name,
	payrolls.month,
	payrolls.year,
	payrolls.gross_pay,
	payrolls.employee_pf,
	payrolls.employer_pf,
	payrolls.income_tax,
	payrolls.net_pay,
	payrolls.is_verified,
	payrolls.is_paid,
	payrolls.payment_mode,
	payrolls.processed_date
FROM payrolls
JOIN employees ON employees.id = payrolls.employee_id
WHERE payrolls.month = ? AND payrolls.year = ?
ORDER BY employees.full_name ASC
`
	err := r.db.WithContext(ctx).Raw(query, month, year).Scan(&rows).Error
	return rows, err
}
