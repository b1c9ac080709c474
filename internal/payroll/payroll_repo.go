package payroll

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error)
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	FindAllDetails(ctx context.Context) ([]PayrollDetailRow, error)
	// UpdateVerify menaikkan flag verified hanya jika belum verified.
	// Mengembalikan true kalau tepat satu baris berubah.
	UpdateVerify(ctx context.Context, id string, verifiedBy string, verifiedAt time.Time) (bool, error)
	// UpdateMarkPaid menandai paid hanya jika sudah verified dan belum paid.
	UpdateMarkPaid(ctx context.Context, id string, paymentMode string, paidAt time.Time) (bool, error)
	UpdatePayslipURL(ctx context.Context, id string, url string, generatedAt time.Time) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	if r.tx != nil {
		query := `
			INSERT INTO payrolls
				(id, employee_id, month, year,
				 gross_pay, employee_pf, employer_pf, income_tax, net_pay,
				 is_verified, is_paid, processed_by, processed_date,
				 created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, false, $10, $11, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query,
			payroll.ID, payroll.EmployeeID, payroll.Month, payroll.Year,
			payroll.GrossPay, payroll.EmployeePF, payroll.EmployerPF,
			payroll.IncomeTax, payroll.NetPay,
			payroll.ProcessedBy, payroll.ProcessedDate,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(payroll).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		Where("year = ?", year).
		First(&payroll).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	if r.tx != nil {
		var count int64
		query := `SELECT COUNT(1) FROM payrolls WHERE employee_id = $1 AND month = $2 AND year = $3`
		err := r.tx.QueryRowContext(ctx, query, employeeID, month, year).Scan(&count)
		return count > 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		Where("year = ?", year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindAllDetails(ctx context.Context) ([]PayrollDetailRow, error) {
	var rows []PayrollDetailRow
	query := `
SELECT
	payrolls.*,
	employees.full_name AS employee_name,
	employees.employee_number AS employee_number,
	COALESCE(processors.name, '') AS processor_name,
	COALESCE(verifiers.name, '') AS verifier_name
FROM payrolls
JOIN employees ON employees.id = payrolls.employee_id
LEFT JOIN users AS processors ON processors.id = payrolls.processed_by
LEFT JOIN users AS verifiers ON verifiers.id = payrolls.verified_by
ORDER BY payrolls.year DESC, payrolls.month DESC, employees.full_name ASC
`
	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}

func (r *repository) UpdateVerify(ctx context.Context, id string, verifiedBy string, verifiedAt time.Time) (bool, error) {
	query := `
		UPDATE payrolls
		SET is_verified = true,
		    verified_by = $2,
		    verified_date = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND is_verified = false
	`
	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx, query, id, verifiedBy, verifiedAt)
		if err != nil {
			return false, err
		}
		affected, err := res.RowsAffected()
		return affected == 1, err
	}

	res := r.db.WithContext(ctx).Exec(query, id, verifiedBy, verifiedAt)
	return res.RowsAffected == 1, res.Error
}

func (r *repository) UpdateMarkPaid(ctx context.Context, id string, paymentMode string, paidAt time.Time) (bool, error) {
	query := `
		UPDATE payrolls
		SET is_paid = true,
		    payment_mode = $2,
		    paid_date = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND is_verified = true
		  AND is_paid = false
	`
	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx, query, id, paymentMode, paidAt)
		if err != nil {
			return false, err
		}
		affected, err := res.RowsAffected()
		return affected == 1, err
	}

	res := r.db.WithContext(ctx).Exec(query, id, paymentMode, paidAt)
	return res.RowsAffected == 1, res.Error
}

func (r *repository) UpdatePayslipURL(ctx context.Context, id string, url string, generatedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payslip_url":          url,
			"payslip_generated_at": generatedAt,
		}).Error
}
