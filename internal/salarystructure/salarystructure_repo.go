package salarystructure

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salarystructure_repo.go -destination=mock/salarystructure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, structure *SalaryStructure) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error)
	FindAll(ctx context.Context) ([]SalaryStructure, error)
	// LatestFor mengambil struktur gaji yang berlaku per asOf:
	// effective_from terbesar yang <= asOf, created_at sebagai tiebreak.
	LatestFor(ctx context.Context, employeeID string, asOf time.Time) (*SalaryStructure, error)
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

func (r *repository) Create(ctx context.Context, structure *SalaryStructure) error {
	if r.tx != nil {
		query := `
			INSERT INTO salary_structures
				(id, employee_id, basic_pay, hra, allowances, pf_percent_bps,
				 effective_from, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query,
			structure.ID, structure.EmployeeID, structure.BasicPay, structure.HRA,
			structure.Allowances, structure.PFPercentBps, structure.EffectiveFrom,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(structure).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_from DESC, created_at DESC").
		Find(&structures).Error
	return structures, err
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	query := `
SELECT
	salary_structures.*,
	employees.full_name AS employee_name
FROM salary_structures
JOIN employees ON employees.id = salary_structures.employee_id
ORDER BY
	employees.full_name ASC,
	salary_structures.effective_from DESC,
	salary_structures.created_at DESC
`
	err := r.db.WithContext(ctx).Raw(query).Scan(&structures).Error
	return structures, err
}

func (r *repository) LatestFor(ctx context.Context, employeeID string, asOf time.Time) (*SalaryStructure, error) {
	var structure SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("effective_from <= ?", asOf).
		Order("effective_from DESC, created_at DESC").
		First(&structure).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}
