package benefit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=benefit_repo.go -destination=mock/benefit_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, benefit *Benefit) error
	FindByID(ctx context.Context, id string) (*Benefit, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Benefit, error)
	// TotalFor menjumlahkan semua benefit aktif milik satu karyawan.
	TotalFor(ctx context.Context, employeeID string) (int64, error)
	Update(ctx context.Context, benefit *Benefit) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, benefit *Benefit) error {
	return r.db.WithContext(ctx).Create(benefit).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Benefit, error) {
	var benefit Benefit
	err := r.db.WithContext(ctx).First(&benefit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &benefit, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Benefit, error) {
	var benefits []Benefit
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("assigned_date DESC, created_at DESC").
		Find(&benefits).Error
	return benefits, err
}

func (r *repository) TotalFor(ctx context.Context, employeeID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("benefits").
		Select("COALESCE(SUM(amount), 0)").
		Where("employee_id = ?", employeeID).
		Where("deleted_at IS NULL").
		Scan(&total).Error
	return total, err
}

func (r *repository) Update(ctx context.Context, benefit *Benefit) error {
	return r.db.WithContext(ctx).Save(benefit).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Benefit{}, "id = ?", id).Error
}
