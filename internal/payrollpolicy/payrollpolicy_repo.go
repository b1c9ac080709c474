package payrollpolicy

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payrollpolicy_repo.go -destination=mock/payrollpolicy_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, policy *PayrollPolicy) error
	FindAll(ctx context.Context) ([]PayrollPolicy, error)
	// Latest mengambil kebijakan dengan effective_from terbesar per asOf.
	Latest(ctx context.Context, asOf time.Time) (*PayrollPolicy, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, policy *PayrollPolicy) error {
	return r.db.WithContext(ctx).Create(policy).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PayrollPolicy, error) {
	var policies []PayrollPolicy
	err := r.db.WithContext(ctx).
		Order("effective_from DESC, created_at DESC").
		Find(&policies).Error
	return policies, err
}

func (r *repository) Latest(ctx context.Context, asOf time.Time) (*PayrollPolicy, error) {
	var policy PayrollPolicy
	err := r.db.WithContext(ctx).
		Where("effective_from <= ?", asOf).
		Order("effective_from DESC, created_at DESC").
		First(&policy).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}
