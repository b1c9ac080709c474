package payrollpolicy_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/payrollpolicy"
	payrollpolicyerrors "go-payroll/internal/payrollpolicy/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePolicyRepository struct {
	createFn  func(ctx context.Context, policy *payrollpolicy.PayrollPolicy) error
	findAllFn func(ctx context.Context) ([]payrollpolicy.PayrollPolicy, error)
	latestFn  func(ctx context.Context, asOf time.Time) (*payrollpolicy.PayrollPolicy, error)
}

func (f *fakePolicyRepository) Create(ctx context.Context, policy *payrollpolicy.PayrollPolicy) error {
	if f.createFn != nil {
		return f.createFn(ctx, policy)
	}
	return nil
}

func (f *fakePolicyRepository) FindAll(ctx context.Context) ([]payrollpolicy.PayrollPolicy, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePolicyRepository) Latest(ctx context.Context, asOf time.Time) (*payrollpolicy.PayrollPolicy, error) {
	if f.latestFn != nil {
		return f.latestFn(ctx, asOf)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestPayrollPolicyService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &fakePolicyRepository{}
	svc := payrollpolicy.NewService(repo)

	var created *payrollpolicy.PayrollPolicy
	repo.createFn = func(ctx context.Context, policy *payrollpolicy.PayrollPolicy) error {
		created = policy
		return nil
	}

	resp, err := svc.Create(ctx, payrollpolicy.CreatePayrollPolicyRequest{
		DefaultPFPercentBps: 1000,
		OvertimeRatePerHour: 25_000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), resp.DefaultPFPercentBps)
	if assert.NotNil(t, created) {
		// EffectiveFrom milik server, client tidak bisa backdate kebijakan
		assert.False(t, created.EffectiveFrom.IsZero())
	}
}

func TestPayrollPolicyService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc := payrollpolicy.NewService(&fakePolicyRepository{})

	t.Run("pf percent out of range", func(t *testing.T) {
		_, err := svc.Create(ctx, payrollpolicy.CreatePayrollPolicyRequest{
			DefaultPFPercentBps: 10_001,
		})
		assert.ErrorIs(t, err, payrollpolicyerrors.ErrInvalidPFPercent)
	})

	t.Run("negative overtime rate", func(t *testing.T) {
		_, err := svc.Create(ctx, payrollpolicy.CreatePayrollPolicyRequest{
			DefaultPFPercentBps: 1200,
			OvertimeRatePerHour: -1,
		})
		assert.ErrorIs(t, err, payrollpolicyerrors.ErrNegativeOvertimeRate)
	})
}

func TestPayrollPolicyService_GetLatest(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakePolicyRepository{
			latestFn: func(ctx context.Context, asOf time.Time) (*payrollpolicy.PayrollPolicy, error) {
				return &payrollpolicy.PayrollPolicy{
					ID:                  uuid.New(),
					DefaultPFPercentBps: 1200,
					OvertimeRatePerHour: 25_000,
					EffectiveFrom:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				}, nil
			},
		}
		svc := payrollpolicy.NewService(repo)

		resp, err := svc.GetLatest(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(1200), resp.DefaultPFPercentBps)
		assert.Equal(t, int64(25_000), resp.OvertimeRatePerHour)
	})

	t.Run("no policy yet", func(t *testing.T) {
		svc := payrollpolicy.NewService(&fakePolicyRepository{})

		_, err := svc.GetLatest(ctx)

		assert.ErrorIs(t, err, payrollpolicyerrors.ErrPolicyNotFound)
	})
}
