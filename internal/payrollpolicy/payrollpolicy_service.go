package payrollpolicy

import (
	"context"
	"errors"
	"time"

	payrollpolicyerrors "go-payroll/internal/payrollpolicy/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payrollpolicy_service.go -destination=mock/payrollpolicy_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayrollPolicyRequest) (PayrollPolicyResponse, error)
	GetAll(ctx context.Context) ([]PayrollPolicyResponse, error)
	GetLatest(ctx context.Context) (PayrollPolicyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payrollpolicy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollpolicy.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePayrollPolicyRequest) (PayrollPolicyResponse, error) {
	if req.DefaultPFPercentBps < 0 || req.DefaultPFPercentBps > 10000 {
		return PayrollPolicyResponse{}, payrollpolicyerrors.ErrInvalidPFPercent
	}
	if req.OvertimeRatePerHour < 0 {
		return PayrollPolicyResponse{}, payrollpolicyerrors.ErrNegativeOvertimeRate
	}

	// EffectiveFrom ditentukan server saat pembuatan, bukan dari client
	policy := &PayrollPolicy{
		ID:                  uuid.New(),
		DefaultPFPercentBps: req.DefaultPFPercentBps,
		OvertimeRatePerHour: req.OvertimeRatePerHour,
		EffectiveFrom:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, policy); err != nil {
		s.logger.Error("create payroll policy persist failed", zap.Error(err))
		return PayrollPolicyResponse{}, err
	}

	s.logger.Info("create payroll policy success",
		zap.String("policy_id", policy.ID.String()),
		zap.Int64("default_pf_percent_bps", policy.DefaultPFPercentBps),
	)

	return mapToResponse(*policy), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollPolicyResponse, error) {
	policies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]PayrollPolicyResponse, len(policies))
	for i, p := range policies {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetLatest(ctx context.Context) (PayrollPolicyResponse, error) {
	policy, err := s.repo.Latest(ctx, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollPolicyResponse{}, payrollpolicyerrors.ErrPolicyNotFound
		}
		return PayrollPolicyResponse{}, err
	}

	return mapToResponse(*policy), nil
}

func mapToResponse(policy PayrollPolicy) PayrollPolicyResponse {
	return PayrollPolicyResponse{
		ID:                  policy.ID.String(),
		DefaultPFPercentBps: policy.DefaultPFPercentBps,
		OvertimeRatePerHour: policy.OvertimeRatePerHour,
		EffectiveFrom:       policy.EffectiveFrom.Format(time.RFC3339),
	}
}
