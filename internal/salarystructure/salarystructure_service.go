package salarystructure

import (
	"context"
	"errors"
	"time"

	"go-payroll/internal/shared/contextutil"

	salarystructureerrors "go-payroll/internal/salarystructure/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salarystructure_service.go -destination=mock/salarystructure_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryStructureRequest) (SalaryStructureResponse, error)
	GetAll(ctx context.Context) ([]SalaryStructureResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]SalaryStructureResponse, error)
	GetCurrent(ctx context.Context, employeeID string) (SalaryStructureResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarystructure.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarystructure.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSalaryStructureRequest) (SalaryStructureResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary structure requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	if req.BasicPay < 0 || req.HRA < 0 || req.Allowances < 0 {
		return SalaryStructureResponse{}, salarystructureerrors.ErrNegativeAmount
	}
	if req.PFPercentBps != nil && (*req.PFPercentBps < 0 || *req.PFPercentBps > 10000) {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidPFPercent
	}

	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidEffectiveFrom
	}

	// Revisi gaji selalu insert baris baru, histori tidak pernah ditimpa
	structure := &SalaryStructure{
		ID:            uuid.New(),
		EmployeeID:    uuid.MustParse(req.EmployeeID),
		BasicPay:      req.BasicPay,
		HRA:           req.HRA,
		Allowances:    req.Allowances,
		PFPercentBps:  req.PFPercentBps,
		EffectiveFrom: effectiveFrom,
	}

	if err := s.repo.Create(ctx, structure); err != nil {
		s.logger.Error("create salary structure persist failed", zap.Error(err))
		return SalaryStructureResponse{}, err
	}

	s.logger.Info("create salary structure success",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("structure_id", structure.ID.String()),
	)

	return mapToResponse(*structure), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryStructureResponse, error) {
	structures, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all salary structures failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(structures), nil
}

func (s *service) GetHistory(ctx context.Context, employeeID string) ([]SalaryStructureResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, salarystructureerrors.ErrSalaryStructureNotFound
	}

	structures, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(structures), nil
}

func (s *service) GetCurrent(ctx context.Context, employeeID string) (SalaryStructureResponse, error) {
	structure, err := s.repo.LatestFor(ctx, employeeID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryStructureResponse{}, salarystructureerrors.ErrNoActiveSalaryStructure
		}
		return SalaryStructureResponse{}, err
	}

	return mapToResponse(*structure), nil
}

func mapToResponse(structure SalaryStructure) SalaryStructureResponse {
	return SalaryStructureResponse{
		ID:            structure.ID.String(),
		EmployeeID:    structure.EmployeeID.String(),
		EmployeeName:  structure.EmployeeName,
		BasicPay:      structure.BasicPay,
		HRA:           structure.HRA,
		Allowances:    structure.Allowances,
		PFPercentBps:  structure.PFPercentBps,
		EffectiveFrom: structure.EffectiveFrom.Format("2006-01-02"),
		CreatedAt:     structure.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapToListResponse(structures []SalaryStructure) []SalaryStructureResponse {
	res := make([]SalaryStructureResponse, len(structures))
	for i, st := range structures {
		res[i] = mapToResponse(st)
	}
	return res
}
