package benefit

import (
	"context"
	"errors"
	"time"

	benefiterrors "go-payroll/internal/benefit/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=benefit_service.go -destination=mock/benefit_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]BenefitResponse, error)
	Update(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("benefit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benefit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error) {
	if req.Amount < 0 {
		return BenefitResponse{}, benefiterrors.ErrNegativeAmount
	}

	assignedDate := time.Now().UTC()
	if req.AssignedDate != "" {
		parsed, err := time.Parse("2006-01-02", req.AssignedDate)
		if err != nil {
			return BenefitResponse{}, benefiterrors.ErrInvalidAssignedDate
		}
		assignedDate = parsed
	}

	benefit := &Benefit{
		ID:           uuid.New(),
		EmployeeID:   uuid.MustParse(req.EmployeeID),
		BenefitType:  req.BenefitType,
		Amount:       req.Amount,
		Description:  req.Description,
		AssignedDate: assignedDate,
	}

	if err := s.repo.Create(ctx, benefit); err != nil {
		s.logger.Error("create benefit persist failed", zap.Error(err))
		return BenefitResponse{}, err
	}

	s.logger.Info("create benefit success",
		zap.String("benefit_id", benefit.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("benefit_type", req.BenefitType),
	)

	return mapToResponse(*benefit), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]BenefitResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, benefiterrors.ErrBenefitNotFound
	}

	benefits, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]BenefitResponse, len(benefits))
	for i, b := range benefits {
		res[i] = mapToResponse(b)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error) {
	if req.Amount < 0 {
		return BenefitResponse{}, benefiterrors.ErrNegativeAmount
	}

	benefit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BenefitResponse{}, benefiterrors.ErrBenefitNotFound
		}
		return BenefitResponse{}, err
	}

	benefit.BenefitType = req.BenefitType
	benefit.Amount = req.Amount
	benefit.Description = req.Description

	if err := s.repo.Update(ctx, benefit); err != nil {
		s.logger.Error("update benefit persist failed", zap.Error(err))
		return BenefitResponse{}, err
	}

	return mapToResponse(*benefit), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return benefiterrors.ErrBenefitNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete benefit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete benefit success", zap.String("benefit_id", id))
	return nil
}

func mapToResponse(benefit Benefit) BenefitResponse {
	return BenefitResponse{
		ID:           benefit.ID.String(),
		EmployeeID:   benefit.EmployeeID.String(),
		BenefitType:  benefit.BenefitType,
		Amount:       benefit.Amount,
		Description:  benefit.Description,
		AssignedDate: benefit.AssignedDate.Format("2006-01-02"),
	}
}
