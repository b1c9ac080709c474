package leave

import (
	"context"
	"errors"
	"time"

	leaveerrors "go-payroll/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id, rejectionReason string) (LeaveResponse, error)
	Cancel(ctx context.Context, requesterEmployeeID, id string) (LeaveResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	overlap, err := s.repo.HasOverlappingPeriod(ctx, req.EmployeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	leaveType := req.LeaveType
	if leaveType == "" {
		leaveType = "ANNUAL"
	}

	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		LeaveType:  leaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     StatusPending,
		CreatedBy:  uuid.MustParse(actorID),
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	leaves, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	l, err := s.findPending(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	now := time.Now().UTC()
	approver := uuid.MustParse(actorID)
	l.Status = StatusApproved
	l.ApprovedBy = &approver
	l.ApprovedAt = &now

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("approve leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("approve leave success",
		zap.String("leave_id", id),
		zap.String("approved_by", actorID),
	)

	return mapToResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, actorID, id, rejectionReason string) (LeaveResponse, error) {
	if rejectionReason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}

	l, err := s.findPending(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	now := time.Now().UTC()
	approver := uuid.MustParse(actorID)
	l.Status = StatusRejected
	l.ApprovedBy = &approver
	l.ApprovedAt = &now
	l.RejectionReason = &rejectionReason

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("reject leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, requesterEmployeeID, id string) (LeaveResponse, error) {
	l, err := s.findPending(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if requesterEmployeeID != "" && l.EmployeeID.String() != requesterEmployeeID {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}

	l.Status = StatusCancelled

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("cancel leave success", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

// findPending mengambil leave dan memastikan masih PENDING.
func (s *service) findPending(ctx context.Context, id string) (*Leave, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}

	if l.Status != StatusPending {
		return nil, leaveerrors.ErrInvalidStatusTransition
	}

	return l, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		TotalDays:  l.TotalDays,
		Reason:     l.Reason,
		Status:     l.Status,
	}
	if l.ApprovedBy != nil {
		resp.ApprovedBy = l.ApprovedBy.String()
	}
	if l.ApprovedAt != nil {
		resp.ApprovedAt = l.ApprovedAt.Format(time.RFC3339)
	}
	if l.RejectionReason != nil {
		resp.RejectionReason = *l.RejectionReason
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res
}
