package timesheet

import (
	"context"
	"errors"
	"time"

	"go-payroll/internal/payrollpolicy"

	timesheeterrors "go-payroll/internal/timesheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitTimesheetRequest) (TimesheetResponse, error)
	Update(ctx context.Context, id, requesterEmployeeID string, req UpdateTimesheetRequest) (TimesheetResponse, error)
	Approve(ctx context.Context, id, approverUserID string) (TimesheetResponse, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) ([]TimesheetResponse, error)
	// OvertimePreview menghitung estimasi upah lembur satu periode.
	// Ini hanya tampilan; gross payroll tidak memakai angka ini.
	OvertimePreview(ctx context.Context, employeeID string, month, year int) (OvertimePreviewResponse, error)
}

type service struct {
	repo       Repository
	policyRepo payrollpolicy.Repository
	logger     *zap.Logger
}

func NewService(repo Repository, policyRepo payrollpolicy.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{repo: repo, policyRepo: policyRepo, logger: l}
}

func (s *service) Submit(ctx context.Context, req SubmitTimesheetRequest) (TimesheetResponse, error) {
	if req.MinutesWorked < 0 || req.OvertimeMinutes < 0 {
		return TimesheetResponse{}, timesheeterrors.ErrNegativeMinutes
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidWorkDate
	}

	entry := &TimesheetEntry{
		ID:              uuid.New(),
		EmployeeID:      uuid.MustParse(req.EmployeeID),
		WorkDate:        workDate,
		MinutesWorked:   req.MinutesWorked,
		OvertimeMinutes: req.OvertimeMinutes,
		Description:     req.Description,
		Status:          StatusSubmitted,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("submit timesheet persist failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	s.logger.Info("submit timesheet success",
		zap.String("entry_id", entry.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("work_date", req.WorkDate),
	)

	return mapToResponse(*entry), nil
}

func (s *service) Update(ctx context.Context, id, requesterEmployeeID string, req UpdateTimesheetRequest) (TimesheetResponse, error) {
	if req.MinutesWorked < 0 || req.OvertimeMinutes < 0 {
		return TimesheetResponse{}, timesheeterrors.ErrNegativeMinutes
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimesheetResponse{}, timesheeterrors.ErrTimesheetNotFound
		}
		return TimesheetResponse{}, err
	}

	if requesterEmployeeID != "" && entry.EmployeeID.String() != requesterEmployeeID {
		return TimesheetResponse{}, timesheeterrors.ErrNotOwner
	}
	if entry.Status == StatusApproved {
		return TimesheetResponse{}, timesheeterrors.ErrAlreadyApproved
	}

	entry.MinutesWorked = req.MinutesWorked
	entry.OvertimeMinutes = req.OvertimeMinutes
	entry.Description = req.Description

	if err := s.repo.Update(ctx, entry); err != nil {
		s.logger.Error("update timesheet persist failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	return mapToResponse(*entry), nil
}

func (s *service) Approve(ctx context.Context, id, approverUserID string) (TimesheetResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimesheetResponse{}, timesheeterrors.ErrTimesheetNotFound
		}
		return TimesheetResponse{}, err
	}

	if entry.Status == StatusApproved {
		return TimesheetResponse{}, timesheeterrors.ErrAlreadyApproved
	}

	now := time.Now().UTC()
	approver := uuid.MustParse(approverUserID)
	entry.Status = StatusApproved
	entry.ApprovedBy = &approver
	entry.ApprovedAt = &now

	if err := s.repo.Update(ctx, entry); err != nil {
		s.logger.Error("approve timesheet persist failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	s.logger.Info("approve timesheet success",
		zap.String("entry_id", id),
		zap.String("approved_by", approverUserID),
	)

	return mapToResponse(*entry), nil
}

func (s *service) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) ([]TimesheetResponse, error) {
	from, to := periodBounds(month, year)

	entries, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	res := make([]TimesheetResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) OvertimePreview(ctx context.Context, employeeID string, month, year int) (OvertimePreviewResponse, error) {
	from, to := periodBounds(month, year)

	overtimeMinutes, err := s.repo.SumOvertimeMinutes(ctx, employeeID, from, to)
	if err != nil {
		return OvertimePreviewResponse{}, err
	}

	var ratePerHour int64
	policy, err := s.policyRepo.Latest(ctx, time.Now())
	if err == nil {
		ratePerHour = policy.OvertimeRatePerHour
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return OvertimePreviewResponse{}, err
	}

	return OvertimePreviewResponse{
		EmployeeID:          employeeID,
		Month:               month,
		Year:                year,
		OvertimeMinutes:     overtimeMinutes,
		OvertimeRatePerHour: ratePerHour,
		EstimatedPay:        overtimeMinutes * ratePerHour / 60,
	}, nil
}

func periodBounds(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func mapToResponse(entry TimesheetEntry) TimesheetResponse {
	resp := TimesheetResponse{
		ID:              entry.ID.String(),
		EmployeeID:      entry.EmployeeID.String(),
		WorkDate:        entry.WorkDate.Format("2006-01-02"),
		MinutesWorked:   entry.MinutesWorked,
		OvertimeMinutes: entry.OvertimeMinutes,
		Description:     entry.Description,
		Status:          entry.Status,
	}
	if entry.ApprovedBy != nil {
		resp.ApprovedBy = entry.ApprovedBy.String()
	}
	if entry.ApprovedAt != nil {
		resp.ApprovedAt = entry.ApprovedAt.Format(time.RFC3339)
	}
	return resp
}
