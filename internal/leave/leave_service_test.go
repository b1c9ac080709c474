package leave_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/leave"
	leaveerrors "go-payroll/internal/leave/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn               func(ctx context.Context, l *leave.Leave) error
	findAllFn              func(ctx context.Context) ([]leave.Leave, error)
	findAllByEmployeeFn    func(ctx context.Context, employeeID string) ([]leave.Leave, error)
	findByIDFn             func(ctx context.Context, id string) (*leave.Leave, error)
	updateFn               func(ctx context.Context, l *leave.Leave) error
	hasOverlappingPeriodFn func(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	if f.hasOverlappingPeriodFn != nil {
		return f.hasOverlappingPeriodFn(ctx, employeeID, startDate, endDate, excludeID)
	}
	return false, nil
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	actorID := uuid.New().String()

	repo := &fakeLeaveRepository{}
	svc := leave.NewService(repo)

	var created *leave.Leave
	repo.createFn = func(ctx context.Context, l *leave.Leave) error {
		created = l
		return nil
	}

	resp, err := svc.Create(ctx, actorID, leave.CreateLeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  "ANNUAL",
		StartDate:  "2026-06-08",
		EndDate:    "2026-06-12",
		Reason:     "Family trip",
	})

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	// Hari inklusif: 8 s.d. 12 Juni = 5 hari
	assert.Equal(t, 5, resp.TotalDays)
	if assert.NotNil(t, created) {
		assert.Equal(t, employeeID, created.EmployeeID.String())
	}
}

func TestLeaveService_Create_Overlap(t *testing.T) {
	ctx := context.Background()

	repo := &fakeLeaveRepository{
		hasOverlappingPeriodFn: func(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
			return true, nil
		},
	}
	svc := leave.NewService(repo)

	_, err := svc.Create(ctx, uuid.New().String(), leave.CreateLeaveRequest{
		EmployeeID: uuid.New().String(),
		StartDate:  "2026-06-08",
		EndDate:    "2026-06-12",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
}

func TestLeaveService_Create_InvalidDates(t *testing.T) {
	ctx := context.Background()
	svc := leave.NewService(&fakeLeaveRepository{})

	t.Run("bad format", func(t *testing.T) {
		_, err := svc.Create(ctx, uuid.New().String(), leave.CreateLeaveRequest{
			EmployeeID: uuid.New().String(),
			StartDate:  "08/06/2026",
			EndDate:    "2026-06-12",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := svc.Create(ctx, uuid.New().String(), leave.CreateLeaveRequest{
			EmployeeID: uuid.New().String(),
			StartDate:  "2026-06-12",
			EndDate:    "2026-06-08",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New()
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.Leave, error) {
				return &leave.Leave{ID: leaveID, EmployeeID: uuid.New(), Status: leave.StatusPending}, nil
			},
		}
		svc := leave.NewService(repo)

		resp, err := svc.Approve(ctx, actorID, leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, actorID, resp.ApprovedBy)
		assert.NotEmpty(t, resp.ApprovedAt)
	})

	t.Run("not pending", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.Leave, error) {
				return &leave.Leave{ID: leaveID, Status: leave.StatusApproved}, nil
			},
		}
		svc := leave.NewService(repo)

		_, err := svc.Approve(ctx, actorID, leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("not found", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepository{})

		_, err := svc.Approve(ctx, actorID, leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New()
	actorID := uuid.New().String()

	t.Run("requires reason", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepository{})

		_, err := svc.Reject(ctx, actorID, leaveID.String(), "")

		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
	})

	t.Run("success", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.Leave, error) {
				return &leave.Leave{ID: leaveID, EmployeeID: uuid.New(), Status: leave.StatusPending}, nil
			},
		}
		svc := leave.NewService(repo)

		resp, err := svc.Reject(ctx, actorID, leaveID.String(), "Peak season, no coverage")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Equal(t, "Peak season, no coverage", resp.RejectionReason)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New()
	ownerID := uuid.New()

	t.Run("owner cancels own pending leave", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.Leave, error) {
				return &leave.Leave{ID: leaveID, EmployeeID: ownerID, Status: leave.StatusPending}, nil
			},
		}
		svc := leave.NewService(repo)

		resp, err := svc.Cancel(ctx, ownerID.String(), leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.Leave, error) {
				return &leave.Leave{ID: leaveID, EmployeeID: ownerID, Status: leave.StatusPending}, nil
			},
		}
		svc := leave.NewService(repo)

		_, err := svc.Cancel(ctx, uuid.New().String(), leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotOwner)
	})
}
