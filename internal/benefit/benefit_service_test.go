package benefit_test

import (
	"context"
	"testing"

	"go-payroll/internal/benefit"
	benefiterrors "go-payroll/internal/benefit/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeBenefitRepository struct {
	createFn            func(ctx context.Context, b *benefit.Benefit) error
	findByIDFn          func(ctx context.Context, id string) (*benefit.Benefit, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]benefit.Benefit, error)
	totalForFn          func(ctx context.Context, employeeID string) (int64, error)
	updateFn            func(ctx context.Context, b *benefit.Benefit) error
	deleteFn            func(ctx context.Context, id string) error
}

func (f *fakeBenefitRepository) Create(ctx context.Context, b *benefit.Benefit) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}

func (f *fakeBenefitRepository) FindByID(ctx context.Context, id string) (*benefit.Benefit, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBenefitRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]benefit.Benefit, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeBenefitRepository) TotalFor(ctx context.Context, employeeID string) (int64, error) {
	if f.totalForFn != nil {
		return f.totalForFn(ctx, employeeID)
	}
	return 0, nil
}

func (f *fakeBenefitRepository) Update(ctx context.Context, b *benefit.Benefit) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, b)
	}
	return nil
}

func (f *fakeBenefitRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestBenefitService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	repo := &fakeBenefitRepository{}
	svc := benefit.NewService(repo)

	var created *benefit.Benefit
	repo.createFn = func(ctx context.Context, b *benefit.Benefit) error {
		created = b
		return nil
	}

	resp, err := svc.Create(ctx, benefit.CreateBenefitRequest{
		EmployeeID:   employeeID,
		BenefitType:  "MEAL_ALLOWANCE",
		Amount:       250_000,
		Description:  "Monthly meal allowance",
		AssignedDate: "2026-06-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, "MEAL_ALLOWANCE", resp.BenefitType)
	assert.Equal(t, int64(250_000), resp.Amount)
	assert.Equal(t, "2026-06-01", resp.AssignedDate)
	if assert.NotNil(t, created) {
		assert.Equal(t, employeeID, created.EmployeeID.String())
	}
}

func TestBenefitService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc := benefit.NewService(&fakeBenefitRepository{})

	t.Run("negative amount", func(t *testing.T) {
		_, err := svc.Create(ctx, benefit.CreateBenefitRequest{
			EmployeeID:  uuid.New().String(),
			BenefitType: "MEAL_ALLOWANCE",
			Amount:      -1,
		})
		assert.ErrorIs(t, err, benefiterrors.ErrNegativeAmount)
	})

	t.Run("bad assigned date", func(t *testing.T) {
		_, err := svc.Create(ctx, benefit.CreateBenefitRequest{
			EmployeeID:   uuid.New().String(),
			BenefitType:  "MEAL_ALLOWANCE",
			Amount:       100_000,
			AssignedDate: "June 1st",
		})
		assert.ErrorIs(t, err, benefiterrors.ErrInvalidAssignedDate)
	})
}

func TestBenefitService_Update(t *testing.T) {
	ctx := context.Background()
	benefitID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &fakeBenefitRepository{
			findByIDFn: func(ctx context.Context, id string) (*benefit.Benefit, error) {
				return &benefit.Benefit{ID: benefitID, EmployeeID: uuid.New(), BenefitType: "MEAL_ALLOWANCE", Amount: 100_000}, nil
			},
		}
		svc := benefit.NewService(repo)

		resp, err := svc.Update(ctx, benefitID.String(), benefit.UpdateBenefitRequest{
			BenefitType: "TRANSPORT_ALLOWANCE",
			Amount:      150_000,
		})

		assert.NoError(t, err)
		assert.Equal(t, "TRANSPORT_ALLOWANCE", resp.BenefitType)
		assert.Equal(t, int64(150_000), resp.Amount)
	})

	t.Run("not found", func(t *testing.T) {
		svc := benefit.NewService(&fakeBenefitRepository{})

		_, err := svc.Update(ctx, benefitID.String(), benefit.UpdateBenefitRequest{
			BenefitType: "TRANSPORT_ALLOWANCE",
			Amount:      150_000,
		})

		assert.ErrorIs(t, err, benefiterrors.ErrBenefitNotFound)
	})
}

func TestBenefitService_Delete_NotFound(t *testing.T) {
	svc := benefit.NewService(&fakeBenefitRepository{})

	err := svc.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, benefiterrors.ErrBenefitNotFound)
}

func TestBenefitService_GetByEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	repo := &fakeBenefitRepository{
		findAllByEmployeeFn: func(ctx context.Context, eid string) ([]benefit.Benefit, error) {
			assert.Equal(t, employeeID, eid)
			return []benefit.Benefit{
				{ID: uuid.New(), EmployeeID: uuid.MustParse(eid), BenefitType: "MEAL_ALLOWANCE", Amount: 250_000},
			}, nil
		},
	}
	svc := benefit.NewService(repo)

	resp, err := svc.GetByEmployee(ctx, employeeID)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, int64(250_000), resp[0].Amount)
}
