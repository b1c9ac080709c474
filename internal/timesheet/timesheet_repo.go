package timesheet

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *TimesheetEntry) error
	FindByID(ctx context.Context, id string) (*TimesheetEntry, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]TimesheetEntry, error)
	SumOvertimeMinutes(ctx context.Context, employeeID string, from, to time.Time) (int64, error)
	Update(ctx context.Context, entry *TimesheetEntry) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *TimesheetEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*TimesheetEntry, error) {
	var entry TimesheetEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]TimesheetEntry, error) {
	var entries []TimesheetEntry
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date >= ? AND work_date < ?", from, to).
		Order("work_date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) SumOvertimeMinutes(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("timesheet_entries").
		Select("COALESCE(SUM(overtime_minutes), 0)").
		Where("employee_id = ?", employeeID).
		Where("work_date >= ? AND work_date < ?", from, to).
		Where("status = ?", StatusApproved).
		Scan(&total).Error
	return total, err
}

func (r *repository) Update(ctx context.Context, entry *TimesheetEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}
