package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/report"

	"github.com/stretchr/testify/assert"
)

type fakeReportRepository struct {
	payrollRegisterFn func(ctx context.Context, month, year int) ([]report.PayrollRegisterRow, error)
}

func (f *fakeReportRepository) PayrollRegister(ctx context.Context, month, year int) ([]report.PayrollRegisterRow, error) {
	if f.payrollRegisterFn != nil {
		return f.payrollRegisterFn(ctx, month, year)
	}
	return nil, nil
}

func TestReportService_WritePayrollRegisterCSV(t *testing.T) {
	ctx := context.Background()

	mode := "BANK_TRANSFER"
	repo := &fakeReportRepository{
		payrollRegisterFn: func(ctx context.Context, month, year int) ([]report.PayrollRegisterRow, error) {
			assert.Equal(t, 6, month)
			assert.Equal(t, 2026, year)
			return []report.PayrollRegisterRow{
				{
					EmployeeNumber: "EMP-000001",
					EmployeeName:   "Budi Santoso",
					Month:          6,
					Year:           2026,
					GrossPay:       6_500_000,
					EmployeePF:     600_000,
					EmployerPF:     600_000,
					IncomeTax:      158_333,
					NetPay:         5_741_667,
					IsVerified:     true,
					IsPaid:         true,
					PaymentMode:    &mode,
					ProcessedDate:  time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC),
				},
				{
					EmployeeNumber: "EMP-000002",
					EmployeeName:   "Siti Rahayu",
					Month:          6,
					Year:           2026,
					GrossPay:       4_000_000,
					EmployeePF:     480_000,
					NetPay:         3_520_000,
					ProcessedDate:  time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	svc := report.NewService(repo)

	var buf bytes.Buffer
	err := svc.WritePayrollRegisterCSV(ctx, &buf, 6, 2026)

	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, "employee_number", records[0][0])
	assert.Equal(t, "net_pay", records[0][8])

	assert.Equal(t, "EMP-000001", records[1][0])
	assert.Equal(t, "65000.00", records[1][4])
	assert.Equal(t, "57416.67", records[1][8])
	assert.Equal(t, "true", records[1][9])
	assert.Equal(t, "BANK_TRANSFER", records[1][11])

	// Payroll belum paid tidak punya payment mode
	assert.Equal(t, "false", records[2][10])
	assert.Equal(t, "", records[2][11])
}

func TestReportService_WritePayrollRegisterCSV_RepoError(t *testing.T) {
	repo := &fakeReportRepository{
		payrollRegisterFn: func(ctx context.Context, month, year int) ([]report.PayrollRegisterRow, error) {
			return nil, errors.New("db error")
		},
	}
	svc := report.NewService(repo)

	var buf bytes.Buffer
	err := svc.WritePayrollRegisterCSV(context.Background(), &buf, 6, 2026)

	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
