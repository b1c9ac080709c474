package report

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"go-payroll/internal/payroll"

	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	// WritePayrollRegisterCSV menulis register payroll satu periode sebagai
	// CSV; kolom uang dalam desimal satuan mayor.
	WritePayrollRegisterCSV(ctx context.Context, w io.Writer, month, year int) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) WritePayrollRegisterCSV(ctx context.Context, w io.Writer, month, year int) error {
	rows, err := s.repo.PayrollRegister(ctx, month, year)
	if err != nil {
		s.logger.Error("payroll register query failed", zap.Error(err))
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"employee_number", "employee_name", "month", "year",
		"gross_pay", "employee_pf", "employer_pf", "income_tax", "net_pay",
		"verified", "paid", "payment_mode", "processed_date",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		paymentMode := ""
		if row.PaymentMode != nil {
			paymentMode = *row.PaymentMode
		}

		record := []string{
			row.EmployeeNumber,
			row.EmployeeName,
			strconv.Itoa(row.Month),
			strconv.Itoa(row.Year),
			payroll.FormatMinor(row.GrossPay),
			payroll.FormatMinor(row.EmployeePF),
			payroll.FormatMinor(row.EmployerPF),
			payroll.FormatMinor(row.IncomeTax),
			payroll.FormatMinor(row.NetPay),
			strconv.FormatBool(row.IsVerified),
			strconv.FormatBool(row.IsPaid),
			paymentMode,
			row.ProcessedDate.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
