package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll not found",
		http.StatusNotFound,
	)
	ErrDuplicatePayroll = apperror.New(
		apperror.CodeConflict,
		"Payroll already exists for this employee and period",
		http.StatusConflict,
	)
	ErrNoSalaryStructure = apperror.New(
		apperror.CodeInvalidState,
		"Employee has no salary structure effective for this period",
		http.StatusUnprocessableEntity,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be between 1 and 12 and year within supported range",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentMode = apperror.New(
		apperror.CodeInvalidInput,
		"Payment mode must be one of BANK_TRANSFER, CASH, CHEQUE, DIGITAL_WALLET",
		http.StatusBadRequest,
	)
	ErrPayslipNotReady = apperror.New(
		apperror.CodeInvalidState,
		"Payslip has not been generated for this payroll yet",
		http.StatusUnprocessableEntity,
	)
)
