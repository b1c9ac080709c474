package payrollpolicyerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll policy not found",
		http.StatusNotFound,
	)
	ErrInvalidPFPercent = apperror.New(
		apperror.CodeInvalidInput,
		"Default PF percent must be between 0 and 10000 basis points",
		http.StatusBadRequest,
	)
	ErrNegativeOvertimeRate = apperror.New(
		apperror.CodeInvalidInput,
		"Overtime rate must not be negative",
		http.StatusBadRequest,
	)
)
