package salarystructureerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSalaryStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary structure not found",
		http.StatusNotFound,
	)
	ErrNoActiveSalaryStructure = apperror.New(
		apperror.CodeInvalidState,
		"Employee has no active salary structure",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidEffectiveFrom = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid effective_from format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Salary components must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidPFPercent = apperror.New(
		apperror.CodeInvalidInput,
		"PF percent must be between 0 and 10000 basis points",
		http.StatusBadRequest,
	)
)
