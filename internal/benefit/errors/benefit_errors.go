package benefiterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrBenefitNotFound = apperror.New(
		apperror.CodeNotFound,
		"Benefit not found",
		http.StatusNotFound,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Benefit amount must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidAssignedDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assigned_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
