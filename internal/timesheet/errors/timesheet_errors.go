package timesheeterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timesheet entry not found",
		http.StatusNotFound,
	)
	ErrInvalidWorkDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid work_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNegativeMinutes = apperror.New(
		apperror.CodeInvalidInput,
		"Worked and overtime minutes must not be negative",
		http.StatusBadRequest,
	)
	ErrAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"Timesheet entry is already approved",
		http.StatusConflict,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"Timesheet entry belongs to another employee",
		http.StatusForbidden,
	)
)
