package payroll

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-payroll/internal/audit"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	auditor audit.Recorder
}

func NewHandler(service Service, auditor audit.Recorder) *Handler {
	return &Handler{service: service, auditor: auditor}
}

func (h *Handler) Generate(c *gin.Context) {
	var req GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	h.auditor.Record(c.Request.Context(), c.GetString("user_id"), "Generate Payroll",
		fmt.Sprintf("Generated payroll %s for employee %s period %02d/%04d", resp.ID, resp.EmployeeID, resp.Month, resp.Year))

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Verify(c *gin.Context) {
	payrollID := c.Param("id")

	ok, err := h.service.Verify(c.Request.Context(), payrollID, c.GetString("user_id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	if !ok {
		response.Error(c, http.StatusConflict, apperror.CodeInvalidState, "Payroll not found or already verified", nil)
		return
	}

	h.auditor.Record(c.Request.Context(), c.GetString("user_id"), "Verify Payroll",
		"Verified payroll "+payrollID)

	response.Success(c, http.StatusOK, gin.H{"message": "Payroll verified"}, nil)
}

func (h *Handler) MarkAsPaid(c *gin.Context) {
	payrollID := c.Param("id")

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	ok, err := h.service.MarkAsPaid(c.Request.Context(), payrollID, req.PaymentMode)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	if !ok {
		response.Error(c, http.StatusConflict, apperror.CodeInvalidState, "Payroll not found, not verified yet, or already paid", nil)
		return
	}

	h.auditor.Record(c.Request.Context(), c.GetString("user_id"), "Paid Payroll",
		"Marked payroll "+payrollID+" as paid via "+req.PaymentMode)

	response.Success(c, http.StatusOK, gin.H{"message": "Payroll marked as paid"}, nil)
}

func (h *Handler) GetByPeriod(c *gin.Context) {
	now := time.Now()
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid month", nil)
		return
	}
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid year", nil)
		return
	}

	resp, err := h.service.GetByPeriod(c.Request.Context(), c.Param("employeeId"), month, year)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	resp, err := h.service.GetHistory(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAllDetails(c *gin.Context) {
	resp, err := h.service.GetAllDetails(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
