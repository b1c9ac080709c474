package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	generateFn        func(ctx context.Context, processedBy string, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error)
	verifyFn          func(ctx context.Context, payrollID, verifiedBy string) (bool, error)
	markAsPaidFn      func(ctx context.Context, payrollID, paymentMode string) (bool, error)
	getByPeriodFn     func(ctx context.Context, employeeID string, month, year int) (payroll.PayrollResponse, error)
	getHistoryFn      func(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error)
	getAllDetailsFn   func(ctx context.Context) ([]payroll.PayrollDetailResponse, error)
	generatePayslipFn func(ctx context.Context, payrollID string) (string, error)
}

func (f *fakePayrollService) Generate(ctx context.Context, processedBy string, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
	return f.generateFn(ctx, processedBy, req)
}

func (f *fakePayrollService) Verify(ctx context.Context, payrollID, verifiedBy string) (bool, error) {
	return f.verifyFn(ctx, payrollID, verifiedBy)
}

func (f *fakePayrollService) MarkAsPaid(ctx context.Context, payrollID, paymentMode string) (bool, error) {
	return f.markAsPaidFn(ctx, payrollID, paymentMode)
}

func (f *fakePayrollService) GetByPeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollResponse, error) {
	return f.getByPeriodFn(ctx, employeeID, month, year)
}

func (f *fakePayrollService) GetHistory(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error) {
	return f.getHistoryFn(ctx, employeeID)
}

func (f *fakePayrollService) GetAllDetails(ctx context.Context) ([]payroll.PayrollDetailResponse, error) {
	return f.getAllDetailsFn(ctx)
}

func (f *fakePayrollService) GeneratePayslip(ctx context.Context, payrollID string) (string, error) {
	return f.generatePayslipFn(ctx, payrollID)
}

type fakeAuditRecorder struct {
	records []string
}

func (f *fakeAuditRecorder) Record(ctx context.Context, userID, action, description string) {
	f.records = append(f.records, action)
}

func TestPayrollHandler_Generate(t *testing.T) {
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, processedBy string, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, actorID, processedBy)
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, 6, req.Month)
			assert.Equal(t, 2026, req.Year)
			return payroll.PayrollResponse{
				ID:         uuid.New().String(),
				EmployeeID: req.EmployeeID,
				Month:      req.Month,
				Year:       req.Year,
				NetPay:     5_741_667,
			}, nil
		},
	}
	auditor := &fakeAuditRecorder{}

	h := payroll.NewHandler(svc, auditor)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","month":6,"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", actorID)

	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	assert.Contains(t, auditor.records, "Generate Payroll")
}

func TestPayrollHandler_Generate_Duplicate(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, processedBy string, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrDuplicatePayroll
		},
	}
	auditor := &fakeAuditRecorder{}

	h := payroll.NewHandler(svc, auditor)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + uuid.New().String() + `","month":6,"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", uuid.New().String())

	h.Generate(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Empty(t, auditor.records)
}

func TestPayrollHandler_Generate_InvalidBody(t *testing.T) {
	svc := &fakePayrollService{}
	auditor := &fakeAuditRecorder{}

	h := payroll.NewHandler(svc, auditor)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"not-a-uuid","month":0}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_Verify(t *testing.T) {
	payrollID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			verifyFn: func(ctx context.Context, id, verifiedBy string) (bool, error) {
				assert.Equal(t, payrollID, id)
				assert.Equal(t, actorID, verifiedBy)
				return true, nil
			},
		}
		auditor := &fakeAuditRecorder{}

		h := payroll.NewHandler(svc, auditor)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/verify", nil)
		c.Params = []gin.Param{{Key: "id", Value: payrollID}}
		c.Set("user_id", actorID)

		h.Verify(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, auditor.records, "Verify Payroll")
	})

	t.Run("already verified yields conflict", func(t *testing.T) {
		svc := &fakePayrollService{
			verifyFn: func(ctx context.Context, id, verifiedBy string) (bool, error) {
				return false, nil
			},
		}
		auditor := &fakeAuditRecorder{}

		h := payroll.NewHandler(svc, auditor)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/verify", nil)
		c.Params = []gin.Param{{Key: "id", Value: payrollID}}
		c.Set("user_id", actorID)

		h.Verify(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
		assert.Empty(t, auditor.records)
	})
}

func TestPayrollHandler_MarkAsPaid(t *testing.T) {
	payrollID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			markAsPaidFn: func(ctx context.Context, id, paymentMode string) (bool, error) {
				assert.Equal(t, payrollID, id)
				assert.Equal(t, payroll.PaymentModeBankTransfer, paymentMode)
				return true, nil
			},
		}
		auditor := &fakeAuditRecorder{}

		h := payroll.NewHandler(svc, auditor)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"payment_mode":"BANK_TRANSFER"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/pay", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: payrollID}}
		c.Set("user_id", actorID)

		h.MarkAsPaid(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, auditor.records, "Paid Payroll")
	})

	t.Run("not verified yields conflict", func(t *testing.T) {
		svc := &fakePayrollService{
			markAsPaidFn: func(ctx context.Context, id, paymentMode string) (bool, error) {
				return false, nil
			},
		}
		auditor := &fakeAuditRecorder{}

		h := payroll.NewHandler(svc, auditor)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"payment_mode":"CASH"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/pay", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: payrollID}}
		c.Set("user_id", actorID)

		h.MarkAsPaid(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})

	t.Run("invalid payment mode", func(t *testing.T) {
		svc := &fakePayrollService{
			markAsPaidFn: func(ctx context.Context, id, paymentMode string) (bool, error) {
				return false, payrollerrors.ErrInvalidPaymentMode
			},
		}
		auditor := &fakeAuditRecorder{}

		h := payroll.NewHandler(svc, auditor)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"payment_mode":"BARTER"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/pay", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: payrollID}}
		c.Set("user_id", actorID)

		h.MarkAsPaid(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})
}

func TestPayrollHandler_GetByPeriod(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		getByPeriodFn: func(ctx context.Context, eid string, month, year int) (payroll.PayrollResponse, error) {
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, 6, month)
			assert.Equal(t, 2026, year)
			return payroll.PayrollResponse{EmployeeID: eid, Month: month, Year: year}, nil
		},
	}
	auditor := &fakeAuditRecorder{}

	h := payroll.NewHandler(svc, auditor)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/employee/"+employeeID+"?month=6&year=2026", nil)
	c.Params = []gin.Param{{Key: "employeeId", Value: employeeID}}

	h.GetByPeriod(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_GetByPeriod_NotFound(t *testing.T) {
	svc := &fakePayrollService{
		getByPeriodFn: func(ctx context.Context, eid string, month, year int) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		},
	}
	auditor := &fakeAuditRecorder{}

	h := payroll.NewHandler(svc, auditor)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/employee/abc?month=6&year=2026", nil)
	c.Params = []gin.Param{{Key: "employeeId", Value: "abc"}}

	h.GetByPeriod(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_GetHistory(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		getHistoryFn: func(ctx context.Context, eid string) ([]payroll.PayrollResponse, error) {
			return []payroll.PayrollResponse{
				{EmployeeID: eid, Month: 7, Year: 2026},
				{EmployeeID: eid, Month: 6, Year: 2026},
			}, nil
		},
	}
	auditor := &fakeAuditRecorder{}

	h := payroll.NewHandler(svc, auditor)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/employee/"+employeeID+"/history", nil)
	c.Params = []gin.Param{{Key: "employeeId", Value: employeeID}}

	h.GetHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var items []payroll.PayrollResponse
	assert.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)
}
