package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-payroll/internal/benefit"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payrollpolicy"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/shared/contextutil"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	// Generate menghitung dan menyimpan payroll satu periode untuk satu
	// karyawan. Duplikat periode dijaga unique index di storage; pre-check
	// hanya untuk pesan error yang ramah.
	Generate(ctx context.Context, processedBy string, req GeneratePayrollRequest) (PayrollResponse, error)
	// Verify mengembalikan false tanpa error bila payroll tidak ada atau
	// sudah verified; transisi hanya terjadi tepat sekali.
	Verify(ctx context.Context, payrollID, verifiedBy string) (bool, error)
	// MarkAsPaid mengembalikan false tanpa error bila payroll tidak ada,
	// belum verified, atau sudah paid.
	MarkAsPaid(ctx context.Context, payrollID, paymentMode string) (bool, error)
	GetByPeriod(ctx context.Context, employeeID string, month, year int) (PayrollResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]PayrollResponse, error)
	GetAllDetails(ctx context.Context) ([]PayrollDetailResponse, error)
	// GeneratePayslip membangun PDF slip gaji dan menyimpan URL-nya.
	// Dipanggil consumer saat event payslip requested masuk.
	GeneratePayslip(ctx context.Context, payrollID string) (string, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	salaryRepo  salarystructure.Repository
	benefitRepo benefit.Repository
	policyRepo  payrollpolicy.Repository
	emplRepo    employee.Repository
	outbox      kafka.OutboxRepository

	payslipDir     string
	payslipBaseURL string

	logger *zap.Logger
}

type Config struct {
	PayslipStorageDir    string
	PayslipPublicBaseURL string
}

func NewService(
	db *sql.DB,
	repo Repository,
	salaryRepo salarystructure.Repository,
	benefitRepo benefit.Repository,
	policyRepo payrollpolicy.Repository,
	emplRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		salaryRepo:     salaryRepo,
		benefitRepo:    benefitRepo,
		policyRepo:     policyRepo,
		emplRepo:       emplRepo,
		outbox:         outboxRepo,
		payslipDir:     cfg.PayslipStorageDir,
		payslipBaseURL: strings.TrimRight(cfg.PayslipPublicBaseURL, "/"),
		logger:         l,
	}
}

func (s *service) Generate(ctx context.Context, processedBy string, req GeneratePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payroll requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	if req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.Year > 2100 {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	if _, err := s.emplRepo.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate payroll begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return PayrollResponse{}, err
	}
	if exists {
		s.logger.Warn("generate payroll duplicate period",
			zap.String("employee_id", req.EmployeeID),
			zap.Int("month", req.Month),
			zap.Int("year", req.Year),
		)
		return PayrollResponse{}, payrollerrors.ErrDuplicatePayroll
	}

	salary, err := s.salaryRepo.LatestFor(ctx, req.EmployeeID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrNoSalaryStructure
		}
		return PayrollResponse{}, err
	}

	benefitTotal, err := s.benefitRepo.TotalFor(ctx, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}

	// Kebijakan opsional: absennya policy hanya menghapus fallback tarif PF
	var policyPFRate *int64
	policy, err := s.policyRepo.Latest(ctx, time.Now())
	switch {
	case err == nil:
		policyPFRate = &policy.DefaultPFPercentBps
	case errors.Is(err, gorm.ErrRecordNotFound):
		// normal miss
	default:
		return PayrollResponse{}, err
	}

	gross := salary.BasicPay + salary.HRA + salary.Allowances + benefitTotal
	pfRateBps := resolvePFRateBps(salary.PFPercentBps, policyPFRate)
	employeePF := pfAmount(salary.BasicPay, pfRateBps)
	employerPF := employeePF // mirror kontribusi karyawan
	incomeTax := MonthlyTax(gross * 12)
	netPay := gross - employeePF - incomeTax

	payroll := &Payroll{
		ID:            uuid.New(),
		EmployeeID:    uuid.MustParse(req.EmployeeID),
		Month:         req.Month,
		Year:          req.Year,
		GrossPay:      gross,
		EmployeePF:    employeePF,
		EmployerPF:    employerPF,
		IncomeTax:     incomeTax,
		NetPay:        netPay,
		ProcessedBy:   uuid.MustParse(processedBy),
		ProcessedDate: time.Now().UTC(),
	}

	if err := qtx.Create(ctx, payroll); err != nil {
		s.logger.Error("generate payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, events.PayrollGenerated, payroll, processedBy, rid); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate payroll commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("generate payroll success",
		zap.String("request_id", rid),
		zap.String("payroll_id", payroll.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int64("net_pay", netPay),
	)

	return mapToResponse(*payroll), nil
}

func (s *service) Verify(ctx context.Context, payrollID, verifiedBy string) (bool, error) {
	rid := contextutil.GetRequestID(ctx)

	payroll, err := s.repo.FindByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	ok, err := qtx.UpdateVerify(ctx, payrollID, verifiedBy, time.Now().UTC())
	if err != nil {
		s.logger.Error("verify payroll update failed", zap.Error(err))
		return false, err
	}
	if !ok {
		// Sudah verified; bukan error, hanya no-op
		return false, nil
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, events.PayrollVerified, payroll, verifiedBy, rid); err != nil {
		return false, err
	}
	if err := s.enqueuePayslipRequest(ctx, tx, payrollID, verifiedBy, rid); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	s.logger.Info("verify payroll success",
		zap.String("request_id", rid),
		zap.String("payroll_id", payrollID),
		zap.String("verified_by", verifiedBy),
	)

	return true, nil
}

func (s *service) MarkAsPaid(ctx context.Context, payrollID, paymentMode string) (bool, error) {
	rid := contextutil.GetRequestID(ctx)

	if !ValidPaymentMode(paymentMode) {
		return false, payrollerrors.ErrInvalidPaymentMode
	}

	payroll, err := s.repo.FindByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	ok, err := qtx.UpdateMarkPaid(ctx, payrollID, paymentMode, time.Now().UTC())
	if err != nil {
		s.logger.Error("mark payroll paid update failed", zap.Error(err))
		return false, err
	}
	if !ok {
		// Belum verified atau sudah paid; no-op
		return false, nil
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, events.PayrollPaid, payroll, "", rid); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	s.logger.Info("mark payroll paid success",
		zap.String("request_id", rid),
		zap.String("payroll_id", payrollID),
		zap.String("payment_mode", paymentMode),
	)

	return true, nil
}

func (s *service) GetByPeriod(ctx context.Context, employeeID string, month, year int) (PayrollResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	payroll, err := s.repo.FindByPeriod(ctx, employeeID, month, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}

	return mapToResponse(*payroll), nil
}

func (s *service) GetHistory(ctx context.Context, employeeID string) ([]PayrollResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrEmployeeNotFound
	}

	payrolls, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetAllDetails(ctx context.Context) ([]PayrollDetailResponse, error) {
	rows, err := s.repo.FindAllDetails(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]PayrollDetailResponse, len(rows))
	for i, row := range rows {
		res[i] = PayrollDetailResponse{
			PayrollResponse: mapToResponse(row.Payroll),
			EmployeeName:    row.EmployeeName,
			EmployeeNumber:  row.EmployeeNumber,
			ProcessorName:   row.ProcessorName,
			VerifierName:    row.VerifierName,
		}
	}
	return res, nil
}

func (s *service) GeneratePayslip(ctx context.Context, payrollID string) (string, error) {
	payroll, err := s.repo.FindByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", payrollerrors.ErrPayrollNotFound
		}
		return "", err
	}

	employeeName := payroll.EmployeeID.String()
	if empl, err := s.emplRepo.FindByID(ctx, payroll.EmployeeID.String()); err == nil {
		employeeName = empl.FullName
	}

	lines := payslipLines(*payroll, employeeName)
	pdf, err := buildPayslipPDF(lines)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("payslip-%s-%04d-%02d.pdf", payroll.ID.String(), payroll.Year, payroll.Month)
	if err := os.MkdirAll(s.payslipDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.payslipDir, fileName), pdf, 0o644); err != nil {
		s.logger.Error("write payslip file failed",
			zap.String("payroll_id", payrollID),
			zap.Error(err),
		)
		return "", err
	}

	url := s.payslipBaseURL + "/" + fileName
	now := time.Now().UTC()
	if err := s.repo.UpdatePayslipURL(ctx, payrollID, url, now); err != nil {
		return "", err
	}

	s.logger.Info("payslip generated",
		zap.String("payroll_id", payrollID),
		zap.String("url", url),
	)

	return url, nil
}

func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType string, payroll *Payroll, actorID, rid string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		PayrollID:  payroll.ID.String(),
		EmployeeID: payroll.EmployeeID.String(),
		Month:      payroll.Month,
		Year:       payroll.Year,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll",
		AggregateID:   payroll.ID.String(),
		EventType:     eventType,
		Topic:         events.PayrollLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) enqueuePayslipRequest(ctx context.Context, tx *sql.Tx, payrollID, requestedBy, rid string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollPayslipRequestedEvent{
		EventType:   "payroll_payslip_requested",
		PayrollID:   payrollID,
		RequestedBy: requestedBy,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll",
		AggregateID:   payrollID,
		EventType:     event.EventType,
		Topic:         events.PayrollPayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:            p.ID.String(),
		EmployeeID:    p.EmployeeID.String(),
		Month:         p.Month,
		Year:          p.Year,
		GrossPay:      p.GrossPay,
		EmployeePF:    p.EmployeePF,
		EmployerPF:    p.EmployerPF,
		IncomeTax:     p.IncomeTax,
		NetPay:        p.NetPay,
		IsVerified:    p.IsVerified,
		IsPaid:        p.IsPaid,
		ProcessedBy:   p.ProcessedBy.String(),
		ProcessedDate: p.ProcessedDate.Format(time.RFC3339),
	}
	if p.VerifiedBy != nil {
		resp.VerifiedBy = p.VerifiedBy.String()
	}
	if p.VerifiedDate != nil {
		resp.VerifiedDate = p.VerifiedDate.Format(time.RFC3339)
	}
	if p.PaidDate != nil {
		resp.PaidDate = p.PaidDate.Format(time.RFC3339)
	}
	if p.PaymentMode != nil {
		resp.PaymentMode = *p.PaymentMode
	}
	if p.PayslipURL != nil {
		resp.PayslipURL = *p.PayslipURL
	}
	return resp
}
