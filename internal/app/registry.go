package app

import (
	"database/sql"

	"go-payroll/internal/audit"
	"go-payroll/internal/auth"
	"go-payroll/internal/benefit"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/payrollpolicy"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/report"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/timesheet"
	"go-payroll/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	benefitRepo := benefit.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	policyRepo := payrollpolicy.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	salaryRepo := salarystructure.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	auditService := audit.NewService(auditRepo)
	authService := auth.NewService(authRepo, rbacService)
	benefitService := benefit.NewService(benefitRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	leaveService := leave.NewService(leaveRepo)
	policyService := payrollpolicy.NewService(policyRepo)
	payrollService := payroll.NewService(
		db,
		payrollRepo,
		salaryRepo,
		benefitRepo,
		policyRepo,
		employeeRepo,
		outboxRepo,
		payroll.Config{
			PayslipStorageDir:    cfg.PayslipStorageDir,
			PayslipPublicBaseURL: cfg.PayslipPublicBaseURL,
		},
	)
	reportService := report.NewService(reportRepo)
	salaryService := salarystructure.NewService(salaryRepo)
	timesheetService := timesheet.NewService(timesheetRepo, policyRepo)
	userService := user.NewService(userRepo, rbacService)

	// --- Handlers ---
	auditHandler := audit.NewHandler(auditService)
	authHandler := auth.NewHandler(authService, auditService)
	benefitHandler := benefit.NewHandler(benefitService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService, auditService)
	payrollHandler := payroll.NewHandler(payrollService, auditService)
	policyHandler := payrollpolicy.NewHandler(policyService)
	reportHandler := report.NewHandler(reportService)
	salaryHandler := salarystructure.NewHandler(salaryService)
	timesheetHandler := timesheet.NewHandler(timesheetService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		audit.RegisterRoutes(api, auditHandler, rbacService)
		benefit.RegisterRoutes(api, benefitHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		payrollpolicy.RegisterRoutes(api, policyHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		salarystructure.RegisterRoutes(api, salaryHandler, rbacService)
		timesheet.RegisterRoutes(api, timesheetHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService)
	}

	// Payslip PDF dilayani statis dari direktori storage
	router.Static(cfg.PayslipPublicBaseURL, cfg.PayslipStorageDir)

	return nil
}
