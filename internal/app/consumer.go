package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-payroll/internal/benefit"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/payroll"
	"go-payroll/internal/payrollpolicy"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer menjalankan consumer group payslip: setiap event
// payroll_payslip_requested menghasilkan satu PDF slip gaji.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	payrollRepo := payroll.NewRepository(gormDB)
	salaryRepo := salarystructure.NewRepository(gormDB)
	benefitRepo := benefit.NewRepository(gormDB)
	policyRepo := payrollpolicy.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)

	payrollService := payroll.NewService(
		sqlDB,
		payrollRepo,
		salaryRepo,
		benefitRepo,
		policyRepo,
		employeeRepo,
		nil,
		payroll.Config{
			PayslipStorageDir:    cfg.PayslipStorageDir,
			PayslipPublicBaseURL: cfg.PayslipPublicBaseURL,
		},
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     cfg.KafkaBrokers,
		Topic:       events.PayrollPayslipRequestedTopic,
		GroupID:     cfg.KafkaConsumerGroup,
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollPayslipRequested(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
