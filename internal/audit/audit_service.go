package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder adalah interface kecil yang dipakai handler lain untuk mencatat aksi.
// Kegagalan audit tidak boleh menggagalkan request utama.
type Recorder interface {
	Record(ctx context.Context, userID, action, description string)
}

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	Recorder
	GetAll(ctx context.Context, filter GetAuditLogsFilterRequest) ([]AuditLogResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, userID, action, description string) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		s.logger.Warn("audit record skipped, invalid user id",
			zap.String("user_id", userID),
			zap.String("action", action),
		)
		return
	}

	entry := &AuditLog{
		ID:          uuid.New(),
		UserID:      uid,
		Action:      action,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		// Audit gagal hanya dicatat di log, request tetap sukses
		s.logger.Error("audit record failed",
			zap.String("user_id", userID),
			zap.String("action", action),
			zap.Error(err),
		)
		return
	}

	s.logger.Debug("audit recorded",
		zap.String("user_id", userID),
		zap.String("action", action),
	)
}

func (s *service) GetAll(ctx context.Context, filter GetAuditLogsFilterRequest) ([]AuditLogResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]AuditLogResponse, len(rows))
	for i, row := range rows {
		resp[i] = AuditLogResponse{
			ID:          row.ID.String(),
			UserID:      row.UserID.String(),
			UserName:    row.UserName,
			Action:      row.Action,
			Description: row.Description,
			CreatedAt:   row.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}
