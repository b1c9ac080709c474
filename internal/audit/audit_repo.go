package audit

import (
	"context"

	"gorm.io/gorm"
)

type AuditLogRow struct {
	AuditLog
	UserName string
}

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *AuditLog) error
	FindAll(ctx context.Context, filter GetAuditLogsFilterRequest) ([]AuditLogRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAll(ctx context.Context, filter GetAuditLogsFilterRequest) ([]AuditLogRow, error) {
	var rows []AuditLogRow

	db := r.db.WithContext(ctx).
		Table("audit_logs").
		Select("audit_logs.*, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = audit_logs.user_id").
		Order("audit_logs.created_at DESC")

	if filter.Action != "" {
		db = db.Where("audit_logs.action = ?", filter.Action)
	}
	if filter.UserID != "" {
		db = db.Where("audit_logs.user_id = ?", filter.UserID)
	}

	err := db.Scan(&rows).Error
	return rows, err
}
