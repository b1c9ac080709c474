package audit

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_audit_logs_user"`
	Action      string    `gorm:"type:varchar(100);not null;index:idx_audit_logs_action"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
