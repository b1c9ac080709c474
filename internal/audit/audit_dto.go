package audit

type AuditLogResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name,omitempty"`
	Action      string `json:"action"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type GetAuditLogsFilterRequest struct {
	Action string `form:"action"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}
