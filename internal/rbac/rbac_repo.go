package rbac

import (
	"gorm.io/gorm"
)

type UserRoleRow struct {
	UserID string
	RoleID string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles() ([]UserRoleRow, error)
	GetRolePermissions() ([]RolePermissionRow, error)
	FindRoleByName(name string) (*Role, error)
	AssignRole(userID, roleID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserRoles() ([]UserRoleRow, error) {
	var rows []UserRoleRow
	err := r.db.
		Table("user_roles").
		Select("user_roles.user_id::text AS user_id, user_roles.role_id::text AS role_id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions() ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	err := r.db.
		Table("role_permissions").
		Select("role_permissions.role_id::text AS role_id, role_permissions.resource, role_permissions.action").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindRoleByName(name string) (*Role, error) {
	var role Role
	err := r.db.First(&role, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) AssignRole(userID, roleID string) error {
	return r.db.Exec(`
		INSERT INTO user_roles (user_id, role_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, userID, roleID).Error
}
