package user

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserWithRolesRow struct {
	ID             string
	EmployeeID     string
	EmployeeNumber string
	Email          string
	FullName       string
	IsActive       bool
	RolesRaw       string
	CreatedAt      time.Time
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindAllWithRoles(ctx context.Context) ([]UserWithRolesRow, error)
	Update(ctx context.Context, u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Joins("Employee").
		Order("users.created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindAllWithRoles(ctx context.Context) ([]UserWithRolesRow, error) {
	var rows []UserWithRolesRow

	err := r.db.WithContext(ctx).
		Table("users").
		Select(`users.id, users.employee_id, users.email, users.is_active, users.created_at,
			COALESCE(employees.employee_number, '') AS employee_number,
			COALESCE(employees.full_name, '') AS full_name,
			COALESCE(string_agg(roles.name, ','), '') AS roles_raw`).
		Joins("LEFT JOIN employees ON employees.id = users.employee_id").
		Joins("LEFT JOIN user_roles ON user_roles.user_id = users.id").
		Joins("LEFT JOIN roles ON roles.id = user_roles.role_id").
		Where("users.deleted_at IS NULL").
		Group("users.id, employees.employee_number, employees.full_name").
		Order("users.created_at DESC").
		Scan(&rows).Error

	return rows, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
