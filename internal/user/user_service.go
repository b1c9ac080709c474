package user

import (
	"context"
	"errors"
	"strings"

	"go-payroll/internal/shared/contextutil"
	usererrors "go-payroll/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock

type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetAllWithRoles(ctx context.Context) ([]UserWithRolesResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)

	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	AssignRole(ctx context.Context, userID string, roleName string) error
	ToggleStatus(ctx context.Context, id string, isActive bool) error

	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ForceResetPassword(ctx context.Context, userID, newPassword string) error
}

// RoleAssigner memutus dependensi langsung ke paket rbac.
type RoleAssigner interface {
	AssignRoleByName(userID, roleName string) error
}

type service struct {
	repo         Repository
	roleAssigner RoleAssigner
}

func NewService(repo Repository, roleAssigner ...RoleAssigner) Service {
	var assigner RoleAssigner
	if len(roleAssigner) > 0 {
		assigner = roleAssigner[0]
	}
	return &service{
		repo:         repo,
		roleAssigner: assigner,
	}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}

	return resp, nil
}

func (s *service) GetAllWithRoles(ctx context.Context) ([]UserWithRolesResponse, error) {
	rows, err := s.repo.FindAllWithRoles(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserWithRolesResponse, 0, len(rows))
	for _, u := range rows {
		roles := []string{}
		if strings.TrimSpace(u.RolesRaw) != "" {
			roles = strings.Split(u.RolesRaw, ",")
		}

		resp = append(resp, UserWithRolesResponse{
			ID:             u.ID,
			EmployeeID:     u.EmployeeID,
			EmployeeNumber: u.EmployeeNumber,
			Email:          u.Email,
			FullName:       u.FullName,
			IsActive:       u.IsActive,
			Roles:          roles,
			CreatedAt:      u.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	l.Info("creating user",
		zap.String("email", req.Email),
	)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = "EMPLOYEE"
	}

	u := &User{
		Name:     req.Name,
		Role:     role,
		Email:    req.Email,
		Password: string(hashedPassword),
		IsActive: true,
	}
	if req.EmployeeID != "" {
		employeeUUID := uuid.MustParse(req.EmployeeID)
		u.EmployeeID = &employeeUUID
	}

	if err := s.repo.Create(ctx, u); err != nil {
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, err
	}

	if s.roleAssigner != nil {
		if err := s.roleAssigner.AssignRoleByName(u.ID.String(), roleToRBACName(role)); err != nil {
			l.Warn("failed to assign default role", zap.Error(err))
		}
	}

	l.Info("user created successfully", zap.String("email", u.Email))
	return mapToResponse(*u), nil
}

func (s *service) AssignRole(ctx context.Context, userID string, roleName string) error {
	if s.roleAssigner == nil {
		return errors.New("role assigner is not configured")
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	return s.roleAssigner.AssignRoleByName(u.ID.String(), strings.TrimSpace(roleName))
}

func (s *service) ToggleStatus(ctx context.Context, id string, isActive bool) error {
	l := contextutil.GetLogger(ctx, nil)

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		l.Error("failed to find user", zap.Error(err))
		return err
	}

	u.IsActive = isActive

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update user status", zap.Error(err))
		return err
	}

	return nil
}

func (s *service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	l := contextutil.GetLogger(ctx, nil)

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash new password", zap.Error(err))
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

func (s *service) ForceResetPassword(ctx context.Context, userID, newPassword string) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

// roleToRBACName memetakan kolom role lama ke nama role casbin.
func roleToRBACName(role string) string {
	switch role {
	case "ADMIN":
		return "Admin"
	case "HR_MANAGER":
		return "HR Manager"
	case "SUPERVISOR":
		return "Supervisor"
	default:
		return "Employee"
	}
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.EmployeeID != nil {
		resp.EmployeeID = u.EmployeeID.String()
	}
	return resp
}
