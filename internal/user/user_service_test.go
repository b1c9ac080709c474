package user_test

import (
	"context"
	"testing"

	"go-payroll/internal/user"
	usererrors "go-payroll/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn           func(ctx context.Context, u *user.User) error
	findByIDFn         func(ctx context.Context, id string) (*user.User, error)
	findByEmailFn      func(ctx context.Context, email string) (*user.User, error)
	findAllFn          func(ctx context.Context) ([]user.User, error)
	findAllWithRolesFn func(ctx context.Context) ([]user.UserWithRolesRow, error)
	updateFn           func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindAllWithRoles(ctx context.Context) ([]user.UserWithRolesRow, error) {
	if f.findAllWithRolesFn != nil {
		return f.findAllWithRolesFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

type fakeRoleAssigner struct {
	assignments map[string]string
	err         error
}

func (f *fakeRoleAssigner) AssignRoleByName(userID, roleName string) error {
	if f.err != nil {
		return f.err
	}
	if f.assignments == nil {
		f.assignments = map[string]string{}
	}
	f.assignments[userID] = roleName
	return nil
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &fakeUserRepository{}
	assigner := &fakeRoleAssigner{}
	svc := user.NewService(repo, assigner)

	var created *user.User
	repo.createFn = func(ctx context.Context, u *user.User) error {
		u.ID = uuid.New()
		created = u
		return nil
	}

	resp, err := svc.Create(ctx, user.CreateUserRequest{
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Password: "rahasia-sekali",
		Role:     "HR_MANAGER",
	})

	assert.NoError(t, err)
	assert.Equal(t, "budi@example.com", resp.Email)
	assert.True(t, resp.IsActive)
	if assert.NotNil(t, created) {
		// Password harus hash bcrypt, bukan plaintext
		assert.NotEqual(t, "rahasia-sekali", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("rahasia-sekali")))
		assert.Equal(t, "HR Manager", assigner.assignments[created.ID.String()])
	}
}

func TestUserService_Create_DefaultsToEmployeeRole(t *testing.T) {
	ctx := context.Background()

	repo := &fakeUserRepository{}
	assigner := &fakeRoleAssigner{}
	svc := user.NewService(repo, assigner)

	var createdID string
	repo.createFn = func(ctx context.Context, u *user.User) error {
		u.ID = uuid.New()
		createdID = u.ID.String()
		return nil
	}

	resp, err := svc.Create(ctx, user.CreateUserRequest{
		Name:     "Siti Rahayu",
		Email:    "siti@example.com",
		Password: "rahasia-sekali",
	})

	assert.NoError(t, err)
	assert.Equal(t, "EMPLOYEE", resp.Role)
	assert.Equal(t, "Employee", assigner.assignments[createdID])
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password-lama"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		var updated *user.User
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				return &user.User{ID: userID, Password: string(hashed)}, nil
			},
			updateFn: func(ctx context.Context, u *user.User) error {
				updated = u
				return nil
			},
		}
		svc := user.NewService(repo)

		err := svc.ChangePassword(ctx, userID.String(), "password-lama", "password-baru")

		assert.NoError(t, err)
		if assert.NotNil(t, updated) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("password-baru")))
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				return &user.User{ID: userID, Password: string(hashed)}, nil
			},
		}
		svc := user.NewService(repo)

		err := svc.ChangePassword(ctx, userID.String(), "salah-tebak", "password-baru")

		assert.ErrorIs(t, err, usererrors.ErrWrongPassword)
	})

	t.Run("user not found", func(t *testing.T) {
		svc := user.NewService(&fakeUserRepository{})

		err := svc.ChangePassword(ctx, userID.String(), "password-lama", "password-baru")

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	var updated *user.User
	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
			return &user.User{ID: userID, IsActive: true}, nil
		},
		updateFn: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}
	svc := user.NewService(repo)

	err := svc.ToggleStatus(ctx, userID.String(), false)

	assert.NoError(t, err)
	if assert.NotNil(t, updated) {
		assert.False(t, updated.IsActive)
	}
}

func TestUserService_GetByID_InvalidID(t *testing.T) {
	svc := user.NewService(&fakeUserRepository{})

	_, err := svc.GetByID(context.Background(), "bukan-uuid")

	assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
}

func TestUserService_GetAllWithRoles_SplitsRoles(t *testing.T) {
	ctx := context.Background()

	repo := &fakeUserRepository{
		findAllWithRolesFn: func(ctx context.Context) ([]user.UserWithRolesRow, error) {
			return []user.UserWithRolesRow{
				{ID: uuid.New().String(), Email: "admin@example.com", RolesRaw: "Admin,HR Manager"},
				{ID: uuid.New().String(), Email: "staff@example.com", RolesRaw: ""},
			}, nil
		},
	}
	svc := user.NewService(repo)

	resp, err := svc.GetAllWithRoles(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, []string{"Admin", "HR Manager"}, resp[0].Roles)
	assert.Empty(t, resp[1].Roles)
}

func TestUserService_AssignRole(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
			return &user.User{ID: userID}, nil
		},
	}
	assigner := &fakeRoleAssigner{}
	svc := user.NewService(repo, assigner)

	err := svc.AssignRole(ctx, userID.String(), " Supervisor ")

	assert.NoError(t, err)
	assert.Equal(t, "Supervisor", assigner.assignments[userID.String()])
}
