package auth_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"go-payroll/internal/auth"
	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	createFn            func(ctx context.Context, u *auth.User) error
	getByEmailFn        func(ctx context.Context, email string) (*auth.User, error)
	getByIDFn           func(ctx context.Context, id uuid.UUID) (*auth.User, error)
	storeRefreshFn      func(ctx context.Context, token *auth.RefreshToken) error
	findRefreshFn       func(ctx context.Context, tokenHash string) (*auth.RefreshToken, error)
	revokeRefreshFn     func(ctx context.Context, tokenHash string) error
	revokeAllForUserFn  func(ctx context.Context, userID uuid.UUID) error
}

func (f *fakeAuthRepository) Create(ctx context.Context, u *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) StoreRefreshToken(ctx context.Context, token *auth.RefreshToken) error {
	if f.storeRefreshFn != nil {
		return f.storeRefreshFn(ctx, token)
	}
	return nil
}

func (f *fakeAuthRepository) FindRefreshToken(ctx context.Context, tokenHash string) (*auth.RefreshToken, error) {
	if f.findRefreshFn != nil {
		return f.findRefreshFn(ctx, tokenHash)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	if f.revokeRefreshFn != nil {
		return f.revokeRefreshFn(ctx, tokenHash)
	}
	return nil
}

func (f *fakeAuthRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	if f.revokeAllForUserFn != nil {
		return f.revokeAllForUserFn(ctx, userID)
	}
	return nil
}

type fakeRBACService struct {
	loadPolicyCalls int
	assignments     map[string]string
}

func (f *fakeRBACService) LoadPolicy() error {
	f.loadPolicyCalls++
	return nil
}

func (f *fakeRBACService) Enforce(req domain.EnforceRequest) (bool, error) {
	return true, nil
}

func (f *fakeRBACService) AssignRoleByName(userID, roleName string) error {
	if f.assignments == nil {
		f.assignments = map[string]string{}
	}
	f.assignments[userID] = roleName
	return nil
}

func sha256Hex(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func activeUser(t *testing.T, password string) *auth.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return &auth.User{
		ID:       uuid.New(),
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Password: string(hashed),
		Role:     "HR_MANAGER",
		IsActive: true,
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user := activeUser(t, "rahasia-sekali")

		var stored *auth.RefreshToken
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				assert.Equal(t, "budi@example.com", email)
				return user, nil
			},
			storeRefreshFn: func(ctx context.Context, token *auth.RefreshToken) error {
				stored = token
				return nil
			},
		}
		rbacSvc := &fakeRBACService{}
		svc := auth.NewService(repo, rbacSvc)

		accessToken, refreshToken, resp, err := svc.Login(ctx, "budi@example.com", "rahasia-sekali")

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "HR_MANAGER", resp.Role)
		assert.Equal(t, 1, rbacSvc.loadPolicyCalls)
		if assert.NotNil(t, stored) {
			// Yang disimpan hash-nya, bukan token mentah
			assert.Equal(t, sha256Hex(refreshToken), stored.TokenHash)
			assert.Equal(t, user.ID, stored.UserID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		user := activeUser(t, "rahasia-sekali")
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return user, nil
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		_, _, _, err := svc.Login(ctx, "budi@example.com", "salah-tebak")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{}, &fakeRBACService{})

		_, _, _, err := svc.Login(ctx, "tidak-ada@example.com", "apapun")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		user := activeUser(t, "rahasia-sekali")
		user.IsActive = false
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return user, nil
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		_, _, _, err := svc.Login(ctx, "budi@example.com", "rahasia-sekali")

		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func signedRefreshToken(t *testing.T, userID uuid.UUID, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte("unit-test-secret"))
	assert.NoError(t, err)
	return signed
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	ctx := context.Background()

	t.Run("rotates token pair", func(t *testing.T) {
		user := activeUser(t, "rahasia-sekali")
		oldToken := signedRefreshToken(t, user.ID, time.Hour)

		var revokedHash string
		var stored *auth.RefreshToken
		repo := &fakeAuthRepository{
			findRefreshFn: func(ctx context.Context, tokenHash string) (*auth.RefreshToken, error) {
				return &auth.RefreshToken{
					ID:        uuid.New(),
					UserID:    user.ID,
					TokenHash: tokenHash,
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil
			},
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
				return user, nil
			},
			revokeRefreshFn: func(ctx context.Context, tokenHash string) error {
				revokedHash = tokenHash
				return nil
			},
			storeRefreshFn: func(ctx context.Context, token *auth.RefreshToken) error {
				stored = token
				return nil
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, oldToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.NotEqual(t, oldToken, newRefresh)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, sha256Hex(oldToken), revokedHash)
		if assert.NotNil(t, stored) {
			assert.Equal(t, sha256Hex(newRefresh), stored.TokenHash)
		}
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		user := activeUser(t, "rahasia-sekali")
		oldToken := signedRefreshToken(t, user.ID, time.Hour)
		revokedAt := time.Now().Add(-time.Minute)

		repo := &fakeAuthRepository{
			findRefreshFn: func(ctx context.Context, tokenHash string) (*auth.RefreshToken, error) {
				return &auth.RefreshToken{
					UserID:    user.ID,
					TokenHash: tokenHash,
					ExpiresAt: time.Now().Add(time.Hour),
					RevokedAt: &revokedAt,
				}, nil
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		_, _, _, err := svc.RefreshToken(ctx, oldToken)

		assert.ErrorIs(t, err, autherrors.ErrRefreshTokenRevoked)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{}, &fakeRBACService{})

		_, _, _, err := svc.RefreshToken(ctx, "bukan.jwt.valid")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes stored token", func(t *testing.T) {
		var revokedHash string
		repo := &fakeAuthRepository{
			revokeRefreshFn: func(ctx context.Context, tokenHash string) error {
				revokedHash = tokenHash
				return nil
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		err := svc.Logout(ctx, "some-refresh-token")

		assert.NoError(t, err)
		assert.Equal(t, sha256Hex("some-refresh-token"), revokedHash)
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		repo := &fakeAuthRepository{
			revokeRefreshFn: func(ctx context.Context, tokenHash string) error {
				t.Fatal("repository must not be hit for empty token")
				return nil
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		assert.NoError(t, svc.Logout(ctx, ""))
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	var created *auth.User
	repo := &fakeAuthRepository{
		createFn: func(ctx context.Context, u *auth.User) error {
			created = u
			return nil
		},
	}
	rbacSvc := &fakeRBACService{}
	svc := auth.NewService(repo, rbacSvc)

	resp, err := svc.Register(ctx, auth.RegisterRequest{
		Email:    "siti@example.com",
		Name:     "Siti Rahayu",
		Password: "rahasia-sekali",
	})

	assert.NoError(t, err)
	assert.Equal(t, "EMPLOYEE", resp.Role)
	if assert.NotNil(t, created) {
		assert.NotEqual(t, "rahasia-sekali", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("rahasia-sekali")))
		assert.Equal(t, "Employee", rbacSvc.assignments[created.ID.String()])
	}
}

func TestAuthService_GetMe_InvalidID(t *testing.T) {
	svc := auth.NewService(&fakeAuthRepository{}, &fakeRBACService{})

	_, err := svc.GetMe(context.Background(), "bukan-uuid")

	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
}
