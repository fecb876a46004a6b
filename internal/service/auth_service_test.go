package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstgenius/internal/config"
	"gstgenius/internal/domain"
	"gstgenius/internal/service"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]domain.User
	byEmail map[string]uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[uuid.UUID]domain.User{},
		byEmail: map[string]uuid.UUID{},
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrDuplicateEmail
	}
	user.ID = uuid.New()
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-not-for-production",
		Issuer:             "gstgenius-test",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	}
}

func registeredService(t *testing.T) (service.AuthService, *domain.User) {
	t.Helper()
	svc := service.NewAuthService(newFakeUserRepo(), testJWTConfig())
	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "  Ravi@Example.COM ",
		Password: "supersecret",
		FullName: "Ravi Kumar",
	})
	require.NoError(t, err)
	return svc, user
}

func TestRegister(t *testing.T) {
	svc, user := registeredService(t)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ravi@example.com", user.Email, "email is normalized")
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "supersecret", user.PasswordHash)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "ravi@example.com",
		Password: "anotherpass",
		FullName: "Ravi Again",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	svc, user := registeredService(t)

	t.Run("valid credentials", func(t *testing.T) {
		pair, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "ravi@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.True(t, pair.ExpiresAt.After(time.Now()))

		claims, err := svc.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "ravi@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "ravi@example.com",
			Password: "wrongpassword",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "supersecret",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestRefreshToken(t *testing.T) {
	svc, user := registeredService(t)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ravi@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	t.Run("refresh token yields fresh pair", func(t *testing.T) {
		fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(fresh.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("refresh token rejected as access token", func(t *testing.T) {
		_, err := svc.ValidateToken(pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), "not.a.jwt")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
