package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/pkg/apperror"
	"github.com/jamaney/mmtacos-api/pkg/utils"
)

type fakeUserRepo struct {
	createFn     func(ctx context.Context, user *entity.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	updateFn     func(ctx context.Context, user *entity.User) error
	countFn      func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.createFn(ctx, user)
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.getByEmailFn == nil {
		return nil, nil
	}
	return f.getByEmailFn(ctx, email)
}
func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return f.updateFn(ctx, user)
}
func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return f.countFn(ctx)
}

func testUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		ID:       uuid.New(),
		Name:     "Admin",
		Email:    "admin@mmtacos.ml",
		Password: hash,
		Role:     "admin",
	}
}

func testJWTManager() *utils.JWTManager {
	return utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "secret123")
	repo := &fakeUserRepo{getByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
		assert.Equal(t, user.Email, email)
		return user, nil
	}}
	svc := NewAuthService(repo, testJWTManager())

	out, err := svc.Login(context.Background(), &LoginInput{Email: user.Email, Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "secret123")
	repo := &fakeUserRepo{getByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
		return user, nil
	}}
	svc := NewAuthService(repo, testJWTManager())

	_, err := svc.Login(context.Background(), &LoginInput{Email: user.Email, Password: "wrong"})
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, testJWTManager())

	_, err := svc.Login(context.Background(), &LoginInput{Email: "nobody@mmtacos.ml", Password: "x"})
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	user := testUser(t, "secret123")
	repo := &fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*entity.User, error) { return user, nil },
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}
	svc := NewAuthService(repo, testJWTManager())

	out, err := svc.Login(context.Background(), &LoginInput{Email: user.Email, Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, user.ID, refreshed.User.ID)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, testJWTManager())

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.Equal(t, apperror.ErrInvalidToken, err)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	user := testUser(t, "secret123")
	repo := &fakeUserRepo{getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return user, nil
	}}
	svc := NewAuthService(repo, testJWTManager())

	err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "newpass456",
	})
	require.Error(t, err)
}

func TestChangePasswordRehashes(t *testing.T) {
	user := testUser(t, "secret123")
	var updated *entity.User
	repo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) { return user, nil },
		updateFn: func(ctx context.Context, u *entity.User) error {
			updated = u
			return nil
		},
	}
	svc := NewAuthService(repo, testJWTManager())

	err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "secret123",
		NewPassword:     "newpass456",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, utils.CheckPasswordHash("newpass456", updated.Password))
}
