package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/config"
	domain "workout-tracker/internal/domain/user"
	repo "workout-tracker/internal/repository/interfaces"
	authuc "workout-tracker/internal/usecase/auth"
	jwtsvc "workout-tracker/pkg/jwt"
	"workout-tracker/pkg/password"
)

// ==== Fake user repository ====

type fakeUserRepo struct {
	byID       map[uuid.UUID]*domain.User
	byUsername map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       map[uuid.UUID]*domain.User{},
		byUsername: map[string]*domain.User{},
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := r.byUsername[user.Username]; ok {
		return repo.ErrUsernameExists
	}
	r.byID[user.ID] = user
	r.byUsername[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return user, nil
}

var _ repo.UserRepository = (*fakeUserRepo)(nil)

func testJWTService() jwtsvc.Service {
	return jwtsvc.NewService(&config.JWTConfig{
		Issuer:        "workout-tracker-test",
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	})
}

// ==== Register ====

func TestRegister_Success(t *testing.T) {
	store := newFakeUserRepo()
	svc := authuc.NewService(store, testJWTService())

	user, err := svc.Register(context.Background(), "alice", "secret-password")
	require.NoError(t, err)

	require.NotEqual(t, uuid.Nil, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, domain.RoleUser, user.Role)

	// Пароль хранится только в виде bcrypt-хеша
	require.NotEqual(t, "secret-password", user.PasswordHash)
	require.NoError(t, password.Compare(user.PasswordHash, "secret-password"))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	store := newFakeUserRepo()
	svc := authuc.NewService(store, testJWTService())

	_, err := svc.Register(context.Background(), "alice", "secret-password")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "another-password")
	require.ErrorIs(t, err, repo.ErrUsernameExists)
}

func TestRegister_EmptyInput(t *testing.T) {
	store := newFakeUserRepo()
	svc := authuc.NewService(store, testJWTService())

	_, err := svc.Register(context.Background(), "", "secret-password")
	require.Error(t, err)

	_, err = svc.Register(context.Background(), "alice", "")
	require.Error(t, err)
	require.Empty(t, store.byUsername)
}

// ==== Login ====

func TestLogin_Success(t *testing.T) {
	store := newFakeUserRepo()
	svc := authuc.NewService(store, testJWTService())

	registered, err := svc.Register(context.Background(), "alice", "secret-password")
	require.NoError(t, err)

	user, access, refresh, err := svc.Login(context.Background(), "alice", "secret-password")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	// Access-токен содержит идентификатор пользователя
	claims, err := testJWTService().ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, registered.ID.String(), claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newFakeUserRepo()
	svc := authuc.NewService(store, testJWTService())

	_, err := svc.Register(context.Background(), "alice", "secret-password")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "alice", "wrong-password")
	require.ErrorIs(t, err, authuc.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	store := newFakeUserRepo()
	svc := authuc.NewService(store, testJWTService())

	// Неизвестный username даёт ту же ошибку, что и неверный пароль
	_, _, _, err := svc.Login(context.Background(), "nobody", "secret-password")
	require.ErrorIs(t, err, authuc.ErrInvalidCredentials)
}

// ==== Refresh ====

func TestRefresh_Success(t *testing.T) {
	store := newFakeUserRepo()
	svc := authuc.NewService(store, testJWTService())

	registered, err := svc.Register(context.Background(), "alice", "secret-password")
	require.NoError(t, err)

	_, _, refresh, err := svc.Login(context.Background(), "alice", "secret-password")
	require.NoError(t, err)

	user, newAccess, newRefresh, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, newAccess)
	require.NotEmpty(t, newRefresh)
}

func TestRefresh_InvalidToken(t *testing.T) {
	store := newFakeUserRepo()
	svc := authuc.NewService(store, testJWTService())

	_, _, _, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, authuc.ErrInvalidRefreshToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	store := newFakeUserRepo()
	svc := authuc.NewService(store, testJWTService())

	_, err := svc.Register(context.Background(), "alice", "secret-password")
	require.NoError(t, err)

	_, access, _, err := svc.Login(context.Background(), "alice", "secret-password")
	require.NoError(t, err)

	// Access-токен подписан другим секретом и не подходит для обновления
	_, _, _, err = svc.Refresh(context.Background(), access)
	require.ErrorIs(t, err, authuc.ErrInvalidRefreshToken)
}
