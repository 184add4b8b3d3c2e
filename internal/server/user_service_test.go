package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/types"
)

func newTestUserService(store UserStore) *UserService {
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10})
}

func TestUserService_Signup(t *testing.T) {
	store := newFakeStore()
	svc := newTestUserService(store)

	user, err := svc.Signup(t.Context(), &types.SignupRequest{
		Name:     "Test User",
		Email:    "signup@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "signup@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The stored hash must not be the plaintext password.
	stored := store.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := newTestUserService(store)

	_, err := svc.Signup(t.Context(), &types.SignupRequest{
		Name: "First", Email: "dup@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Signup(t.Context(), &types.SignupRequest{
		Name: "Second", Email: "dup@example.com", Password: "password456",
	})
	require.Error(t, err)

	var dupErr *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dupErr)
}

func TestUserService_Login(t *testing.T) {
	store := newFakeStore()
	svc := newTestUserService(store)

	created, err := svc.Signup(t.Context(), &types.SignupRequest{
		Name: "User", Email: "login@example.com", Password: "password123",
	})
	require.NoError(t, err)

	user, err := svc.Login(t.Context(), &types.LoginRequest{
		Email: "login@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	store := newFakeStore()
	svc := newTestUserService(store)

	_, err := svc.Signup(t.Context(), &types.SignupRequest{
		Name: "User", Email: "wrong@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(t.Context(), &types.LoginRequest{
		Email: "wrong@example.com", Password: "not-the-password",
	})
	require.Error(t, err)

	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := newTestUserService(newFakeStore())

	_, err := svc.Login(t.Context(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "password123",
	})
	require.Error(t, err)

	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestUserService_GetByID(t *testing.T) {
	store := newFakeStore()
	svc := newTestUserService(store)

	created, err := svc.Signup(t.Context(), &types.SignupRequest{
		Name: "User", Email: "byid@example.com", Password: "password123",
	})
	require.NoError(t, err)

	user, err := svc.GetByID(t.Context(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "byid@example.com", user.Email)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := newTestUserService(newFakeStore())

	_, err := svc.GetByID(t.Context(), uuid.New())
	require.Error(t, err)

	var notFoundErr *ErrUserNotFound
	assert.ErrorAs(t, err, &notFoundErr)
}
