package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/game-store/internal/apperr"
)

func newUserService(t *testing.T) *UserService {
	return &UserService{Repo: newTestRepo(t), Tokens: newTestTokens()}
}

func TestUserService_Register(t *testing.T) {
	svc := newUserService(t)

	res, err := svc.Register(context.Background(), "alice", "A@X.com", "pw123")
	require.NoError(t, err)
	require.NotNil(t, res.User)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "a@x.com", res.User.Email)
	assert.NotEqual(t, "pw123", res.User.PasswordHash)
	require.NotEmpty(t, res.Token)

	assert.True(t, svc.Tokens.Verify(res.Token, "alice"))
}

func TestUserService_Register_NormalizesUsername(t *testing.T) {
	svc := newUserService(t)

	res, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.True(t, svc.Tokens.Verify(res.Token, "alice"))

	// The stored row is lowercase, so the username unique index blocks
	// any casing of the same name even without the pre-check.
	user := res.User
	user.ID = 0
	user.Email = "b@x.com"
	user.Username = "alice"
	err = svc.Repo.CreateUser(context.Background(), user)
	require.Error(t, err)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register(context.Background(), "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "ALICE", "other@x.com", "pw123")
	require.ErrorIs(t, err, apperr.ErrAlreadyExists)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register(context.Background(), "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "bob", "A@X.COM", "pw123")
	require.ErrorIs(t, err, apperr.ErrAlreadyExists)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register(context.Background(), "", "a@x.com", "pw123")
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Register(context.Background(), "alice", "a@x.com", "")
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestUserService_Login(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register(context.Background(), "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	assert.True(t, svc.Tokens.Verify(res.Token, "alice"))

	// Email works as credential too, case-insensitively.
	res, err = svc.Login(context.Background(), "A@X.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
}

func TestUserService_Login_BadCredentials(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register(context.Background(), "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.Login(context.Background(), "nobody", "pw123")
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestUserService_GetProfile(t *testing.T) {
	svc := newUserService(t)

	res, err := svc.Register(context.Background(), "alice", "a@x.com", "pw123")
	require.NoError(t, err)

	user, err := svc.GetProfile(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetProfile(context.Background(), 999)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
