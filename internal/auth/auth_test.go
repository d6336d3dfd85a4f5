package auth_test

import (
	"testing"

	"github.com/phantomloop/ttclub/internal/auth"
	"github.com/phantomloop/ttclub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	svc := auth.New(store.NewMock())
	require.NoError(t, svc.CreateAccount("alice", "alice@example.com", "secret", "player-1"))

	user, err := svc.Authenticate("alice", "secret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "player", user.Role)
	assert.Equal(t, "player-1", user.PlayerID)
	// The password never leaves the service.
	assert.Empty(t, user.Password)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := auth.New(store.NewMock())
	require.NoError(t, svc.CreateAccount("alice", "alice@example.com", "secret", "player-1"))

	user, err := svc.Authenticate("alice", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := auth.New(store.NewMock())

	user, err := svc.Authenticate("nobody", "secret")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateAccountReplacesExisting(t *testing.T) {
	mock := store.NewMock()
	svc := auth.New(mock)
	require.NoError(t, svc.CreateAccount("alice", "old@example.com", "old", "player-1"))
	require.NoError(t, svc.CreateAccount("alice", "new@example.com", "new", "player-1"))

	docs, err := mock.Query(store.Users, "username", "alice")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "new@example.com", docs[0]["email"])
}

func TestEnsureAdmin(t *testing.T) {
	mock := store.NewMock()
	svc := auth.New(mock)

	require.NoError(t, svc.EnsureAdmin("admin", "admin@example.com", "admin123"))

	user, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin", user.Role)

	// A second call does not overwrite a changed password.
	require.NoError(t, mock.Update(store.Users, "admin", store.Document{"password": "rotated"}))
	require.NoError(t, svc.EnsureAdmin("admin", "admin@example.com", "admin123"))

	user, err = svc.Authenticate("admin", "rotated")
	require.NoError(t, err)
	assert.NotNil(t, user)
}
