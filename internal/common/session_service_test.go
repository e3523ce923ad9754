package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_Lifecycle(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	id, err := store.CreateSession(ctx, &SessionData{UserID: "u1", AccessToken: "a", RefreshToken: "r"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.GetSession(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "u1", got.UserID)
	require.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, time.Minute)

	got.AccessToken = "b"
	require.NoError(t, store.SaveSession(ctx, got))
	again, err := store.GetSession(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "b", again.AccessToken)
	require.Equal(t, got.ExpiresAt, again.ExpiresAt)

	require.NoError(t, store.DeleteSession(ctx, id))
	_, err = store.GetSession(ctx, id)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_ReturnsCopies(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	id, err := store.CreateSession(ctx, &SessionData{UserID: "u1", AccessToken: "a"})
	require.NoError(t, err)

	got, err := store.GetSession(ctx, id)
	require.NoError(t, err)
	got.AccessToken = "mutated"

	again, err := store.GetSession(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "a", again.AccessToken)
}

func TestMemorySessionStore_Unknown(t *testing.T) {
	_, err := NewMemorySessionStore(time.Hour).GetSession(context.Background(), "nope")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionData_AccessTokenExpired(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	require.False(t, (&SessionData{}).AccessTokenExpired(now))
	require.False(t, (&SessionData{TokenExpiry: now.Add(time.Second)}).AccessTokenExpired(now))
	require.True(t, (&SessionData{TokenExpiry: now}).AccessTokenExpired(now))
}
