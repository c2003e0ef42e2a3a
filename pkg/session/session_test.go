package session

import (
	"path/filepath"
	"testing"
	"time"

	authdomain "creatorboard-backend/internal/auth/domain"
	"creatorboard-backend/pkg/token"

	"github.com/stretchr/testify/require"
)

func testProfile() *authdomain.PublicProfile {
	return &authdomain.PublicProfile{ID: "u1", Username: "alice", Email: "a@x.com"}
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	return NewCache(filepath.Join(t.TempDir(), "session.json"))
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	require.NoError(t, c.Save("some-token", testProfile()))

	entry, err := c.Load()
	require.NoError(t, err)
	require.Equal(t, "some-token", entry.Token)
	require.Equal(t, "alice", entry.User.Username)
}

func TestAuthenticated(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	require.False(t, c.Authenticated())

	require.NoError(t, c.Save("some-token", testProfile()))
	require.True(t, c.Authenticated())

	// Token without profile does not count as logged in.
	require.NoError(t, c.Save("some-token", nil))
	require.False(t, c.Authenticated())
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)

	// Public routes are always allowed.
	require.True(t, c.RequireAuth("home"))
	require.True(t, c.RequireAuth("auth"))

	// Protected routes need a session.
	require.False(t, c.RequireAuth("dashboard"))
	require.False(t, c.RequireAuth("analytics"))

	require.NoError(t, c.Save("some-token", testProfile()))
	require.True(t, c.RequireAuth("dashboard"))
}

func TestLogout(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	require.NoError(t, c.Save("some-token", testProfile()))
	require.True(t, c.Authenticated())

	require.NoError(t, c.Logout())
	require.False(t, c.Authenticated())

	// Idempotent.
	require.NoError(t, c.Logout())
}

func TestStale_DoesNotAffectAuthenticated(t *testing.T) {
	t.Parallel()

	issued := time.Now()
	tok, err := token.NewIssuerWithClock("secret", func() time.Time { return issued }).Issue("u1")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "session.json")

	fresh := NewCacheWithClock(path, func() time.Time { return issued.Add(time.Hour) })
	require.NoError(t, fresh.Save(tok, testProfile()))
	require.False(t, fresh.Stale())
	require.True(t, fresh.Authenticated())

	// Past the token's validity window the cache still reports a logged-in
	// state; only Stale flips.
	expired := NewCacheWithClock(path, func() time.Time { return issued.Add(token.TokenTTL + time.Hour) })
	require.True(t, expired.Stale())
	require.True(t, expired.Authenticated())
}
