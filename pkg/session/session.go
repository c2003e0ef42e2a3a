// Package session is the client-side session cache: a local copy of the
// current token and public profile that the presentation layer consults to
// gate navigation. The server is never involved; logout is purely local.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	authdomain "creatorboard-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
)

// ProtectedRoutes is the fixed set of views that require a session.
var ProtectedRoutes = map[string]bool{
	"dashboard": true,
	"analytics": true,
}

// Entry is the persisted cache record: the token plus a denormalized copy of
// the user's public profile.
type Entry struct {
	Token string                    `json:"token"`
	User  *authdomain.PublicProfile `json:"user"`
}

// Cache stores the session entry in a JSON file. The clock is injectable so
// staleness can be tested deterministically.
type Cache struct {
	path string
	now  func() time.Time
}

func NewCache(path string) *Cache {
	return &Cache{path: path, now: time.Now}
}

// NewCacheWithClock is used by tests.
func NewCacheWithClock(path string, now func() time.Time) *Cache {
	return &Cache{path: path, now: now}
}

// Save persists the token and profile after a successful auth response.
func (c *Cache) Save(token string, user *authdomain.PublicProfile) error {
	data, err := json.MarshalIndent(Entry{Token: token, User: user}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Load returns the cached entry, or nil when no session is stored.
func (c *Cache) Load() (*Entry, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &entry, nil
}

// Authenticated reports whether both a token and a profile are cached. That
// presence is the sole signal; token expiry is deliberately not checked here,
// so a stale session only fails once it is presented to a protected endpoint.
func (c *Cache) Authenticated() bool {
	entry, err := c.Load()
	if err != nil {
		return false
	}
	return entry != nil && entry.Token != "" && entry.User != nil
}

// RequireAuth reports whether navigation to route may proceed. Routes outside
// the protected set are always allowed; protected routes require a cached
// session. A false return means the caller should redirect to the login view.
func (c *Cache) RequireAuth(route string) bool {
	if !ProtectedRoutes[route] {
		return true
	}
	return c.Authenticated()
}

// Logout clears the cached entry. No server-side call is made; any token
// already issued stays valid until it expires.
func (c *Cache) Logout() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// Stale reports whether the cached token's expiry has passed. Informational
// only: gating never consults it, matching the dashboard's behavior of
// showing a logged-in state until a protected request fails.
func (c *Cache) Stale() bool {
	entry, err := c.Load()
	if err != nil || entry == nil || entry.Token == "" {
		return false
	}

	// The expiry claim is readable without the signing secret.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(entry.Token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(c.now())
}
