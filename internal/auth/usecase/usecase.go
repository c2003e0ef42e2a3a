package usecase

import (
	"errors"

	authdomain "creatorboard-backend/internal/auth/domain"
	authdto "creatorboard-backend/internal/auth/dto"
)

var (
	// ErrValidation covers missing or whitespace-only request fields.
	ErrValidation = errors.New("all fields are required")

	// ErrDuplicateUser is intentionally generic: it must not reveal whether
	// the username or the email collided.
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned both for an unknown email and for a
	// wrong password, so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound means a verified token referenced a user that no
	// longer exists in the store.
	ErrUserNotFound = errors.New("user not found")
)

// AuthUsecase orchestrates signup, login, and profile resolution. Handlers
// are stateless; every request is authenticated independently via the token.
type AuthUsecase interface {
	// Signup creates a user and issues a session token.
	Signup(req *authdto.SignupRequest) (string, *authdomain.PublicProfile, error)

	// Login verifies credentials and issues a session token.
	Login(req *authdto.LoginRequest) (string, *authdomain.PublicProfile, error)

	// VerifyToken resolves a bearer token to a user identifier.
	VerifyToken(tokenString string) (string, error)

	// Profile returns the public profile for a resolved user identifier.
	Profile(userID string) (*authdomain.PublicProfile, error)
}
