package repository

import authdomain "creatorboard-backend/internal/auth/domain"

// UserRepository defines the credential store contract. The underlying store
// must enforce username and email uniqueness atomically; Create surfaces a
// violation as ErrDuplicate regardless of which field collided.
type UserRepository interface {
	// Create persists a new user, assigning its ID.
	Create(user *authdomain.User) error

	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(email string) (*authdomain.User, error)

	// FindByUsernameOrEmail returns (nil, nil) when no user matches either field.
	FindByUsernameOrEmail(username, email string) (*authdomain.User, error)

	// FindByID returns (nil, nil) when no user matches.
	FindByID(id string) (*authdomain.User, error)
}
