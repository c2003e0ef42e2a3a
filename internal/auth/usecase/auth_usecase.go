package usecase

import (
	"errors"
	"fmt"
	"strings"

	authdomain "creatorboard-backend/internal/auth/domain"
	authdto "creatorboard-backend/internal/auth/dto"
	"creatorboard-backend/internal/auth/repository"
	"creatorboard-backend/pkg/token"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	issuer   *token.Issuer
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, issuer *token.Issuer) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (string, *authdomain.PublicProfile, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	if username == "" || email == "" || password == "" {
		return "", nil, ErrValidation
	}

	// Pre-check is an optimization only; the store's unique indexes decide
	// the winner when two signups race past it.
	existing, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return "", nil, fmt.Errorf("looking up existing user: %w", err)
	}
	if existing != nil {
		return "", nil, ErrDuplicateUser
	}

	hashedPassword, err := repository.HashPassword(password)
	if err != nil {
		return "", nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &authdomain.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", nil, ErrDuplicateUser
		}
		return "", nil, fmt.Errorf("creating user: %w", err)
	}

	return u.issueFor(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (string, *authdomain.PublicProfile, error) {
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	if email == "" || password == "" {
		return "", nil, ErrValidation
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("looking up user: %w", err)
	}

	// Unknown email and wrong password fall through to the same error.
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	return u.issueFor(user)
}

func (u *authUsecase) VerifyToken(tokenString string) (string, error) {
	return u.issuer.Verify(tokenString)
}

func (u *authUsecase) Profile(userID string) (*authdomain.PublicProfile, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}

func (u *authUsecase) issueFor(user *authdomain.User) (string, *authdomain.PublicProfile, error) {
	tok, err := u.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}
	return tok, user.Public(), nil
}
