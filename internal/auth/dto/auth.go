package dto

import authdomain "creatorboard-backend/internal/auth/domain"

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool                      `json:"success"`
	Token   string                    `json:"token"`
	User    *authdomain.PublicProfile `json:"user"`
}

type ProfileResponse struct {
	Success bool                      `json:"success"`
	User    *authdomain.PublicProfile `json:"user"`
}
