package delivery

import (
	"errors"
	"log"
	"net/http"

	authdto "creatorboard-backend/internal/auth/dto"
	"creatorboard-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	development bool
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, development bool) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		development: development,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	tok, profile, err := h.authUsecase.Signup(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		case errors.Is(err, usecase.ErrDuplicateUser):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username or email already exists"})
		default:
			log.Printf("Signup error: %v", err)
			h.internalError(c, "Error creating account", err)
		}
		return
	}

	c.JSON(http.StatusCreated, authdto.AuthResponse{Success: true, Token: tok, User: profile})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	tok, profile, err := h.authUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid credentials"})
		default:
			log.Printf("Login error: %v", err)
			h.internalError(c, "Error logging in", err)
		}
		return
	}

	c.JSON(http.StatusOK, authdto.AuthResponse{Success: true, Token: tok, User: profile})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetString(ContextKeyUserID)

	profile, err := h.authUsecase.Profile(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			// Token verified but the account no longer resolves.
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid token"})
			return
		}
		log.Printf("Profile error: %v", err)
		h.internalError(c, "Error fetching profile", err)
		return
	}

	c.JSON(http.StatusOK, authdto.ProfileResponse{Success: true, User: profile})
}

func (h *AuthHandler) internalError(c *gin.Context, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if h.development {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
