package delivery

import (
	"net/http"
	"strings"

	"creatorboard-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserID is where the guard stores the resolved user identifier for
// downstream handlers.
const ContextKeyUserID = "userID"

// AuthMiddleware guards protected routes. A missing credential is 401; a
// present but unverifiable credential (bad signature, expired) is 403. The
// distinction lives in the status only, not in the message content.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access denied"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access denied"})
			c.Abort()
			return
		}

		userID, err := authUsecase.VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}
