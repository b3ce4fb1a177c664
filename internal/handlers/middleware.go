package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobseeker-backend/internal/auth"
	"jobseeker-backend/internal/models"
	"jobseeker-backend/internal/services"
)

// userContextKey is where RequireAuth stores the resolved user.
const userContextKey = "currentUser"

// RequireAuth validates the bearer token and resolves its subject to a user
// before any domain logic runs. A valid token whose subject no longer
// exists is a 404, not a 401.
func RequireAuth(tokens *auth.TokenManager, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication credentials"})
			return
		}

		email, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		user, err := users.FindByEmail(email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser fetches the user placed in the context by RequireAuth.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(userContextKey).(*models.User)
}
