package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stafflow/employee-management-api/internal/constants"
	apierrors "github.com/stafflow/employee-management-api/internal/errors"
	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/repository"
	"github.com/stafflow/employee-management-api/internal/services"
)

// RequireAuth verifies the bearer token on every request and attaches the
// authenticated user to the context. The token alone is not enough: the
// referenced user must still exist.
func RequireAuth(tokens *services.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apierrors.Unauthorized(c, "Missing or malformed authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, *user)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated user is not in the
// allowed role set.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user, exists := CurrentUser(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if _, ok := roleSet[user.Role]; !ok {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from context
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	val, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint64)
	return id, ok
}
