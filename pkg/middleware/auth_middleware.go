package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const currentUserKey = "current_user"

// JWTAuthMiddleware validates the bearer token and loads the user row behind
// it into the request context.
func JWTAuthMiddleware(tokenMaker *utils.TokenMaker, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := tokenMaker.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), email)
		if err != nil || user == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by JWTAuthMiddleware; the second
// return is false on unprotected routes.
func CurrentUser(c *gin.Context) (*db_models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*db_models.User)
	return user, ok
}
