package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelhub/internal/logger"
	jwtsvc "hotelhub/internal/pkg/jwt"
	"hotelhub/internal/pkg/response"
)

// JWTAuth validates the Bearer token and puts user_id and role into the
// gin context for downstream handlers.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(
			logger.ContextWithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// UserID extracts the authenticated user id set by JWTAuth.
func UserID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
