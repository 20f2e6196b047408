package middleware

import (
	"strings"

	"github.com/faturango/fatura-api/internal/presentation/http/dto/response"
	"github.com/faturango/fatura-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the review dashboard endpoints. There are no
// end-user accounts; the only protected principal is the configured admin.
func AdminAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAdminToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("admin", claims.Admin)
		c.Next()
	}
}
