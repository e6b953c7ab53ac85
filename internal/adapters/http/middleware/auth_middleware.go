package middleware

import (
	"strings"

	"scholarhub/internal/adapters/persistence/models"
	"scholarhub/internal/config"
	"scholarhub/internal/pkg/jwt"
	"scholarhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminGuard protects admin routes with a pluggable policy. The
// original portal shipped with admin routes unauthenticated, so the
// guard is a pass-through unless ADMIN_GUARD=enforce is configured, in
// which case callers need a bearer token with the admin role.
func AdminGuard(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Admin.Enforce {
			return c.Next()
		}

		accessToken := ""
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		if claims.Role != models.RoleAdmin {
			return response.Forbidden(c, "Admin role required")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
