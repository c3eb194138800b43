package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/domain/models"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// Auth resolves the caller identity from a bearer token when one is
// presented. Requests without credentials proceed as the anonymous subject;
// a token that is present but invalid is rejected so a caller never silently
// loses the identity they asked for.
func Auth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			c.Locals("subject", models.AnonymousSubject())
			return c.Next()
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		subject, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		c.Locals("subject", subject)
		return c.Next()
	}
}
