package utils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"taskboard/domain/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
)

// JWTClaims mirrors what the external authorizer puts into the token: the
// subject identity plus a role flag. Nothing else is trusted from it.
type JWTClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ValidateToken verifies the token signature and expiry and returns the
// subject it vouches for.
func ValidateToken(tokenString, jwtSecret string) (models.Subject, error) {
	if tokenString == "" {
		return models.Subject{}, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Subject{}, ErrExpiredToken
		}
		return models.Subject{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return models.Subject{}, ErrInvalidToken
	}

	return models.Subject{
		ID:    claims.Subject,
		Admin: claims.Role == "admin",
	}, nil
}

func ExtractTokenFromHeader(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// SubjectFromContext returns the caller identity set by the auth middleware,
// falling back to the anonymous sentinel.
func SubjectFromContext(c *fiber.Ctx) models.Subject {
	if subject, ok := c.Locals("subject").(models.Subject); ok {
		return subject
	}
	return models.AnonymousSubject()
}
