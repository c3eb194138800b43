package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/models"
	"taskboard/pkg/utils"
)

const testSecret = "test-secret"

func newAuthApp(captured *models.Subject) *fiber.App {
	app := fiber.New()
	app.Use(Auth(testSecret))
	app.Get("/", func(c *fiber.Ctx) error {
		*captured = utils.SubjectFromContext(c)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func signTestToken(t *testing.T, subject, role string) string {
	t.Helper()
	claims := utils.JWTClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthWithoutHeaderIsAnonymous(t *testing.T) {
	var subject models.Subject
	app := newAuthApp(&subject)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.AnonymousSubject(), subject)
}

func TestAuthWithValidToken(t *testing.T) {
	var subject models.Subject
	app := newAuthApp(&subject)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "user-1", "admin"))

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.Subject{ID: "user-1", Admin: true}, subject)
}

func TestAuthRejectsBadCredentials(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"malformed header", "NotBearer whatever"},
		{"garbage token", "Bearer this.is.not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subject models.Subject
			app := newAuthApp(&subject)

			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			req.Header.Set("Authorization", tt.header)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
