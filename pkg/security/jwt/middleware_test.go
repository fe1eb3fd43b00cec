package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/usermanagement/pkg/user"
)

func protectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	app := protectedApp(testSecret)
	token, err := NewGenerator(testSecret, time.Hour).Generate(context.Background(), user.User{ID: 7})
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"bearer prefix", "Bearer " + token, http.StatusOK},
		{"bare token", token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	app := protectedApp(testSecret)
	token, err := NewGenerator(testSecret, -time.Minute).Generate(context.Background(), user.User{ID: 7})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RejectsWrongSecret(t *testing.T) {
	app := protectedApp("another-secret")
	token, err := NewGenerator(testSecret, time.Hour).Generate(context.Background(), user.User{ID: 7})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
