package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/lsaserver/internal/auth"
)

func newProtectedApp(tokens *auth.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/private", Protect(tokens), func(c *fiber.Ctx) error {
		userID, _ := c.Locals(LocalUserID).(string)
		return c.SendString(userID)
	})
	return app
}

func TestProtect_MissingHeader(t *testing.T) {
	app := newProtectedApp(auth.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest("GET", "/private", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestProtect_InvalidToken(t *testing.T) {
	app := newProtectedApp(auth.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer not.a.valid.token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestProtect_ExpiredToken(t *testing.T) {
	expired := auth.NewTokenService("secret", -time.Minute)
	tok, err := expired.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	app := newProtectedApp(auth.NewTokenService("secret", time.Hour))
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", resp.StatusCode)
	}
}

func TestProtect_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	tok, err := tokens.Issue("64f0c2a9e13b4a7d9c8b4567")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	app := newProtectedApp(tokens)
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	if got := string(body[:n]); got != "64f0c2a9e13b4a7d9c8b4567" {
		t.Errorf("expected user id in context, got %q", got)
	}
}
