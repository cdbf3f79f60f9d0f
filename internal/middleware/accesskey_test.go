package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clubwallet/clubwallet/internal/accesskey"
)

func setupGuardedApp(t *testing.T, roles ...string) (*fiber.App, string) {
	t.Helper()
	svc := accesskey.NewService(accesskey.NewMemoryRepository(), time.Minute)
	token, _, err := svc.Mint(context.Background(), accesskey.RoleOperator)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	app := fiber.New()
	app.Get("/guarded", AccessKey(svc, roles...), func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		return c.JSON(fiber.Map{"role": role})
	})
	return app, token
}

func TestAccessKeyAllowsValidKey(t *testing.T) {
	app, token := setupGuardedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/guarded", nil)
	req.Header.Set("X-Access-Key", token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAccessKeyRejectsMissingHeader(t *testing.T) {
	app, _ := setupGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAccessKeyRejectsBogusToken(t *testing.T) {
	app, _ := setupGuardedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/guarded", nil)
	req.Header.Set("X-Access-Key", "nope.nope")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAccessKeyEnforcesRole(t *testing.T) {
	app, token := setupGuardedApp(t, accesskey.RoleAdmin)

	req := httptest.NewRequest(fiber.MethodGet, "/guarded", nil)
	req.Header.Set("X-Access-Key", token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}
