package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestTimeoutSetsDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(Timeout(time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		deadline, ok := c.UserContext().Deadline()
		if !ok {
			t.Error("expected a context deadline")
		} else if until := time.Until(deadline); until > time.Second {
			t.Errorf("deadline too far out: %v", until)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil)); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
}

func TestTimeoutZeroIsNoOp(t *testing.T) {
	app := fiber.New()
	app.Use(Timeout(0))
	app.Get("/", func(c *fiber.Ctx) error {
		if _, ok := c.UserContext().Deadline(); ok {
			t.Error("zero duration must not set a deadline")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil)); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
}
