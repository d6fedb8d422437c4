package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/shushrut/shushrut_backend/pkg/reqctx"
)

func TestRequestIDReachesHandlerContext(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	var seen string
	app.Get("/x", func(c fiber.Ctx) error {
		seen = reqctx.RequestIDFromContext(c.Context())
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(HeaderRequestID, "req-abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if seen != "req-abc" {
		t.Errorf("request id in handler context = %q, want req-abc", seen)
	}
	if got := resp.Header.Get(HeaderRequestID); got != "req-abc" {
		t.Errorf("response header = %q, want req-abc", got)
	}
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	var seen string
	app.Get("/x", func(c fiber.Ctx) error {
		seen = reqctx.RequestIDFromContext(c.Context())
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if seen == "" {
		t.Error("expected a generated request id in the handler context")
	}
	if resp.Header.Get(HeaderRequestID) != seen {
		t.Errorf("response header %q does not match context id %q", resp.Header.Get(HeaderRequestID), seen)
	}
}
