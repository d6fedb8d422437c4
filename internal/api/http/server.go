// Package http owns the Fiber application: global middleware, route
// registration, and lifecycle hooks.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/shushrut/shushrut_backend/config"
	"github.com/shushrut/shushrut_backend/internal/api/http/middleware"
	"github.com/shushrut/shushrut_backend/internal/api/http/router"
	"github.com/shushrut/shushrut_backend/pkg/observability"
)

// Module provides the HTTP server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

const defaultBodyLimitMB = 25

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Redis     *redis.Client `optional:"true"`
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	// Gallery uploads arrive as multipart bodies, so the limit is well above
	// Fiber's 4MB default.
	bodyLimitMB := p.Cfg.Server.BodyLimitMB
	if bodyLimitMB <= 0 {
		bodyLimitMB = defaultBodyLimitMB
	}
	app := fiber.New(fiber.Config{
		AppName:      "shushrut",
		BodyLimit:    bodyLimitMB * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	if p.OTel != nil && p.Cfg.Observability.Tracing.Enabled {
		app.Use(observability.FiberMiddleware(p.Cfg.Observability.ServiceName))
	}

	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if p.Cfg.Server.Environment == "production" {
		app.Use(helmet.New())
		if p.Cfg.Server.CORS.Enabled {
			app.Use(cors.New(corsConfig(p.Cfg.Server.CORS)))
		}
		if p.Redis != nil {
			app.Use(middleware.NewLimiterWithRedis(p.Redis))
		}
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:request_id}] ${method} ${url} ${status}\n",
	}))

	p.Router.Register(app)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

// errorHandler keeps the {error: message} envelope for errors that never
// reach a handler's own mapping: auth middleware rejections, recovered
// panics, unknown routes and body-limit overruns.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := err.Error()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

func corsConfig(c config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowOrigins:     c.AllowOrigins,
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAgeSeconds,
	}
	if len(c.AllowMethods) > 0 {
		out.AllowMethods = c.AllowMethods
	}
	if len(c.AllowHeaders) > 0 {
		out.AllowHeaders = c.AllowHeaders
	}
	if len(out.AllowOrigins) == 0 {
		out.AllowOrigins = []string{"*"}
	}
	// Wildcard origins cannot be combined with credentials.
	if out.AllowCredentials && strings.Join(out.AllowOrigins, "") == "*" {
		out.AllowCredentials = false
	}
	return out
}
