// Package httpapi exposes the engine's read operations over HTTP.
package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// Register wires all HTTP routes onto the app.
func Register(app *fiber.App, h *Handler) {
	app.Get("/health", h.Health)
	app.Get("/ready", h.Ready)

	api := app.Group("/api")
	api.Get("/catalog", h.Catalog)

	// facets must precede the :slug route.
	api.Get("/jobs", h.ListJobs)
	api.Get("/jobs/facets", h.Facets)
	api.Get("/jobs/:slug", h.GetJob)
	api.Get("/feed", h.Feed)

	api.Get("/skills/counts", h.SkillCounts)
	api.Get("/skills/:slug", h.SkillJobs)
	api.Get("/skill-types/:slug", h.SkillType)
}

// New builds the app with request logging and every route registered.
func New(engine Engine, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger(log))
	Register(app, NewHandler(engine, log))
	return app
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return err
	}
}

// Serve listens on addr until ctx is done, then shuts the app down,
// waiting for in-flight requests.
func Serve(ctx context.Context, app *fiber.App, addr string) error {
	errc := make(chan error, 1)
	go func() { errc <- app.Listen(addr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errc
}
