package api

import (
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type AppOptions struct {
	AccessLog bool
}

// NewApp builds the fiber application with middleware, routes and the
// not-found fallback installed.
func NewApp(handler *Handler, options AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "MindCheck",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	app.Use(recover.New())
	if options.AccessLog {
		app.Use(logger.New())
	}
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)

	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}
