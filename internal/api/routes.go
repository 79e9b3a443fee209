package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowIndex)
	app.Post("/check", handler.SubmitCheck)
	app.Get("/details", handler.ShowDetails)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/symptoms", handler.ListSymptoms)
	api.Post("/match", handler.MatchSymptoms)
	api.Post("/questionnaire", handler.ScoreQuestionnaire)
	api.Post("/check", handler.Check)

	disorders := api.Group("/disorders")
	disorders.Get("", handler.ListDisorders)
	disorders.Get("/:slug", handler.GetDisorder)

	admin := api.Group("/admin")
	admin.Post("/login", handler.AdminLogin)
	admin.Post("/catalog", handler.AdminRequired, handler.ImportCatalog)
	admin.Post("/catalog/reload", handler.AdminRequired, handler.ReloadCatalog)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
