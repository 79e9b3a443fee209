package api

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// wantsJSON reports whether a response should be JSON rather than a page.
func wantsJSON(c *fiber.Ctx) bool {
	return isAPIRequest(c) || acceptsJSON(c)
}

func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return fallback
	}
	if strings.HasPrefix(candidate, "//") || !strings.HasPrefix(candidate, "/") {
		return fallback
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.IsAbs() {
		return fallback
	}
	return candidate
}
