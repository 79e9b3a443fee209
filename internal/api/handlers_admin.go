package api

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/services"
)

func (handler *Handler) AdminLogin(c *fiber.Ctx) error {
	if !handler.admin.Enabled() {
		return apiError(c, fiber.StatusForbidden, "admin access disabled")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.blocked(limiterKey, now) {
		c.Set(fiber.HeaderRetryAfter, "900")
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := adminLoginInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	token, expiresAt, err := handler.admin.Login(input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAdminPassword) {
			handler.loginLimiter.recordFailure(limiterKey, now)
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	handler.loginLimiter.reset(limiterKey)
	return c.JSON(fiber.Map{
		"token":      token,
		"token_type": "Bearer",
		"expires_at": expiresAt.UTC(),
	})
}

// ImportCatalog replaces the live catalog with the posted document.
func (handler *Handler) ImportCatalog(c *fiber.Ctx) error {
	count, err := handler.catalog.Import(c.Body())
	switch {
	case errors.Is(err, services.ErrCatalogInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid catalog document")
	case errors.Is(err, services.ErrCatalogStoreUnavailable):
		return apiError(c, fiber.StatusServiceUnavailable, "catalog store unavailable")
	case err != nil:
		log.Printf("catalog import failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to store catalog")
	}

	log.Printf("catalog imported via admin API: %d disorders", count)
	return c.JSON(fiber.Map{"status": "ok", "disorders": count})
}

func (handler *Handler) ReloadCatalog(c *fiber.Ctx) error {
	count, err := handler.catalog.Reload()
	if err != nil {
		log.Printf("catalog reload failed, keeping %d disorders: %v", count, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":     "catalog reload failed",
			"disorders": count,
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "disorders": count, "source": handler.catalog.Source()})
}
