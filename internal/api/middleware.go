package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/services"
)

const (
	languageCookieName  = "mindcheck_lang"
	contextLanguageKey  = "current_language"
	contextMessagesKey  = "current_messages"
	contextAdminKey     = "admin_claims"
	bearerAuthPrefix    = "bearer "
	languageCookieYears = 1
)

func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	cookieLanguage := c.Cookies(languageCookieName)
	language := handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	if cookieLanguage != "" {
		language = handler.i18n.NormalizeLanguage(cookieLanguage)
	}

	if cookieLanguage != language && !isAPIRequest(c) {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	return c.Next()
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(languageCookieYears, 0, 0),
	})
}

// AdminRequired accepts requests carrying a valid admin bearer token.
func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	if !handler.admin.Enabled() {
		return apiError(c, fiber.StatusForbidden, "admin access disabled")
	}

	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) <= len(bearerAuthPrefix) || !strings.EqualFold(header[:len(bearerAuthPrefix)], bearerAuthPrefix) {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	claims, err := handler.admin.VerifyToken(header[len(bearerAuthPrefix):])
	if err != nil {
		if errors.Is(err, services.ErrAdminDisabled) {
			return apiError(c, fiber.StatusForbidden, "admin access disabled")
		}
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextAdminKey, claims)
	return c.Next()
}
