package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/models"
	"github.com/terraincognita07/mindcheck/internal/services"
)

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}

func symptomTranslationKey(value string) string {
	return "symptom." + strings.TrimSpace(value)
}

// severityLabel localizes a band name; unknown bands render as-is.
func severityLabel(messages map[string]string, severity models.Severity) string {
	key := services.SeverityTranslationKey(severity)
	if label := translateMessage(messages, key); label != key {
		return label
	}
	return string(severity)
}

func currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(language)
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, ok := c.Locals(contextMessagesKey).(map[string]string)
	if !ok || messages == nil {
		return map[string]string{}
	}
	return messages
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	messages := currentMessages(c)
	if len(messages) == 0 {
		messages = handler.i18n.Messages(handler.i18n.DefaultLanguage())
	}
	if _, ok := data["Messages"]; !ok {
		data["Messages"] = messages
	}

	if _, ok := data["Lang"]; !ok {
		language := currentLanguage(c)
		if language == "" {
			language = handler.i18n.DefaultLanguage()
		}
		data["Lang"] = language
	}

	if _, ok := data["Title"]; !ok {
		data["Title"] = translateMessage(messages, "app.title")
	}

	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = currentPathWithQuery(c)
	}
	return data
}

func currentPathWithQuery(c *fiber.Ctx) string {
	if c.Method() != fiber.MethodGet {
		return "/"
	}
	path := string(c.Request().URI().RequestURI())
	if path == "" {
		return c.Path()
	}
	return path
}
