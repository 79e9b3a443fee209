package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/vocabulary"
)

type symptomOptionJSON struct {
	Value string `json:"value"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	messages := currentMessages(c)
	options := vocabulary.SelectableOptions()
	views := make([]symptomOptionJSON, 0, len(options))
	for _, option := range options {
		views = append(views, symptomOptionJSON{
			Value: option.Value,
			Code:  option.Code,
			Label: templateSymptomLabel(messages, option.Value, option.Label),
		})
	}
	return c.JSON(fiber.Map{"symptoms": views})
}
