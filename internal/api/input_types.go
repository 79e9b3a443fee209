package api

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/models"
)

type matchInput struct {
	Symptoms []string `json:"symptoms"`
}

type questionnaireInput struct {
	Answers map[string]*int `json:"answers"`
}

type checkInput struct {
	Symptoms []string        `json:"symptoms"`
	Answers  map[string]*int `json:"answers"`
}

type adminLoginInput struct {
	Password string `json:"password" form:"password"`
}

// parseJSONBody decodes the request body with the app's JSON decoder. An empty
// body leaves target untouched.
func parseJSONBody(c *fiber.Ctx, target any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, target)
}

// answersInRange reports whether every supplied answer is a valid option value.
func answersInRange(answers map[string]*int) bool {
	for _, value := range answers {
		if value != nil && (*value < 0 || *value > models.MaxAnswerValue) {
			return false
		}
	}
	return true
}

// parseCheckForm reads the questionnaire radios and symptom checkboxes of the
// check form. Blank, non-numeric and out-of-range answers count as unanswered.
func parseCheckForm(c *fiber.Ctx) ([]string, models.Answers) {
	answers := make(models.Answers, models.QuestionCount)
	for _, item := range models.QuestionItems() {
		raw := strings.TrimSpace(c.FormValue(item))
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 || value > models.MaxAnswerValue {
			continue
		}
		answers[item] = &value
	}
	return formSymptoms(c), answers
}

func formSymptoms(c *fiber.Ctx) []string {
	symptoms := make([]string, 0)
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, value := range form.Value["symptoms"] {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				symptoms = append(symptoms, trimmed)
			}
		}
		return symptoms
	}
	for _, value := range c.Request().PostArgs().PeekMulti("symptoms") {
		if trimmed := strings.TrimSpace(string(value)); trimmed != "" {
			symptoms = append(symptoms, trimmed)
		}
	}
	return symptoms
}
