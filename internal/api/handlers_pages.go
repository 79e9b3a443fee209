package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/models"
	"github.com/terraincognita07/mindcheck/internal/vocabulary"
)

type questionView struct {
	Item     string
	LabelKey string
	Answered bool
	Selected int
}

type answerOptionView struct {
	Value    int
	LabelKey string
}

type symptomOptionView struct {
	vocabulary.Option
	Checked bool
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "disorders": handler.catalog.Count()})
}

func (handler *Handler) ShowIndex(c *fiber.Ctx) error {
	return handler.render(c, "index", buildIndexPageData(nil, nil))
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)
	return c.Redirect(sanitizeRedirectPath(c.Query("next"), "/"), fiber.StatusSeeOther)
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", fiber.Map{
		"Title": translateMessage(currentMessages(c), "error.not_found"),
	})
}

// buildIndexPageData prepares the check form, restoring earlier input when
// the form is shown again after a validation failure.
func buildIndexPageData(selected []string, answers models.Answers) fiber.Map {
	questions := make([]questionView, 0, models.QuestionCount)
	for _, item := range models.QuestionItems() {
		question := questionView{Item: item, LabelKey: "question." + item}
		if value := answers[item]; value != nil {
			question.Answered = true
			question.Selected = *value
		}
		questions = append(questions, question)
	}

	answerOptions := make([]answerOptionView, 0, models.MaxAnswerValue+1)
	for value := 0; value <= models.MaxAnswerValue; value++ {
		answerOptions = append(answerOptions, answerOptionView{Value: value, LabelKey: answerTranslationKey(value)})
	}

	checked := make(map[string]bool, len(selected))
	for _, value := range selected {
		checked[value] = true
	}
	options := vocabulary.SelectableOptions()
	symptomOptions := make([]symptomOptionView, 0, len(options))
	for _, option := range options {
		symptomOptions = append(symptomOptions, symptomOptionView{Option: option, Checked: checked[option.Value]})
	}

	return fiber.Map{
		"Questions":      questions,
		"AnswerOptions":  answerOptions,
		"SymptomOptions": symptomOptions,
	}
}

func answerTranslationKey(value int) string {
	return "answer." + strconv.Itoa(value)
}
