package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/models"
	"github.com/terraincognita07/mindcheck/internal/services"
)

func (handler *Handler) MatchSymptoms(c *fiber.Ctx) error {
	input := matchInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	matches := services.MatchDisorders(input.Symptoms, handler.catalog.Snapshot())
	return c.JSON(fiber.Map{
		"informational_only": true,
		"count":              len(matches),
		"matches":            buildMatchViews(matches),
	})
}

func (handler *Handler) ScoreQuestionnaire(c *fiber.Ctx) error {
	input := questionnaireInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !answersInRange(input.Answers) {
		return apiError(c, fiber.StatusBadRequest, "answers must be between 0 and 3")
	}

	result, err := services.ScoreQuestionnaire(models.Answers(input.Answers))
	if err != nil {
		var failure *services.ValidationFailure
		if errors.As(err, &failure) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(newValidationView(failure))
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to score questionnaire")
	}

	view := buildQuestionnaireView(currentMessages(c), result)
	return c.JSON(fiber.Map{
		"informational_only": true,
		"total":              view.Total,
		"max_total":          view.MaxTotal,
		"category":           view.Category,
		"category_label":     view.CategoryLabel,
		"risk_flag":          view.RiskFlag,
		"guidance":           view.Guidance,
		"risk_notice":        view.RiskNotice,
	})
}

// Check runs both pipelines on one JSON request.
func (handler *Handler) Check(c *fiber.Ctx) error {
	input := checkInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !answersInRange(input.Answers) {
		return apiError(c, fiber.StatusBadRequest, "answers must be between 0 and 3")
	}

	outcome := handler.runCheck(input.Symptoms, models.Answers(input.Answers))
	return handler.presenters.json.PresentCheck(c, outcome)
}

// SubmitCheck handles the check form.
func (handler *Handler) SubmitCheck(c *fiber.Ctx) error {
	symptoms, answers := parseCheckForm(c)
	outcome := handler.runCheck(symptoms, answers)
	return handler.presenters.forRequest(c).PresentCheck(c, outcome)
}

func (handler *Handler) runCheck(symptoms []string, answers models.Answers) CheckOutcome {
	outcome := CheckOutcome{
		Selected: symptoms,
		Answers:  answers,
		Matches:  services.MatchDisorders(symptoms, handler.catalog.Snapshot()),
	}

	result, err := services.ScoreQuestionnaire(answers)
	var failure *services.ValidationFailure
	switch {
	case errors.As(err, &failure):
		outcome.Validation = failure
	case err == nil:
		outcome.Questionnaire = &result
	}
	return outcome
}
