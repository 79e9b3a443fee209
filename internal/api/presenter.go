package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/models"
	"github.com/terraincognita07/mindcheck/internal/services"
	"github.com/terraincognita07/mindcheck/internal/vocabulary"
)

const answerAllQuestionsMessage = "please answer all questions"

// CheckOutcome carries the independent results of one check submission.
// Exactly one of Questionnaire and Validation is set.
type CheckOutcome struct {
	Selected      []string
	Answers       models.Answers
	Matches       []models.MatchResult
	Questionnaire *models.QuestionnaireResult
	Validation    *services.ValidationFailure
}

// ResultPresenter renders a check outcome for one kind of client.
type ResultPresenter interface {
	PresentCheck(c *fiber.Ctx, outcome CheckOutcome) error
}

type presenterSet struct {
	json ResultPresenter
	html ResultPresenter
}

func (set presenterSet) forRequest(c *fiber.Ctx) ResultPresenter {
	if wantsJSON(c) {
		return set.json
	}
	return set.html
}

type matchView struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	Score       int      `json:"score"`
	Total       int      `json:"total"`
	Matched     []string `json:"matched"`
	Tags        []string `json:"tags"`
}

type questionnaireView struct {
	Total         int      `json:"total"`
	MaxTotal      int      `json:"max_total"`
	Category      string   `json:"category"`
	CategoryLabel string   `json:"category_label"`
	RiskFlag      bool     `json:"risk_flag"`
	Guidance      []string `json:"guidance"`
	RiskNotice    string   `json:"risk_notice,omitempty"`
}

type validationView struct {
	Error       string `json:"error"`
	MissingItem string `json:"missing_item"`
}

func buildMatchViews(matches []models.MatchResult) []matchView {
	views := make([]matchView, 0, len(matches))
	for _, match := range matches {
		name := match.Disorder.DisplayName()
		views = append(views, matchView{
			Name:        name,
			Slug:        services.SlugifyName(name),
			Description: match.Disorder.Description,
			Score:       match.Score,
			Total:       match.Total,
			Matched:     append([]string{}, match.Matched...),
			Tags:        matchTags(match.Matched),
		})
	}
	return views
}

// matchTags labels the matched codes once each, in first-seen order.
func matchTags(codes []string) []string {
	tags := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		tags = append(tags, vocabulary.Label(code))
	}
	return tags
}

func buildQuestionnaireView(messages map[string]string, result models.QuestionnaireResult) questionnaireView {
	guidance := services.BuildGuidance(result)
	view := questionnaireView{
		Total:         result.Total,
		MaxTotal:      models.MaxTotal,
		Category:      string(result.Category),
		CategoryLabel: severityLabel(messages, result.Category),
		RiskFlag:      result.RiskFlag,
		Guidance:      make([]string, 0, len(guidance.ItemKeys)),
	}
	for _, key := range guidance.ItemKeys {
		view.Guidance = append(view.Guidance, translateMessage(messages, key))
	}
	if guidance.RiskNoticeKey != "" {
		view.RiskNotice = translateMessage(messages, guidance.RiskNoticeKey)
	}
	return view
}

func newValidationView(failure *services.ValidationFailure) validationView {
	return validationView{Error: answerAllQuestionsMessage, MissingItem: failure.MissingItem}
}

type jsonPresenter struct{}

func (jsonPresenter) PresentCheck(c *fiber.Ctx, outcome CheckOutcome) error {
	payload := fiber.Map{
		"informational_only": true,
		"matches":            buildMatchViews(outcome.Matches),
		"questionnaire":      nil,
	}
	if outcome.Questionnaire != nil {
		payload["questionnaire"] = buildQuestionnaireView(currentMessages(c), *outcome.Questionnaire)
	}
	if outcome.Validation != nil {
		payload["questionnaire_error"] = newValidationView(outcome.Validation)
	}
	return c.JSON(payload)
}

type htmlPresenter struct {
	handler *Handler
}

func (presenter htmlPresenter) PresentCheck(c *fiber.Ctx, outcome CheckOutcome) error {
	messages := currentMessages(c)
	if outcome.Validation != nil {
		c.Status(fiber.StatusUnprocessableEntity)
		data := buildIndexPageData(outcome.Selected, outcome.Answers)
		data["FormError"] = translateMessage(messages, "error.answer_all")
		data["MissingItem"] = outcome.Validation.MissingItem
		return presenter.handler.render(c, "index", data)
	}

	data := fiber.Map{
		"Title":            translateMessage(messages, "results.title"),
		"Matches":          buildMatchViews(outcome.Matches),
		"SymptomsSelected": len(outcome.Selected) > 0,
	}
	if outcome.Questionnaire != nil {
		data["Questionnaire"] = buildQuestionnaireView(messages, *outcome.Questionnaire)
	}
	return presenter.handler.render(c, "results", data)
}
