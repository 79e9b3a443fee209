package api

import (
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/models"
	"github.com/terraincognita07/mindcheck/internal/services"
	"github.com/terraincognita07/mindcheck/internal/vocabulary"
)

type disorderSummaryView struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	SymptomCount int    `json:"symptom_count"`
}

type threatAssessmentView struct {
	RiskFactors          []string `json:"risk_factors"`
	WhenToSeekHelp       []string `json:"when_to_seek_help"`
	EmergencyInformation []string `json:"emergency_information"`
	EmergencyFallback    bool     `json:"emergency_fallback"`
	LegacyText           string   `json:"legacy_text,omitempty"`
}

type disorderDetailView struct {
	Name             string               `json:"name"`
	Slug             string               `json:"slug"`
	Description      string               `json:"description,omitempty"`
	EarlySigns       json.RawMessage      `json:"early_signs"`
	ThreatAssessment threatAssessmentView `json:"threat_assessment"`
	Symptoms         []string             `json:"symptoms"`
	SymptomLabels    []string             `json:"symptom_labels"`
}

func (handler *Handler) ListDisorders(c *fiber.Ctx) error {
	catalog := handler.catalog.Snapshot()
	summaries := make([]disorderSummaryView, 0, len(catalog))
	for _, disorder := range catalog {
		summaries = append(summaries, disorderSummaryView{
			Name:         disorder.DisplayName(),
			Slug:         services.SlugifyName(disorder.DisplayName()),
			Description:  disorder.Description,
			SymptomCount: len(disorder.Symptoms),
		})
	}

	payload := fiber.Map{
		"count":     len(summaries),
		"source":    handler.catalog.Source(),
		"disorders": summaries,
	}
	if loadedAt := handler.catalog.LoadedAt(); !loadedAt.IsZero() {
		payload["loaded_at"] = loadedAt.UTC()
	}
	return c.JSON(payload)
}

func (handler *Handler) GetDisorder(c *fiber.Ctx) error {
	disorder, ok := handler.catalog.FindBySlug(strings.TrimSpace(c.Params("slug")))
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	view, err := buildDisorderDetailView(disorder)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to encode disorder")
	}
	return c.JSON(view)
}

func (handler *Handler) ShowDetails(c *fiber.Ctx) error {
	disorder, ok := handler.catalog.FindBySlug(strings.TrimSpace(c.Query("d")))
	if !ok {
		c.Status(fiber.StatusNotFound)
		return handler.render(c, "details", fiber.Map{
			"Title": translateMessage(currentMessages(c), "details.not_found_title"),
		})
	}

	detail := services.BuildDisorderDetail(disorder)
	return handler.render(c, "details", fiber.Map{
		"Title":  detail.Name,
		"Detail": &detail,
	})
}

func buildDisorderDetailView(disorder models.Disorder) (disorderDetailView, error) {
	detail := services.BuildDisorderDetail(disorder)
	earlySigns, err := json.Marshal(disorder.EarlySigns)
	if err != nil {
		return disorderDetailView{}, err
	}

	symptoms := make([]string, 0, len(disorder.Symptoms))
	labels := make([]string, 0, len(disorder.Symptoms))
	for _, code := range disorder.Symptoms {
		symptoms = append(symptoms, code)
		labels = append(labels, vocabulary.Label(code))
	}

	return disorderDetailView{
		Name:        detail.Name,
		Slug:        detail.Slug,
		Description: detail.Description,
		EarlySigns:  earlySigns,
		ThreatAssessment: threatAssessmentView{
			RiskFactors:          nonNilStrings(detail.RiskFactors),
			WhenToSeekHelp:       nonNilStrings(detail.WhenToSeekHelp),
			EmergencyInformation: nonNilStrings(detail.EmergencyInformation),
			EmergencyFallback:    detail.EmergencyFallback,
			LegacyText:           detail.LegacyThreatText,
		},
		Symptoms:      symptoms,
		SymptomLabels: labels,
	}, nil
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
