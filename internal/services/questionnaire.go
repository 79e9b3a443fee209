package services

import (
	"fmt"

	"github.com/terraincognita07/mindcheck/internal/models"
)

// ValidationFailure reports the first unanswered questionnaire item.
type ValidationFailure struct {
	MissingItem string
}

func (failure *ValidationFailure) Error() string {
	return fmt.Sprintf("questionnaire item %s is unanswered", failure.MissingItem)
}

var severityBands = []struct {
	upper    int
	severity models.Severity
}{
	{upper: 4, severity: models.SeverityMinimal},
	{upper: 9, severity: models.SeverityMild},
	{upper: 14, severity: models.SeverityModerate},
	{upper: 19, severity: models.SeverityModeratelySevere},
}

// ScoreQuestionnaire sums the nine answers and maps the total onto a severity
// band. Values are summed as given; range checks belong to the input surface.
func ScoreQuestionnaire(answers models.Answers) (models.QuestionnaireResult, error) {
	items := models.QuestionItems()
	for _, item := range items {
		if answers[item] == nil {
			return models.QuestionnaireResult{}, &ValidationFailure{MissingItem: item}
		}
	}

	total := 0
	for _, item := range items {
		total += *answers[item]
	}

	return models.QuestionnaireResult{
		Total:    total,
		Category: CategorizeTotal(total),
		RiskFlag: *answers[models.RiskItem] > 0,
	}, nil
}

// CategorizeTotal maps a questionnaire total onto its severity band.
func CategorizeTotal(total int) models.Severity {
	for _, band := range severityBands {
		if total <= band.upper {
			return band.severity
		}
	}
	return models.SeveritySevere
}

// SeverityLevels lists the bands from least to most severe.
func SeverityLevels() []models.Severity {
	levels := make([]models.Severity, 0, len(severityBands)+1)
	for _, band := range severityBands {
		levels = append(levels, band.severity)
	}
	return append(levels, models.SeveritySevere)
}
