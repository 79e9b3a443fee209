package services

import "github.com/terraincognita07/mindcheck/internal/models"

const riskNoticeKey = "guidance.risk_notice"

var guidanceKeysBySeverity = map[models.Severity][]string{
	models.SeverityMinimal: {
		"guidance.minimal.routines",
		"guidance.minimal.stress",
		"guidance.minimal.check_in",
	},
	models.SeverityMild: {
		"guidance.mild.self_guided",
		"guidance.mild.talk",
		"guidance.mild.professional",
	},
	models.SeverityModerate: {
		"guidance.moderate.clinician",
		"guidance.moderate.activities",
		"guidance.moderate.sleep",
	},
	models.SeverityModeratelySevere: {
		"guidance.moderately_severe.professional",
		"guidance.moderately_severe.support",
		"guidance.moderately_severe.urgent",
	},
	models.SeveritySevere: {
		"guidance.severe.prompt_help",
		"guidance.severe.trusted_person",
		"guidance.severe.emergency",
	},
}

// Guidance is the set of message keys shown with a questionnaire result.
type Guidance struct {
	RiskNoticeKey string
	ItemKeys      []string
}

func BuildGuidance(result models.QuestionnaireResult) Guidance {
	guidance := Guidance{}
	if result.RiskFlag {
		guidance.RiskNoticeKey = riskNoticeKey
	}
	keys := guidanceKeysBySeverity[result.Category]
	guidance.ItemKeys = make([]string, len(keys))
	copy(guidance.ItemKeys, keys)
	return guidance
}

func SeverityTranslationKey(severity models.Severity) string {
	switch severity {
	case models.SeverityMinimal:
		return "severity.minimal"
	case models.SeverityMild:
		return "severity.mild"
	case models.SeverityModerate:
		return "severity.moderate"
	case models.SeverityModeratelySevere:
		return "severity.moderately_severe"
	case models.SeveritySevere:
		return "severity.severe"
	default:
		return string(severity)
	}
}
