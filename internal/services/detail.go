package services

import (
	"strings"

	"github.com/terraincognita07/mindcheck/internal/models"
	"github.com/terraincognita07/mindcheck/internal/vocabulary"
)

// DefaultEmergencyResources is shown when a structured threat assessment has no
// emergency information of its own.
func DefaultEmergencyResources() []string {
	return []string{
		"United States: call or text 988 for the Suicide & Crisis Lifeline, or chat at https://988lifeline.org/",
		"Text HOME to 741741 to reach a Crisis Text Line counselor",
		"Outside the U.S.: find international helplines at https://www.opencounseling.com/suicide-hotlines",
		"If in immediate danger, call your local emergency number",
	}
}

type DisorderDetail struct {
	Name                 string
	Slug                 string
	Description          string
	EarlySignsText       string
	EarlySignsItems      []string
	RiskFactors          []string
	WhenToSeekHelp       []string
	EmergencyInformation []string
	EmergencyFallback    bool
	LegacyThreatText     string
	SymptomLabels        []string
}

func BuildDisorderDetail(disorder models.Disorder) DisorderDetail {
	detail := DisorderDetail{
		Name:          disorder.DisplayName(),
		Slug:          SlugifyName(disorder.DisplayName()),
		Description:   disorder.Description,
		SymptomLabels: make([]string, 0, len(disorder.Symptoms)),
	}

	if disorder.EarlySigns.IsList() {
		detail.EarlySignsItems = append([]string{}, disorder.EarlySigns.Items...)
	} else {
		detail.EarlySignsText = disorder.EarlySigns.Text
	}

	threat := disorder.ThreatAssessment
	switch {
	case threat.Structured:
		detail.RiskFactors = append([]string{}, threat.RiskFactors...)
		detail.WhenToSeekHelp = append([]string{}, threat.WhenToSeekHelp...)
		if len(threat.EmergencyInformation) > 0 {
			detail.EmergencyInformation = append([]string{}, threat.EmergencyInformation...)
		} else {
			detail.EmergencyInformation = DefaultEmergencyResources()
			detail.EmergencyFallback = true
		}
	case strings.TrimSpace(threat.LegacyText) != "":
		detail.LegacyThreatText = threat.LegacyText
	}

	for _, code := range disorder.Symptoms {
		detail.SymptomLabels = append(detail.SymptomLabels, vocabulary.Label(code))
	}
	return detail
}
