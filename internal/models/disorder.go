package models

import (
	"strings"

	json "github.com/goccy/go-json"
)

const UnknownDisorderName = "Unknown"

type Disorder struct {
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Symptoms         SymptomList      `json:"symptoms"`
	EarlySigns       EarlySigns       `json:"early_signs"`
	ThreatAssessment ThreatAssessment `json:"threat_assessment"`
}

func (disorder Disorder) DisplayName() string {
	if strings.TrimSpace(disorder.Name) == "" {
		return UnknownDisorderName
	}
	return disorder.Name
}

type disorderFields struct {
	Name             json.RawMessage  `json:"name"`
	Description      json.RawMessage  `json:"description"`
	Symptoms         SymptomList      `json:"symptoms"`
	EarlySigns       EarlySigns       `json:"early_signs"`
	ThreatAssessment ThreatAssessment `json:"threat_assessment"`
}

// UnmarshalJSON only fails when the entry is not an object. A badly typed
// name or description is dropped without touching the other fields.
func (disorder *Disorder) UnmarshalJSON(data []byte) error {
	var fields disorderFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*disorder = Disorder{
		Name:             decodeOptionalString(fields.Name),
		Description:      decodeOptionalString(fields.Description),
		Symptoms:         fields.Symptoms,
		EarlySigns:       fields.EarlySigns,
		ThreatAssessment: fields.ThreatAssessment,
	}
	if disorder.Symptoms == nil {
		disorder.Symptoms = SymptomList{}
	}
	return nil
}

func decodeOptionalString(data json.RawMessage) string {
	var text string
	if len(data) == 0 || json.Unmarshal(data, &text) != nil {
		return ""
	}
	return text
}

// SymptomList decodes to an empty list whenever the JSON value is not an array
// of strings.
type SymptomList []string

func (list *SymptomList) UnmarshalJSON(data []byte) error {
	codes := make([]string, 0)
	if err := json.Unmarshal(data, &codes); err != nil || codes == nil {
		*list = SymptomList{}
		return nil
	}
	*list = codes
	return nil
}

// EarlySigns holds either free text or a list of items. The source JSON is
// kept so that the value is re-encoded unmodified.
type EarlySigns struct {
	Text  string
	Items []string
	raw   []byte
}

func (signs *EarlySigns) UnmarshalJSON(data []byte) error {
	*signs = EarlySigns{raw: append([]byte(nil), data...)}

	items := make([]string, 0)
	if err := json.Unmarshal(data, &items); err == nil && items != nil {
		signs.Items = items
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		signs.Text = text
	}
	return nil
}

func (signs EarlySigns) MarshalJSON() ([]byte, error) {
	if len(signs.raw) > 0 {
		return signs.raw, nil
	}
	if signs.Items != nil {
		return json.Marshal(signs.Items)
	}
	if signs.Text != "" {
		return json.Marshal(signs.Text)
	}
	return []byte("null"), nil
}

func (signs EarlySigns) IsList() bool {
	return signs.Items != nil
}

func (signs EarlySigns) IsEmpty() bool {
	return len(signs.Items) == 0 && strings.TrimSpace(signs.Text) == ""
}

// ThreatAssessment is either the structured object or a legacy plain string.
type ThreatAssessment struct {
	RiskFactors          []string `json:"risk_factors,omitempty"`
	WhenToSeekHelp       []string `json:"when_to_seek_help,omitempty"`
	EmergencyInformation []string `json:"emergency_information,omitempty"`
	LegacyText           string   `json:"-"`
	Structured           bool     `json:"-"`
	raw                  []byte
}

type threatAssessmentObject struct {
	RiskFactors          json.RawMessage `json:"risk_factors"`
	WhenToSeekHelp       json.RawMessage `json:"when_to_seek_help"`
	EmergencyInformation json.RawMessage `json:"emergency_information"`
}

func (threat *ThreatAssessment) UnmarshalJSON(data []byte) error {
	*threat = ThreatAssessment{raw: append([]byte(nil), data...)}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var object threatAssessmentObject
		if err := json.Unmarshal(data, &object); err == nil {
			threat.Structured = true
			threat.RiskFactors = decodeStringItems(object.RiskFactors)
			threat.WhenToSeekHelp = decodeStringItems(object.WhenToSeekHelp)
			threat.EmergencyInformation = decodeStringItems(object.EmergencyInformation)
		}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		threat.LegacyText = text
	}
	return nil
}

func (threat ThreatAssessment) MarshalJSON() ([]byte, error) {
	if len(threat.raw) > 0 {
		return threat.raw, nil
	}
	if threat.Structured {
		type plain ThreatAssessment
		return json.Marshal(plain(threat))
	}
	if threat.LegacyText != "" {
		return json.Marshal(threat.LegacyText)
	}
	return []byte("null"), nil
}

func decodeStringItems(data json.RawMessage) []string {
	if len(data) == 0 {
		return nil
	}
	items := make([]string, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}
