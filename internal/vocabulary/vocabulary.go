// Package vocabulary maps the raw symptom identifiers submitted by the symptom
// picker onto the canonical codes used to tag disorders in the catalog.
package vocabulary

import "strings"

// Option is one selectable symptom chip.
type Option struct {
	Value string
	Code  string
	Label string
}

var canonicalCodes = map[string]string{
	"low_mood":           "depressed_mood",
	"sadness":            "depressed_mood",
	"hopelessness":       "depressed_mood",
	"loss_interest":      "loss_of_interest",
	"anhedonia":          "loss_of_interest",
	"anxiety":            "excessive_worry",
	"worry":              "excessive_worry",
	"anxiety_or_worry":   "excessive_worry",
	"tired":              "fatigue",
	"low_energy":         "fatigue",
	"fatique":            "fatigue",
	"sleep_problems":     "sleep_disturbance",
	"insomnia":           "sleep_disturbance",
	"oversleeping":       "sleep_disturbance",
	"appetite":           "appetite_change",
	"weight_change":      "appetite_change",
	"poor_concentration": "difficulty_concentrating",
	"concentration":      "difficulty_concentrating",
	"restless":           "restlessness",
	"on_edge":            "restlessness",
	"irritable":          "irritability",
	"worthless":          "worthlessness",
	"guilt":              "excessive_guilt",
	"self_harm_thoughts": "suicidal_thoughts",
	"panic":              "panic_attacks",
	"racing_heart":       "palpitations",
	"elevated_mood":      "euphoria",
	"high_energy":        "increased_energy",
	"less_sleep_needed":  "decreased_need_for_sleep",
	"flashbacks":         "intrusive_memories",
	"bad_dreams":         "nightmares",
	"avoidance":          "avoidance_behavior",
	"jumpy":              "hypervigilance",
	"obsessions":         "intrusive_thoughts",
	"compulsions":        "compulsive_behavior",
	"social_fear":        "fear_of_social_situations",
	"hearing_voices":     "hallucinations",
	"false_beliefs":      "delusions",
	"withdrawal":         "social_withdrawal",
}

var selectableOptions = []Option{
	{Value: "low_mood", Label: "Low mood"},
	{Value: "loss_interest", Label: "Loss of interest"},
	{Value: "anxiety", Label: "Anxiety or worry"},
	{Value: "tired", Label: "Tiredness or low energy"},
	{Value: "sleep_problems", Label: "Sleep problems"},
	{Value: "appetite", Label: "Appetite changes"},
	{Value: "poor_concentration", Label: "Trouble concentrating"},
	{Value: "restless", Label: "Restlessness"},
	{Value: "irritable", Label: "Irritability"},
	{Value: "worthless", Label: "Feeling worthless"},
	{Value: "panic", Label: "Panic attacks"},
	{Value: "elevated_mood", Label: "Unusually elevated mood"},
	{Value: "flashbacks", Label: "Flashbacks"},
	{Value: "avoidance", Label: "Avoiding reminders or situations"},
	{Value: "obsessions", Label: "Unwanted repetitive thoughts"},
	{Value: "compulsions", Label: "Repetitive behaviors"},
	{Value: "social_fear", Label: "Fear of social situations"},
	{Value: "withdrawal", Label: "Withdrawing from others"},
}

// Canonicalize returns the canonical code for a raw symptom identifier.
// Identifiers without a mapping are returned unchanged so that the catalog can
// introduce new codes without touching this table.
func Canonicalize(code string) string {
	if canonical, ok := canonicalCodes[code]; ok {
		return canonical
	}
	return code
}

// CanonicalSet canonicalizes raw identifiers into a set. Duplicates collapse.
func CanonicalSet(raw []string) map[string]struct{} {
	set := make(map[string]struct{}, len(raw))
	for _, code := range raw {
		set[Canonicalize(code)] = struct{}{}
	}
	return set
}

// SelectableOptions lists the symptom chips offered by the picker, in display order.
func SelectableOptions() []Option {
	options := make([]Option, 0, len(selectableOptions))
	for _, option := range selectableOptions {
		option.Code = Canonicalize(option.Value)
		options = append(options, option)
	}
	return options
}

// Label renders a symptom code for display.
func Label(code string) string {
	return strings.ReplaceAll(code, "_", " ")
}
