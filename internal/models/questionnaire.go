package models

const (
	QuestionCount  = 9
	MaxAnswerValue = 3
	MaxTotal       = QuestionCount * MaxAnswerValue
	RiskItem       = "q9"
)

type Severity string

const (
	SeverityMinimal          Severity = "minimal"
	SeverityMild             Severity = "mild"
	SeverityModerate         Severity = "moderate"
	SeverityModeratelySevere Severity = "moderately severe"
	SeveritySevere           Severity = "severe"
)

// Answers maps question item names to the selected value. A nil or missing
// entry is an unanswered item.
type Answers map[string]*int

type QuestionnaireResult struct {
	Total    int
	Category Severity
	RiskFlag bool
}

func QuestionItems() []string {
	return []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8", "q9"}
}

// AnswersFromValues binds values to question items in order. Items beyond the
// supplied values stay unanswered.
func AnswersFromValues(values ...int) Answers {
	answers := make(Answers, QuestionCount)
	for index, item := range QuestionItems() {
		if index >= len(values) {
			break
		}
		value := values[index]
		answers[item] = &value
	}
	return answers
}
