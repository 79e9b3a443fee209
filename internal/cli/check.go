package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/mindcheck/internal/i18n"
	"github.com/terraincognita07/mindcheck/internal/models"
	"github.com/terraincognita07/mindcheck/internal/services"
	"github.com/terraincognita07/mindcheck/internal/vocabulary"
)

type CheckOptions struct {
	CatalogPath string
	Symptoms    []string
	Answers     []int
	Language    string
}

// RunCheckCommand scores the questionnaire and matches symptoms against a
// catalog file, then prints a plain-text report.
func RunCheckCommand(options CheckOptions, out io.Writer) error {
	if len(options.Answers) > models.QuestionCount {
		return fmt.Errorf("expected at most %d answers, got %d", models.QuestionCount, len(options.Answers))
	}
	for index, value := range options.Answers {
		if value < 0 || value > models.MaxAnswerValue {
			return fmt.Errorf("answer %d must be between 0 and %d", index+1, models.MaxAnswerValue)
		}
	}

	manager, err := i18n.NewEmbeddedManager(options.Language)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}
	language := manager.DefaultLanguage()

	catalog := services.NewCatalogService(services.CatalogSourceFile, options.CatalogPath, nil)
	catalog.Load()

	result, scoreErr := services.ScoreQuestionnaire(models.AnswersFromValues(options.Answers...))
	var failure *services.ValidationFailure
	switch {
	case errors.As(scoreErr, &failure):
		fmt.Fprintf(out, "%s (%s)\n", manager.Translate(language, "error.answer_all"), failure.MissingItem)
	case scoreErr != nil:
		return scoreErr
	default:
		writeQuestionnaireReport(out, manager, language, result)
	}

	fmt.Fprintln(out)
	writeMatchReport(out, manager, language, options.Symptoms, services.MatchDisorders(options.Symptoms, catalog.Snapshot()))

	fmt.Fprintln(out)
	fmt.Fprintln(out, manager.Translate(language, "app.disclaimer"))
	return nil
}

func writeQuestionnaireReport(out io.Writer, manager *i18n.Manager, language string, result models.QuestionnaireResult) {
	category := manager.Translate(language, services.SeverityTranslationKey(result.Category))
	fmt.Fprintf(out, "%s - %s\n", manager.Translatef(language, "results.total_score", result.Total, models.MaxTotal), category)

	guidance := services.BuildGuidance(result)
	if guidance.RiskNoticeKey != "" {
		fmt.Fprintf(out, "%s %s\n", manager.Translate(language, "results.important"), manager.Translate(language, guidance.RiskNoticeKey))
	}
	for _, key := range guidance.ItemKeys {
		fmt.Fprintf(out, "  * %s\n", manager.Translate(language, key))
	}
}

func writeMatchReport(out io.Writer, manager *i18n.Manager, language string, selected []string, matches []models.MatchResult) {
	fmt.Fprintln(out, manager.Translate(language, "results.matches_title"))
	switch {
	case len(selected) == 0:
		fmt.Fprintln(out, manager.Translate(language, "results.no_symptoms"))
		return
	case len(matches) == 0:
		fmt.Fprintln(out, manager.Translate(language, "results.no_matches"))
		return
	}

	for _, match := range matches {
		labels := make([]string, 0, len(match.Matched))
		for _, code := range match.Matched {
			labels = append(labels, vocabulary.Label(code))
		}
		fmt.Fprintf(out, "  %s: %s [%s]\n",
			match.Disorder.DisplayName(),
			manager.Translatef(language, "results.match_score", match.Score, match.Total),
			strings.Join(labels, ", "),
		)
	}
}
