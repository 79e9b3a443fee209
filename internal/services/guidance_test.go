package services

import (
	"testing"

	"github.com/terraincognita07/mindcheck/internal/models"
)

func TestBuildGuidanceCoversEverySeverity(t *testing.T) {
	t.Parallel()

	for _, severity := range SeverityLevels() {
		guidance := BuildGuidance(models.QuestionnaireResult{Category: severity})
		if len(guidance.ItemKeys) == 0 {
			t.Fatalf("expected guidance items for %q", severity)
		}
		if guidance.RiskNoticeKey != "" {
			t.Fatalf("unexpected risk notice for %q without risk flag", severity)
		}
		if key := SeverityTranslationKey(severity); key == string(severity) {
			t.Fatalf("expected translation key for %q", severity)
		}
	}
}

func TestBuildGuidanceAddsRiskNotice(t *testing.T) {
	t.Parallel()

	guidance := BuildGuidance(models.QuestionnaireResult{Total: 1, Category: models.SeverityMinimal, RiskFlag: true})
	if guidance.RiskNoticeKey != riskNoticeKey {
		t.Fatalf("expected risk notice key, got %q", guidance.RiskNoticeKey)
	}

	guidance.ItemKeys[0] = "mutated"
	again := BuildGuidance(models.QuestionnaireResult{Category: models.SeverityMinimal})
	if again.ItemKeys[0] == "mutated" {
		t.Fatal("expected guidance keys to be copied per call")
	}
}
