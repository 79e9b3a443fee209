package services

import (
	"sort"

	"github.com/terraincognita07/mindcheck/internal/models"
	"github.com/terraincognita07/mindcheck/internal/vocabulary"
)

// MatchDisorders scores every catalog entry against the selected symptoms and
// returns the entries with at least one matching symptom, best first. Entries
// with equal scores keep their catalog order.
func MatchDisorders(selected []string, catalog []models.Disorder) []models.MatchResult {
	results := make([]models.MatchResult, 0)
	if len(selected) == 0 || len(catalog) == 0 {
		return results
	}

	selectedSet := vocabulary.CanonicalSet(selected)
	for index := range catalog {
		disorder := &catalog[index]

		matched := make([]string, 0)
		for _, code := range disorder.Symptoms {
			if _, ok := selectedSet[code]; ok {
				matched = append(matched, code)
			}
		}
		if len(matched) == 0 {
			continue
		}

		results = append(results, models.MatchResult{
			Disorder: disorder,
			Score:    len(matched),
			Total:    len(disorder.Symptoms),
			Matched:  matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
