package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/terraincognita07/mindcheck/internal/models"
)

var ErrCatalogInvalid = errors.New("invalid catalog document")

type catalogDocument struct {
	Disorders json.RawMessage `json:"disorders"`
}

// ParseCatalog decodes a `{"disorders": [...]}` document. A document that is
// not an object or whose disorders field is not an array is rejected. Entries
// that cannot be decoded become zero-symptom records instead of failing the
// whole document.
func ParseCatalog(data []byte) ([]models.Disorder, error) {
	var document catalogDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(document.Disorders)), "[") {
		return nil, fmt.Errorf("%w: disorders is not an array", ErrCatalogInvalid)
	}

	entries := make([]json.RawMessage, 0)
	if err := json.Unmarshal(document.Disorders, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}

	disorders := make([]models.Disorder, 0, len(entries))
	for _, entry := range entries {
		disorders = append(disorders, decodeDisorderEntry(entry))
	}
	return disorders, nil
}

func decodeDisorderEntry(entry []byte) models.Disorder {
	var disorder models.Disorder
	if err := json.Unmarshal(entry, &disorder); err != nil {
		return models.Disorder{Symptoms: models.SymptomList{}}
	}
	if disorder.Symptoms == nil {
		disorder.Symptoms = models.SymptomList{}
	}
	return disorder
}

// DisorderRecords converts a parsed catalog into store rows, keeping catalog order.
func DisorderRecords(disorders []models.Disorder, importedAt time.Time) ([]models.DisorderRecord, error) {
	records := make([]models.DisorderRecord, 0, len(disorders))
	for index, disorder := range disorders {
		payload, err := json.Marshal(disorder)
		if err != nil {
			return nil, fmt.Errorf("encode disorder %d: %w", index, err)
		}
		records = append(records, models.DisorderRecord{
			Position:     index,
			Name:         disorder.DisplayName(),
			Slug:         SlugifyName(disorder.DisplayName()),
			SymptomCount: len(disorder.Symptoms),
			Payload:      string(payload),
			ImportedAt:   importedAt,
		})
	}
	return records, nil
}

// DisordersFromRecords decodes stored rows. Rows are expected in position order.
func DisordersFromRecords(records []models.DisorderRecord) []models.Disorder {
	disorders := make([]models.Disorder, 0, len(records))
	for _, record := range records {
		disorders = append(disorders, decodeDisorderEntry([]byte(record.Payload)))
	}
	return disorders
}
