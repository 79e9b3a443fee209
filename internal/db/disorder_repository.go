package db

import (
	"github.com/terraincognita07/mindcheck/internal/models"
	"gorm.io/gorm"
)

type DisorderRepository struct {
	database *gorm.DB
}

func NewDisorderRepository(database *gorm.DB) *DisorderRepository {
	return &DisorderRepository{database: database}
}

func (repo *DisorderRepository) ListOrdered() ([]models.DisorderRecord, error) {
	records := make([]models.DisorderRecord, 0)
	if err := repo.database.Order("position ASC").Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DisorderRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.DisorderRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *DisorderRepository) FindBySlug(slug string) (models.DisorderRecord, error) {
	record := models.DisorderRecord{}
	if err := repo.database.Where("slug = ?", slug).Order("position ASC").First(&record).Error; err != nil {
		return models.DisorderRecord{}, err
	}
	return record, nil
}

// ReplaceAll swaps the stored catalog in one transaction.
func (repo *DisorderRepository) ReplaceAll(records []models.DisorderRecord) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.DisorderRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(&records, 100).Error
	})
}
