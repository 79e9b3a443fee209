package models

import "time"

// DisorderRecord is the stored form of one catalog entry. Payload keeps the
// entry's JSON exactly as imported.
type DisorderRecord struct {
	ID           uint      `gorm:"primaryKey"`
	Position     int       `gorm:"not null;index"`
	Name         string    `gorm:"not null"`
	Slug         string    `gorm:"not null;index"`
	SymptomCount int       `gorm:"not null;default:0"`
	Payload      string    `gorm:"not null"`
	ImportedAt   time.Time `gorm:"not null"`
}

func (DisorderRecord) TableName() string {
	return "disorders"
}
