package db

import "gorm.io/gorm"

type Repositories struct {
	Disorders *DisorderRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Disorders: NewDisorderRepository(database),
	}
}
