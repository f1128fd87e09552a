package repository

import (
	"gorm.io/gorm"

	"github.com/alumicraft/docmailer/interfaces"
	"github.com/alumicraft/docmailer/internal/models"
)

type Repositories struct {
	DocumentTypeConfigRepository interfaces.DocumentTypeConfigRepository
	SendRecordRepository         interfaces.SendRecordRepository
	DocumentStore                interfaces.DocumentStore
	RelatedPartyStore            interfaces.RelatedPartyStore
}

func InitRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DocumentTypeConfigRepository: NewDocumentTypeConfigRepository(db),
		SendRecordRepository:         NewSendRecordRepository(db),
		DocumentStore:                NewDocumentRepository(db),
		RelatedPartyStore:            NewRelatedPartyRepository(db),
	}
}

func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.DocumentTypeConfig{},
		&models.SendRecord{},
		&models.Document{},
		&models.RelatedParty{},
	)
}
