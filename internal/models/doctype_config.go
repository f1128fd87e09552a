package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/alumicraft/docmailer/internal/utils"
)

// DocumentTypeConfig holds the branded-email configuration for one document
// type. Rows are managed by the host application's settings UI; this service
// only reads them.
type DocumentTypeConfig struct {
	ID           string `gorm:"column:id;type:varchar(50);primaryKey"`
	DocumentType string `gorm:"column:document_type;type:varchar(255);uniqueIndex;not null"`
	Enabled      bool   `gorm:"column:enabled;default:false"`

	// Recipient resolution. RecipientField names the field on the document
	// that holds either an address or a reference to a related record.
	// RecipientDocumentType, when set, is the related record type to
	// dereference for the address.
	RecipientField        string `gorm:"column:recipient_field;type:varchar(255)"`
	RecipientDocumentType string `gorm:"column:recipient_document_type;type:varchar(255)"`

	SourceApplication string `gorm:"column:source_application;type:varchar(255)"`
	RequireSubmitted  bool   `gorm:"column:require_submitted;default:true"`

	// TemplateID references the provider-side branded template.
	// PrintFormat, when set, must belong to DocumentType; the settings UI
	// enforces that before the row reaches us.
	TemplateID  string `gorm:"column:template_id;type:varchar(255)"`
	PrintFormat string `gorm:"column:print_format;type:varchar(255)"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:current_timestamp"`
}

func (DocumentTypeConfig) TableName() string {
	return "document_type_configs"
}

func (c *DocumentTypeConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = utils.GenerateNanoIDWithPrefix("cfg", 16)
	}
	return nil
}
