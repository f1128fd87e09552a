package models

import (
	"time"

	"github.com/alumicraft/docmailer/internal/enum"
)

// Document mirrors the host application's business documents (quotations,
// sales orders, invoices and the like). The host owns the table; we read
// lifecycle status and individual field values from it.
type Document struct {
	DocumentType string              `gorm:"column:document_type;type:varchar(255);primaryKey"`
	DocumentID   string              `gorm:"column:document_id;type:varchar(255);primaryKey"`
	Status       enum.DocumentStatus `gorm:"column:status;type:varchar(50);index;not null"`
	Fields       JSONMap             `gorm:"column:fields;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp"`
}

func (Document) TableName() string {
	return "documents"
}

// FieldString returns the named document field as a string, empty when the
// field is absent or not textual.
func (d *Document) FieldString(name string) string {
	if d.Fields == nil {
		return ""
	}
	if v, ok := d.Fields[name].(string); ok {
		return v
	}
	return ""
}

// RelatedParty mirrors the host application's party records (customers,
// suppliers) that documents reference for recipient resolution.
type RelatedParty struct {
	RecordType string `gorm:"column:record_type;type:varchar(255);primaryKey"`
	RecordID   string `gorm:"column:record_id;type:varchar(255);primaryKey"`
	Email      string `gorm:"column:email;type:varchar(255)"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp"`
}

func (RelatedParty) TableName() string {
	return "related_parties"
}
