package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/alumicraft/docmailer/internal/enum"
	"github.com/alumicraft/docmailer/internal/utils"
)

// SendRecord is the durable log entry for one dispatch attempt. Records are
// append-only: the orchestrator writes one per resolved attempt, and the only
// later mutation is the provider webhook updating DeliveryStatus.
type SendRecord struct {
	ID           string `gorm:"column:id;type:varchar(50);primaryKey"`
	DocumentType string `gorm:"column:document_type;type:varchar(255);index:idx_send_records_document;not null"`
	DocumentID   string `gorm:"column:document_id;type:varchar(255);index:idx_send_records_document;not null"`

	Medium    enum.SendMedium    `gorm:"column:medium;type:varchar(50);not null"`
	Direction enum.SendDirection `gorm:"column:direction;type:varchar(50);not null"`
	Status    enum.SendStatus    `gorm:"column:status;type:varchar(50);index;not null"`

	Recipient    string         `gorm:"column:recipient;type:varchar(255)"`
	CcRecipients pq.StringArray `gorm:"column:cc_recipients;type:text[]"`

	// ProviderMessageID correlates delivery webhooks back to this record.
	ProviderMessageID string              `gorm:"column:provider_message_id;type:varchar(255);index"`
	DeliveryStatus    enum.DeliveryStatus `gorm:"column:delivery_status;type:varchar(50)"`

	ErrorDetail string `gorm:"column:error_detail;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp"`
}

func (SendRecord) TableName() string {
	return "send_records"
}

func (r *SendRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = utils.GenerateNanoIDWithPrefix("send", 24)
	}
	if r.Medium == "" {
		r.Medium = enum.SendMediumEmail
	}
	if r.Direction == "" {
		r.Direction = enum.SendDirectionSent
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = utils.Now()
	}
	return nil
}
