package interfaces

import (
	"context"

	"github.com/alumicraft/docmailer/internal/enum"
	"github.com/alumicraft/docmailer/internal/models"
)

type DocumentTypeConfigRepository interface {
	GetByDocumentType(ctx context.Context, documentType string) (*models.DocumentTypeConfig, error)
	List(ctx context.Context) ([]*models.DocumentTypeConfig, error)
	Upsert(ctx context.Context, config *models.DocumentTypeConfig) error
}

type SendRecordRepository interface {
	Create(ctx context.Context, record *models.SendRecord) error
	CountByStatus(ctx context.Context, documentType, documentID string, status enum.SendStatus) (int64, error)
	ListByDocument(ctx context.Context, documentType, documentID string) ([]*models.SendRecord, error)
	GetByProviderMessageID(ctx context.Context, providerMessageID string) (*models.SendRecord, error)
	UpdateDeliveryStatus(ctx context.Context, id string, status enum.DeliveryStatus) error
}

// DocumentStore reads document lifecycle state and field values from the
// host application's storage.
type DocumentStore interface {
	SubmissionStatus(ctx context.Context, documentType, documentID string) (enum.DocumentStatus, error)
	FieldValue(ctx context.Context, documentType, documentID, field string) (string, error)
}

// RelatedPartyStore resolves the canonical email address of a related record
// (customer, supplier) referenced by a document.
type RelatedPartyStore interface {
	PrimaryEmail(ctx context.Context, recordType, recordID string) (string, error)
}
