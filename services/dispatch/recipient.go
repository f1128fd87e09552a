package dispatch

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	internal_errors "github.com/alumicraft/docmailer/internal/errors"
	"github.com/alumicraft/docmailer/internal/models"
	"github.com/alumicraft/docmailer/internal/tracing"
)

// The related record type is usually fixed in configuration; Payment Entry
// style documents carry it in this field instead.
const dynamicPartyTypeField = "party_type"

// GetSuggestedRecipient computes the advisory default recipient. The result
// is a pre-filled suggestion only; the operator may override it and Dispatch
// validates the final address independently.
func (s *dispatchService) GetSuggestedRecipient(ctx context.Context, documentType, documentID string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dispatchService.GetSuggestedRecipient")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagDocument(span, documentType, documentID)

	config, err := s.repositories.DocumentTypeConfigRepository.GetByDocumentType(ctx, documentType)
	if err != nil {
		tracing.TraceErr(span, err)
		return "", errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
	}
	if config == nil {
		return "", internal_errors.ErrNotConfigured
	}

	address, err := s.resolveDefault(ctx, documentType, documentID, config)
	if err != nil {
		tracing.TraceErr(span, err)
		return "", err
	}
	return address, nil
}

// resolveDefault follows the configured recipient field, dereferencing a
// related record when one is configured. A missing document, related record
// or address yields "" rather than an error.
func (s *dispatchService) resolveDefault(ctx context.Context, documentType, documentID string, config *models.DocumentTypeConfig) (string, error) {
	if config.RecipientField == "" {
		return "", nil
	}

	value, err := s.repositories.DocumentStore.FieldValue(ctx, documentType, documentID, config.RecipientField)
	if err != nil {
		if errors.Is(err, internal_errors.ErrDocumentNotFound) {
			return "", nil
		}
		return "", errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
	}
	if value == "" {
		return "", nil
	}

	relatedType := config.RecipientDocumentType
	if relatedType == "" {
		partyType, err := s.repositories.DocumentStore.FieldValue(ctx, documentType, documentID, dynamicPartyTypeField)
		if err != nil && !errors.Is(err, internal_errors.ErrDocumentNotFound) {
			return "", errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
		}
		relatedType = partyType
	}

	if relatedType == "" {
		// The field itself holds the address.
		return value, nil
	}

	email, err := s.repositories.RelatedPartyStore.PrimaryEmail(ctx, relatedType, value)
	if err != nil {
		return "", errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
	}
	return email, nil
}
