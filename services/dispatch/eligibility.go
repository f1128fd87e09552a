package dispatch

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/alumicraft/docmailer/dto"
	"github.com/alumicraft/docmailer/internal/enum"
	internal_errors "github.com/alumicraft/docmailer/internal/errors"
	"github.com/alumicraft/docmailer/internal/models"
	"github.com/alumicraft/docmailer/internal/tracing"
)

// CheckEligible decides whether a branded email may be sent for the document
// and whether one already went out. Ineligibility is not an error; callers
// simply hide the action.
func (s *dispatchService) CheckEligible(ctx context.Context, documentType, documentID string) (*dto.EligibilityResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dispatchService.CheckEligible")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagDocument(span, documentType, documentID)

	config, err := s.repositories.DocumentTypeConfigRepository.GetByDocumentType(ctx, documentType)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
	}
	if config == nil || !config.Enabled {
		return &dto.EligibilityResult{Eligible: false, AlreadySent: false}, nil
	}

	if config.RequireSubmitted {
		submitted, err := s.isSubmitted(ctx, documentType, documentID)
		if err != nil {
			tracing.TraceErr(span, err)
			return nil, errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
		}
		if !submitted {
			return &dto.EligibilityResult{Eligible: false, AlreadySent: false}, nil
		}
	}

	alreadySent, err := s.hasSuccessfulSend(ctx, documentType, documentID)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
	}

	return &dto.EligibilityResult{Eligible: true, AlreadySent: alreadySent}, nil
}

// GetDefaults returns the recipient-resolution fields for a configured
// document type, with empty strings for unset sub-fields.
func (s *dispatchService) GetDefaults(ctx context.Context, documentType string) (*dto.DocumentTypeDefaults, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dispatchService.GetDefaults")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.SetTag(tracing.SpanTagDocumentType, documentType)

	config, err := s.repositories.DocumentTypeConfigRepository.GetByDocumentType(ctx, documentType)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
	}
	if config == nil {
		return nil, internal_errors.ErrNotConfigured
	}

	return &dto.DocumentTypeDefaults{
		RecipientField:        config.RecipientField,
		RecipientDocumentType: config.RecipientDocumentType,
		SourceApplication:     config.SourceApplication,
	}, nil
}

func (s *dispatchService) isSubmitted(ctx context.Context, documentType, documentID string) (bool, error) {
	status, err := s.repositories.DocumentStore.SubmissionStatus(ctx, documentType, documentID)
	if err != nil {
		if errors.Is(err, internal_errors.ErrDocumentNotFound) {
			return false, nil
		}
		return false, err
	}
	return status == enum.DocumentStatusSubmitted, nil
}

// hasSuccessfulSend is the resend-detection read: one successful record is
// the signal, failed attempts never count.
func (s *dispatchService) hasSuccessfulSend(ctx context.Context, documentType, documentID string) (bool, error) {
	count, err := s.repositories.SendRecordRepository.CountByStatus(ctx, documentType, documentID, enum.SendStatusSuccess)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *dispatchService) getEnabledConfig(ctx context.Context, documentType string) (*models.DocumentTypeConfig, error) {
	config, err := s.repositories.DocumentTypeConfigRepository.GetByDocumentType(ctx, documentType)
	if err != nil {
		return nil, errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
	}
	if config == nil || !config.Enabled {
		return nil, internal_errors.ErrNotConfigured
	}
	return config, nil
}
