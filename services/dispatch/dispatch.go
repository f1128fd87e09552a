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
	"github.com/alumicraft/docmailer/internal/utils"
)

// Dispatch runs one send attempt end to end: eligibility, validation,
// delivery, then the durable record. The record append is strictly ordered
// after the delivery call returns, so a record never claims an outcome the
// provider has not produced. No automatic retry: a retry is a fresh dispatch.
func (s *dispatchService) Dispatch(ctx context.Context, request *dto.DispatchRequest) (*dto.DispatchResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dispatchService.Dispatch")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagDocument(span, request.DocumentType, request.DocumentID)

	// Eligibility. Not configured or not submitted resolves the attempt
	// without a record.
	config, err := s.getEnabledConfig(ctx, request.DocumentType)
	if err != nil {
		tracing.TraceErr(span, err)
		return failureResult(err), err
	}

	if config.RequireSubmitted {
		submitted, err := s.isSubmitted(ctx, request.DocumentType, request.DocumentID)
		if err != nil {
			err = errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
			tracing.TraceErr(span, err)
			return failureResult(err), err
		}
		if !submitted {
			err = errors.Wrapf(internal_errors.ErrNotConfigured, "%s %s is not submitted", request.DocumentType, request.DocumentID)
			tracing.TraceErr(span, err)
			return failureResult(err), err
		}
	}

	// Validation. No record is written for a bad address.
	if err := s.validateRequest(request); err != nil {
		tracing.TraceErr(span, err)
		return failureResult(err), err
	}

	// Delivery. The provider call is the only step expected to block; the
	// caller bounds it through ctx.
	delivery, deliveryErr := s.deliverer.Deliver(ctx, &dto.DeliveryRequest{
		TemplateID:    config.TemplateID,
		PrintFormat:   config.PrintFormat,
		DocumentType:  request.DocumentType,
		DocumentID:    request.DocumentID,
		ToAddress:     request.ToAddress,
		CcAddress:     request.CcAddress,
		CustomMessage: request.CustomMessage,
	})

	record := &models.SendRecord{
		DocumentType: request.DocumentType,
		DocumentID:   request.DocumentID,
		Medium:       enum.SendMediumEmail,
		Direction:    enum.SendDirectionSent,
		Recipient:    request.ToAddress,
	}
	if request.CcAddress != "" {
		record.CcRecipients = []string{request.CcAddress}
	}

	var errorDetail string
	switch {
	case deliveryErr != nil:
		record.Status = enum.SendStatusFailed
		errorDetail = deliveryErr.Error()
	case !delivery.Success:
		record.Status = enum.SendStatusFailed
		errorDetail = delivery.Message
	default:
		record.Status = enum.SendStatusSuccess
		record.ProviderMessageID = delivery.MessageID
	}
	record.ErrorDetail = errorDetail

	// Record append, after the delivery outcome is known.
	if err := s.repositories.SendRecordRepository.Create(ctx, record); err != nil {
		err = errors.Wrap(internal_errors.ErrStorageFailure, err.Error())
		tracing.TraceErr(span, err)
		return failureResult(err), err
	}

	s.publishOutcome(ctx, record)

	if record.Status == enum.SendStatusFailed {
		err := errors.Wrap(internal_errors.ErrDeliveryFailure, errorDetail)
		tracing.TraceErr(span, err)
		return &dto.DispatchResult{
			Success:      false,
			Recipient:    record.Recipient,
			SendRecordID: record.ID,
			ErrorDetail:  errorDetail,
		}, err
	}

	return &dto.DispatchResult{
		Success:           true,
		Recipient:         record.Recipient,
		SendRecordID:      record.ID,
		ProviderMessageID: record.ProviderMessageID,
	}, nil
}

func (s *dispatchService) validateRequest(request *dto.DispatchRequest) error {
	if request.ToAddress == "" {
		return internal_errors.ErrInvalidRecipient
	}
	if err := ValidateEmailAddress(&request.ToAddress); err != nil {
		return errors.Wrap(err, request.ToAddress)
	}
	if request.CcAddress != "" {
		if err := ValidateEmailAddress(&request.CcAddress); err != nil {
			return errors.Wrap(err, request.CcAddress)
		}
	}
	return nil
}

// publishOutcome is best effort: a broker problem never fails a dispatch
// that already resolved.
func (s *dispatchService) publishOutcome(ctx context.Context, record *models.SendRecord) {
	event := &dto.DocumentEmailDispatchedEvent{
		DocumentType:      record.DocumentType,
		DocumentID:        record.DocumentID,
		Status:            record.Status.String(),
		Recipient:         record.Recipient,
		SendRecordID:      record.ID,
		ProviderMessageID: record.ProviderMessageID,
		ErrorDetail:       record.ErrorDetail,
		DispatchedAt:      utils.Now(),
	}
	if err := s.publisher.PublishDispatched(ctx, event); err != nil {
		s.log.Warnf("dispatch event publish failed for %s %s: %v", record.DocumentType, record.DocumentID, err)
	}
}

func failureResult(err error) *dto.DispatchResult {
	return &dto.DispatchResult{
		Success:     false,
		ErrorDetail: err.Error(),
	}
}
