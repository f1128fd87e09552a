package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/alumicraft/docmailer/interfaces"
	"github.com/alumicraft/docmailer/internal/enum"
	"github.com/alumicraft/docmailer/internal/models"
	"github.com/alumicraft/docmailer/internal/tracing"
)

type sendRecordRepository struct {
	db *gorm.DB
}

func NewSendRecordRepository(db *gorm.DB) interfaces.SendRecordRepository {
	return &sendRecordRepository{
		db: db,
	}
}

func (r *sendRecordRepository) Create(ctx context.Context, record *models.SendRecord) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sendRecordRepository.Create")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagDocument(span, record.DocumentType, record.DocumentID)

	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	return nil
}

func (r *sendRecordRepository) CountByStatus(ctx context.Context, documentType, documentID string, status enum.SendStatus) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sendRecordRepository.CountByStatus")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagDocument(span, documentType, documentID)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SendRecord{}).
		Where("document_type = ?", documentType).
		Where("document_id = ?", documentID).
		Where("medium = ?", enum.SendMediumEmail).
		Where("direction = ?", enum.SendDirectionSent).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return 0, err
	}

	return count, nil
}

func (r *sendRecordRepository) ListByDocument(ctx context.Context, documentType, documentID string) ([]*models.SendRecord, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sendRecordRepository.ListByDocument")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagDocument(span, documentType, documentID)

	var records []*models.SendRecord
	err := r.db.WithContext(ctx).
		Where("document_type = ?", documentType).
		Where("document_id = ?", documentID).
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	return records, nil
}

func (r *sendRecordRepository) GetByProviderMessageID(ctx context.Context, providerMessageID string) (*models.SendRecord, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sendRecordRepository.GetByProviderMessageID")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var record models.SendRecord
	err := r.db.WithContext(ctx).
		Where("provider_message_id = ?", providerMessageID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}

	return &record, nil
}

func (r *sendRecordRepository) UpdateDeliveryStatus(ctx context.Context, id string, status enum.DeliveryStatus) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sendRecordRepository.UpdateDeliveryStatus")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	err := r.db.WithContext(ctx).
		Model(&models.SendRecord{}).
		Where("id = ?", id).
		Update("delivery_status", status).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	return nil
}
