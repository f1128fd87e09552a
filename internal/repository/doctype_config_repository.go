package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/alumicraft/docmailer/interfaces"
	"github.com/alumicraft/docmailer/internal/models"
	"github.com/alumicraft/docmailer/internal/tracing"
)

type documentTypeConfigRepository struct {
	db *gorm.DB
}

func NewDocumentTypeConfigRepository(db *gorm.DB) interfaces.DocumentTypeConfigRepository {
	return &documentTypeConfigRepository{
		db: db,
	}
}

func (r *documentTypeConfigRepository) GetByDocumentType(ctx context.Context, documentType string) (*models.DocumentTypeConfig, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "documentTypeConfigRepository.GetByDocumentType")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	span.SetTag(tracing.SpanTagDocumentType, documentType)

	var config models.DocumentTypeConfig
	err := r.db.WithContext(ctx).
		Where("document_type = ?", documentType).
		First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}

	return &config, nil
}

func (r *documentTypeConfigRepository) List(ctx context.Context) ([]*models.DocumentTypeConfig, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "documentTypeConfigRepository.List")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var configs []*models.DocumentTypeConfig
	err := r.db.WithContext(ctx).
		Order("document_type asc").
		Find(&configs).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	return configs, nil
}

func (r *documentTypeConfigRepository) Upsert(ctx context.Context, config *models.DocumentTypeConfig) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "documentTypeConfigRepository.Upsert")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	span.SetTag(tracing.SpanTagDocumentType, config.DocumentType)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "document_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"enabled",
				"recipient_field",
				"recipient_document_type",
				"source_application",
				"require_submitted",
				"template_id",
				"print_format",
				"updated_at",
			}),
		}).
		Create(config).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	return nil
}
