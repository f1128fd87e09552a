package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/alumicraft/docmailer/interfaces"
	"github.com/alumicraft/docmailer/internal/enum"
	internal_errors "github.com/alumicraft/docmailer/internal/errors"
	"github.com/alumicraft/docmailer/internal/models"
	"github.com/alumicraft/docmailer/internal/tracing"
)

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) interfaces.DocumentStore {
	return &documentRepository{
		db: db,
	}
}

func (r *documentRepository) SubmissionStatus(ctx context.Context, documentType, documentID string) (enum.DocumentStatus, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "documentRepository.SubmissionStatus")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagDocument(span, documentType, documentID)

	var document models.Document
	err := r.db.WithContext(ctx).
		Select("status").
		Where("document_type = ?", documentType).
		Where("document_id = ?", documentID).
		First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", internal_errors.ErrDocumentNotFound
		}
		tracing.TraceErr(span, err)
		return "", err
	}

	return document.Status, nil
}

func (r *documentRepository) FieldValue(ctx context.Context, documentType, documentID, field string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "documentRepository.FieldValue")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)
	tracing.TagDocument(span, documentType, documentID)

	var document models.Document
	err := r.db.WithContext(ctx).
		Where("document_type = ?", documentType).
		Where("document_id = ?", documentID).
		First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", internal_errors.ErrDocumentNotFound
		}
		tracing.TraceErr(span, err)
		return "", err
	}

	return document.FieldString(field), nil
}
