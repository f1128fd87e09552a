package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/alumicraft/docmailer/interfaces"
	"github.com/alumicraft/docmailer/internal/models"
	"github.com/alumicraft/docmailer/internal/tracing"
)

type relatedPartyRepository struct {
	db *gorm.DB
}

func NewRelatedPartyRepository(db *gorm.DB) interfaces.RelatedPartyStore {
	return &relatedPartyRepository{
		db: db,
	}
}

// PrimaryEmail returns "" when the party or its email is missing. Absence of
// an address is not an error here; the dispatch service validates the final
// recipient independently.
func (r *relatedPartyRepository) PrimaryEmail(ctx context.Context, recordType, recordID string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "relatedPartyRepository.PrimaryEmail")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var party models.RelatedParty
	err := r.db.WithContext(ctx).
		Where("record_type = ?", recordType).
		Where("record_id = ?", recordID).
		First(&party).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		tracing.TraceErr(span, err)
		return "", err
	}

	return party.Email, nil
}
