package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumicraft/docmailer/internal/enum"
	internal_errors "github.com/alumicraft/docmailer/internal/errors"
	"github.com/alumicraft/docmailer/internal/models"
)

func TestCheckEligible_NotConfigured(t *testing.T) {
	f := newTestFixture()

	result, err := f.service.CheckEligible(context.Background(), "Quotation", "QTN-001")

	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.False(t, result.AlreadySent)
}

func TestCheckEligible_ConfigDisabled(t *testing.T) {
	f := newTestFixture()
	f.addConfig(&models.DocumentTypeConfig{
		DocumentType: "Quotation",
		Enabled:      false,
	})
	f.addDocument("Quotation", "QTN-001", enum.DocumentStatusSubmitted, nil)

	result, err := f.service.CheckEligible(context.Background(), "Quotation", "QTN-001")

	require.NoError(t, err)
	assert.False(t, result.Eligible)
}

func TestCheckEligible_NotSubmitted(t *testing.T) {
	f := newTestFixture()
	f.addConfig(&models.DocumentTypeConfig{
		DocumentType:     "Quotation",
		Enabled:          true,
		RequireSubmitted: true,
	})
	f.addDocument("Quotation", "QTN-001", enum.DocumentStatusDraft, nil)

	result, err := f.service.CheckEligible(context.Background(), "Quotation", "QTN-001")

	require.NoError(t, err)
	assert.False(t, result.Eligible)
}

func TestCheckEligible_CancelledDocument(t *testing.T) {
	f := newTestFixture()
	f.addConfig(&models.DocumentTypeConfig{
		DocumentType:     "Quotation",
		Enabled:          true,
		RequireSubmitted: true,
	})
	f.addDocument("Quotation", "QTN-001", enum.DocumentStatusCancelled, nil)

	result, err := f.service.CheckEligible(context.Background(), "Quotation", "QTN-001")

	require.NoError(t, err)
	assert.False(t, result.Eligible)
}

func TestCheckEligible_SubmissionNotRequired(t *testing.T) {
	f := newTestFixture()
	f.addConfig(&models.DocumentTypeConfig{
		DocumentType:     "Quotation",
		Enabled:          true,
		RequireSubmitted: false,
	})
	f.addDocument("Quotation", "QTN-001", enum.DocumentStatusDraft, nil)

	result, err := f.service.CheckEligible(context.Background(), "Quotation", "QTN-001")

	require.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.False(t, result.AlreadySent)
}

func TestCheckEligible_Idempotent(t *testing.T) {
	f := newTestFixture()
	f.addConfig(&models.DocumentTypeConfig{
		DocumentType:     "Quotation",
		Enabled:          true,
		RequireSubmitted: true,
	})
	f.addDocument("Quotation", "QTN-001", enum.DocumentStatusSubmitted, nil)

	first, err := f.service.CheckEligible(context.Background(), "Quotation", "QTN-001")
	require.NoError(t, err)
	second, err := f.service.CheckEligible(context.Background(), "Quotation", "QTN-001")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCheckEligible_FailedSendDoesNotCountAsSent(t *testing.T) {
	f := newTestFixture()
	f.addConfig(&models.DocumentTypeConfig{
		DocumentType:     "Quotation",
		Enabled:          true,
		RequireSubmitted: true,
	})
	f.addDocument("Quotation", "QTN-001", enum.DocumentStatusSubmitted, nil)
	f.sends.records = append(f.sends.records, &models.SendRecord{
		ID:           "send_failed",
		DocumentType: "Quotation",
		DocumentID:   "QTN-001",
		Status:       enum.SendStatusFailed,
	})

	result, err := f.service.CheckEligible(context.Background(), "Quotation", "QTN-001")

	require.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.False(t, result.AlreadySent)
}

func TestCheckEligible_SuccessfulSendFlipsAlreadySent(t *testing.T) {
	f := newTestFixture()
	f.addConfig(&models.DocumentTypeConfig{
		DocumentType:     "Quotation",
		Enabled:          true,
		RequireSubmitted: true,
	})
	f.addDocument("Quotation", "QTN-001", enum.DocumentStatusSubmitted, nil)
	f.sends.records = append(f.sends.records, &models.SendRecord{
		ID:           "send_ok",
		DocumentType: "Quotation",
		DocumentID:   "QTN-001",
		Status:       enum.SendStatusSuccess,
	})

	result, err := f.service.CheckEligible(context.Background(), "Quotation", "QTN-001")

	require.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.True(t, result.AlreadySent)
}

func TestGetDefaults_NotConfigured(t *testing.T) {
	f := newTestFixture()

	_, err := f.service.GetDefaults(context.Background(), "Quotation")

	assert.ErrorIs(t, err, internal_errors.ErrNotConfigured)
}

func TestGetDefaults_EmptySubFields(t *testing.T) {
	f := newTestFixture()
	f.addConfig(&models.DocumentTypeConfig{
		DocumentType: "Quotation",
		Enabled:      true,
	})

	defaults, err := f.service.GetDefaults(context.Background(), "Quotation")

	require.NoError(t, err)
	assert.Equal(t, "", defaults.RecipientField)
	assert.Equal(t, "", defaults.RecipientDocumentType)
	assert.Equal(t, "", defaults.SourceApplication)
}
