package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumicraft/docmailer/internal/enum"
	"github.com/alumicraft/docmailer/internal/models"
	"github.com/alumicraft/docmailer/internal/repository"
)

type stubSendRecordRepository struct {
	records        map[string]*models.SendRecord
	updatedID      string
	updatedStatus  enum.DeliveryStatus
	updateRequests int
}

func (s *stubSendRecordRepository) Create(ctx context.Context, record *models.SendRecord) error {
	return nil
}

func (s *stubSendRecordRepository) CountByStatus(ctx context.Context, documentType, documentID string, status enum.SendStatus) (int64, error) {
	return 0, nil
}

func (s *stubSendRecordRepository) ListByDocument(ctx context.Context, documentType, documentID string) ([]*models.SendRecord, error) {
	return nil, nil
}

func (s *stubSendRecordRepository) GetByProviderMessageID(ctx context.Context, providerMessageID string) (*models.SendRecord, error) {
	return s.records[providerMessageID], nil
}

func (s *stubSendRecordRepository) UpdateDeliveryStatus(ctx context.Context, id string, status enum.DeliveryStatus) error {
	s.updatedID = id
	s.updatedStatus = status
	s.updateRequests++
	return nil
}

func webhookTestRouter(repo *stubSendRecordRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewWebhooksHandler(&repository.Repositories{SendRecordRepository: repo})
	r.POST("/webhooks/resend", handler.Resend())
	return r
}

func postWebhook(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/webhooks/resend", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhook_DeliveredStampsRecord(t *testing.T) {
	repo := &stubSendRecordRepository{
		records: map[string]*models.SendRecord{
			"msg_001": {ID: "send_abc"},
		},
	}
	router := webhookTestRouter(repo)

	w := postWebhook(t, router, `{"type":"email.delivered","data":{"email_id":"msg_001"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "send_abc", repo.updatedID)
	assert.Equal(t, enum.DeliveryStatusDelivered, repo.updatedStatus)
}

func TestWebhook_BouncedStampsRecord(t *testing.T) {
	repo := &stubSendRecordRepository{
		records: map[string]*models.SendRecord{
			"msg_002": {ID: "send_def"},
		},
	}
	router := webhookTestRouter(repo)

	w := postWebhook(t, router, `{"type":"email.bounced","data":{"email_id":"msg_002"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, enum.DeliveryStatusBounced, repo.updatedStatus)
}

func TestWebhook_UnknownMessageIDAcknowledged(t *testing.T) {
	repo := &stubSendRecordRepository{records: map[string]*models.SendRecord{}}
	router := webhookTestRouter(repo)

	w := postWebhook(t, router, `{"type":"email.delivered","data":{"email_id":"msg_missing"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, repo.updateRequests)
}

func TestWebhook_UnhandledEventIgnored(t *testing.T) {
	repo := &stubSendRecordRepository{
		records: map[string]*models.SendRecord{
			"msg_003": {ID: "send_ghi"},
		},
	}
	router := webhookTestRouter(repo)

	w := postWebhook(t, router, `{"type":"email.sent","data":{"email_id":"msg_003"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, repo.updateRequests)
}

func TestWebhook_MissingEmailIDAcknowledged(t *testing.T) {
	repo := &stubSendRecordRepository{records: map[string]*models.SendRecord{}}
	router := webhookTestRouter(repo)

	w := postWebhook(t, router, `{"type":"email.delivered","data":{}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, repo.updateRequests)
}

func TestWebhook_InvalidJSONRejected(t *testing.T) {
	repo := &stubSendRecordRepository{records: map[string]*models.SendRecord{}}
	router := webhookTestRouter(repo)

	w := postWebhook(t, router, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
