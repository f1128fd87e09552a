package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumicraft/docmailer/dto"
	"github.com/alumicraft/docmailer/internal/enum"
	"github.com/alumicraft/docmailer/internal/repository"
	"github.com/alumicraft/docmailer/internal/tracing"
)

type WebhooksHandler struct {
	repositories *repository.Repositories
}

func NewWebhooksHandler(repos *repository.Repositories) *WebhooksHandler {
	return &WebhooksHandler{
		repositories: repos,
	}
}

var webhookEventStatus = map[string]enum.DeliveryStatus{
	"email.delivered":  enum.DeliveryStatusDelivered,
	"email.opened":     enum.DeliveryStatusOpened,
	"email.clicked":    enum.DeliveryStatusClicked,
	"email.bounced":    enum.DeliveryStatusBounced,
	"email.complained": enum.DeliveryStatusComplained,
}

// Resend ingests delivery-status callbacks from the provider and stamps the
// matching send record. Events for unknown message IDs are acknowledged and
// dropped; the provider retries on non-2xx only.
func (h *WebhooksHandler) Resend() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "WebhooksHandler.Resend", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var event dto.ProviderWebhookEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid JSON"})
			return
		}

		if event.Data.EmailID == "" {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "No email_id in event"})
			return
		}

		status, known := webhookEventStatus[event.Type]
		if !known {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Event ignored"})
			return
		}

		record, err := h.repositories.SendRecordRepository.GetByProviderMessageID(ctx, event.Data.EmailID)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}
		if record == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Send record not found"})
			return
		}

		if err := h.repositories.SendRecordRepository.UpdateDeliveryStatus(ctx, record.ID, status); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
