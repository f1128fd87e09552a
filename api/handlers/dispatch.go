package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/alumicraft/docmailer/dto"
	internal_errors "github.com/alumicraft/docmailer/internal/errors"
	"github.com/alumicraft/docmailer/internal/repository"
	"github.com/alumicraft/docmailer/internal/tracing"
	"github.com/alumicraft/docmailer/services"
)

type DispatchHandler struct {
	services     *services.Services
	repositories *repository.Repositories
}

func NewDispatchHandler(svcs *services.Services, repos *repository.Repositories) *DispatchHandler {
	return &DispatchHandler{
		services:     svcs,
		repositories: repos,
	}
}

// Eligibility answers the Send vs Resend question for the action button.
func (h *DispatchHandler) Eligibility() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "DispatchHandler.Eligibility", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		result, err := h.services.DispatchService.CheckEligible(ctx, c.Param("type"), c.Param("id"))
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// SuggestedRecipient returns the advisory default recipient for pre-filling
// the send dialog.
func (h *DispatchHandler) SuggestedRecipient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "DispatchHandler.SuggestedRecipient", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		address, err := h.services.DispatchService.GetSuggestedRecipient(ctx, c.Param("type"), c.Param("id"))
		if err != nil {
			if errors.Is(err, internal_errors.ErrNotConfigured) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"email": address})
	}
}

// SendHistory lists the send records for a document, newest first.
func (h *DispatchHandler) SendHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "DispatchHandler.SendHistory", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		records, err := h.repositories.SendRecordRepository.ListByDocument(ctx, c.Param("type"), c.Param("id"))
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"records": records})
	}
}

// Dispatch performs one send attempt. Delivery failures still answer 200
// with a resolved failure result; only malformed input and storage problems
// map to error statuses.
func (h *DispatchHandler) Dispatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "DispatchHandler.Dispatch", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request dto.DispatchRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		result, err := h.services.DispatchService.Dispatch(ctx, &request)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, result)
		case errors.Is(err, internal_errors.ErrInvalidRecipient):
			c.JSON(http.StatusBadRequest, result)
		case errors.Is(err, internal_errors.ErrNotConfigured):
			c.JSON(http.StatusUnprocessableEntity, result)
		case errors.Is(err, internal_errors.ErrDeliveryFailure):
			// Resolved outcome, recorded as failed.
			c.JSON(http.StatusOK, result)
		default:
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, result)
		}
	}
}

// TestEmail sends a canned payload to verify provider configuration.
func (h *DispatchHandler) TestEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "DispatchHandler.TestEmail", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request struct {
			ToAddress string `json:"toAddress"`
		}
		if err := c.ShouldBindJSON(&request); err != nil || request.ToAddress == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "toAddress is required"})
			return
		}

		result, err := h.services.EmailDeliverer.Deliver(ctx, &dto.DeliveryRequest{
			DocumentType:  "Test",
			DocumentID:    "TEST-0001",
			ToAddress:     request.ToAddress,
			CustomMessage: "This is a test email. If you received it, your delivery configuration is working correctly.",
		})
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   result.Success,
			"message":   result.Message,
			"messageId": result.MessageID,
		})
	}
}
