package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumicraft/docmailer/internal/repository"
	"github.com/alumicraft/docmailer/internal/tracing"
	"github.com/alumicraft/docmailer/services/dispatch"
)

type DocumentTypesHandler struct {
	repositories *repository.Repositories
}

func NewDocumentTypesHandler(repos *repository.Repositories) *DocumentTypesHandler {
	return &DocumentTypesHandler{
		repositories: repos,
	}
}

// Configured lists the document types with a configuration row.
func (h *DocumentTypesHandler) Configured() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "DocumentTypesHandler.Configured", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		configs, err := h.repositories.DocumentTypeConfigRepository.List(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		type configuredDocumentType struct {
			DocumentType      string `json:"documentType"`
			Enabled           bool   `json:"enabled"`
			HasTemplate       bool   `json:"hasTemplate"`
			SourceApplication string `json:"sourceApplication"`
		}

		configured := make([]configuredDocumentType, 0, len(configs))
		for _, config := range configs {
			configured = append(configured, configuredDocumentType{
				DocumentType:      config.DocumentType,
				Enabled:           config.Enabled,
				HasTemplate:       config.TemplateID != "",
				SourceApplication: config.SourceApplication,
			})
		}

		c.JSON(http.StatusOK, gin.H{"configured": configured})
	}
}

// Available lists the registry of known document types, marking which are
// already configured. The settings UI populates its selector from this.
func (h *DocumentTypesHandler) Available() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "DocumentTypesHandler.Available", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		configs, err := h.repositories.DocumentTypeConfigRepository.List(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		configured := make(map[string]bool, len(configs))
		for _, config := range configs {
			configured[config.DocumentType] = true
		}

		type availableDocumentType struct {
			DocumentType          string `json:"documentType"`
			SourceApplication     string `json:"sourceApplication"`
			Category              string `json:"category"`
			RecipientField        string `json:"defaultRecipientField"`
			RecipientDocumentType string `json:"defaultRecipientDocumentType"`
			IsConfigured          bool   `json:"isConfigured"`
		}

		available := make([]availableDocumentType, 0)
		for _, entry := range dispatch.KnownDocumentTypes() {
			available = append(available, availableDocumentType{
				DocumentType:          entry.DocumentType,
				SourceApplication:     entry.SourceApplication,
				Category:              entry.Category,
				RecipientField:        entry.RecipientField,
				RecipientDocumentType: entry.RecipientDocumentType,
				IsConfigured:          configured[entry.DocumentType],
			})
		}

		c.JSON(http.StatusOK, gin.H{"doctypes": available})
	}
}
