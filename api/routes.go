package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/alumicraft/docmailer/api/handlers"
	"github.com/alumicraft/docmailer/api/middleware"
	"github.com/alumicraft/docmailer/internal/repository"
	"github.com/alumicraft/docmailer/internal/tracing"
	"github.com/alumicraft/docmailer/services"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, s *services.Services, repos *repository.Repositories, apikey string) {
	if s == nil {
		panic("Services cannot be nil")
	}
	if repos == nil {
		panic("Repositories cannot be nil")
	}

	r.Use(gin.Recovery())
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer()))

	apiHandlers := handlers.InitHandlers(s, repos)

	// Health and provider status, no auth
	r.GET("/health", handlers.HealthCheck)
	r.GET("/status", handlers.Status(s.EmailDeliverer))

	// Provider callbacks carry no API key; they are matched by message ID
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/resend", apiHandlers.Webhooks.Resend())
	}

	apiKeyMiddleware := middleware.APIKeyMiddleware(middleware.APIKeyConfig{
		HeaderName:  "X-DOCMAILER-API-KEY",
		ValidAPIKey: apikey,
	})

	api := r.Group("/v1")
	api.Use(apiKeyMiddleware)
	api.Use(middleware.TracingMiddleware())
	{
		documents := api.Group("/documents")
		{
			documents.GET("/:type/:id/eligibility", apiHandlers.Dispatch.Eligibility())
			documents.GET("/:type/:id/recipient", apiHandlers.Dispatch.SuggestedRecipient())
			documents.GET("/:type/:id/sends", apiHandlers.Dispatch.SendHistory())
		}

		api.POST("/dispatch", apiHandlers.Dispatch.Dispatch())
		api.POST("/test-email", apiHandlers.Dispatch.TestEmail())

		doctypes := api.Group("/document-types")
		{
			doctypes.GET("", apiHandlers.DocumentTypes.Configured())
			doctypes.GET("/available", apiHandlers.DocumentTypes.Available())
		}
	}
}
