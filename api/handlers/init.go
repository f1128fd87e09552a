package handlers

import (
	"github.com/alumicraft/docmailer/internal/repository"
	"github.com/alumicraft/docmailer/services"
)

type Handlers struct {
	Dispatch      *DispatchHandler
	DocumentTypes *DocumentTypesHandler
	Webhooks      *WebhooksHandler
}

func InitHandlers(svcs *services.Services, repos *repository.Repositories) *Handlers {
	return &Handlers{
		Dispatch:      NewDispatchHandler(svcs, repos),
		DocumentTypes: NewDocumentTypesHandler(repos),
		Webhooks:      NewWebhooksHandler(repos),
	}
}
