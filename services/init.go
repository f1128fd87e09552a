package services

import (
	"github.com/alumicraft/docmailer/config"
	"github.com/alumicraft/docmailer/interfaces"
	"github.com/alumicraft/docmailer/internal/logger"
	"github.com/alumicraft/docmailer/internal/repository"
	"github.com/alumicraft/docmailer/services/dispatch"
	"github.com/alumicraft/docmailer/services/events"
	"github.com/alumicraft/docmailer/services/resend"
)

type Services struct {
	DispatchService interfaces.DispatchService
	EmailDeliverer  interfaces.EmailDeliverer
	EventPublisher  interfaces.DispatchEventPublisher
}

func InitServices(cfg *config.Config, log logger.Logger, repos *repository.Repositories) (*Services, error) {
	deliverer := resend.NewResendDeliverer(cfg.ResendConfig)

	publisher := events.NewNoopPublisher()
	if cfg.AppConfig.RabbitMQURL != "" {
		var err error
		publisher, err = events.NewRabbitMQPublisher(cfg.AppConfig.RabbitMQURL)
		if err != nil {
			return nil, err
		}
	}

	services := Services{
		DispatchService: dispatch.NewDispatchService(log, repos, deliverer, publisher),
		EmailDeliverer:  deliverer,
		EventPublisher:  publisher,
	}

	return &services, nil
}
