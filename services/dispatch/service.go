package dispatch

import (
	"github.com/customeros/mailsherpa/mailvalidate"

	"github.com/alumicraft/docmailer/interfaces"
	internal_errors "github.com/alumicraft/docmailer/internal/errors"
	"github.com/alumicraft/docmailer/internal/logger"
	"github.com/alumicraft/docmailer/internal/repository"
)

type dispatchService struct {
	log          logger.Logger
	repositories *repository.Repositories
	deliverer    interfaces.EmailDeliverer
	publisher    interfaces.DispatchEventPublisher
}

func NewDispatchService(
	log logger.Logger,
	repositories *repository.Repositories,
	deliverer interfaces.EmailDeliverer,
	publisher interfaces.DispatchEventPublisher,
) interfaces.DispatchService {
	return &dispatchService{
		log:          log,
		repositories: repositories,
		deliverer:    deliverer,
		publisher:    publisher,
	}
}

// ValidateEmailAddress checks address syntax and normalizes it in place.
func ValidateEmailAddress(email *string) error {
	validate := mailvalidate.ValidateEmailSyntax(*email)
	if !validate.IsValid || validate.IsSystemGenerated {
		return internal_errors.ErrInvalidRecipient
	}
	*email = validate.CleanEmail
	return nil
}
