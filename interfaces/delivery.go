package interfaces

import (
	"context"

	"github.com/alumicraft/docmailer/dto"
)

// EmailDeliverer renders and sends a branded email through the external
// provider. Implementations must return a definitive result: an unreachable
// or unconfigured provider is an error, never a silent no-op.
type EmailDeliverer interface {
	Deliver(ctx context.Context, request *dto.DeliveryRequest) (*dto.DeliveryResult, error)
	VerifyConnection(ctx context.Context) error
}
