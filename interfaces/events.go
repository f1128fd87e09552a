package interfaces

import (
	"context"

	"github.com/alumicraft/docmailer/dto"
)

// DispatchEventPublisher notifies the host application of resolved
// dispatches. Publish failures must not fail the dispatch itself.
type DispatchEventPublisher interface {
	PublishDispatched(ctx context.Context, event *dto.DocumentEmailDispatchedEvent) error
	Close() error
}
