package interfaces

import (
	"context"

	"github.com/alumicraft/docmailer/dto"
)

// DispatchService is the document email dispatch orchestrator.
type DispatchService interface {
	// CheckEligible reports whether a branded email may be sent for the
	// document and whether one was already sent successfully. Side-effect
	// free and safe to call repeatedly.
	CheckEligible(ctx context.Context, documentType, documentID string) (*dto.EligibilityResult, error)

	// GetSuggestedRecipient computes the default recipient address for the
	// document. Absence of a default is not an error; it returns "".
	GetSuggestedRecipient(ctx context.Context, documentType, documentID string) (string, error)

	// Dispatch performs one end-to-end send attempt and resolves it to a
	// definitive success or failure, appending a send record for every
	// attempt that reaches the provider.
	Dispatch(ctx context.Context, request *dto.DispatchRequest) (*dto.DispatchResult, error)

	// GetDefaults returns the recipient-resolution fields configured for a
	// document type.
	GetDefaults(ctx context.Context, documentType string) (*dto.DocumentTypeDefaults, error)
}
