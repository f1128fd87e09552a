package errors

import "github.com/pkg/errors"

var (
	// ErrNotConfigured is returned when no configuration row exists for a
	// document type. Treated as ineligible, never surfaced as a fault.
	ErrNotConfigured = errors.New("document type not configured for branded email")

	// ErrInvalidRecipient is returned when the recipient address is empty or
	// syntactically invalid. No send record is written.
	ErrInvalidRecipient = errors.New("recipient address is missing or invalid")

	// ErrDeliveryFailure is returned when the delivery provider reports a
	// failure or times out. A failed send record is written first.
	ErrDeliveryFailure = errors.New("branded email delivery failed")

	// ErrStorageFailure is returned when a storage collaborator fails. Not
	// retried, since the write status of the record is unknown.
	ErrStorageFailure = errors.New("send record storage failed")

	ErrDocumentNotFound = errors.New("document not found")
)
