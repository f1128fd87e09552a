package dto

import "time"

// DocumentEmailDispatchedEvent is published after each resolved dispatch so
// the host application can refresh any displayed history or timeline.
type DocumentEmailDispatchedEvent struct {
	DocumentType      string    `json:"documentType"`
	DocumentID        string    `json:"documentId"`
	Status            string    `json:"status"`
	Recipient         string    `json:"recipient"`
	SendRecordID      string    `json:"sendRecordId"`
	ProviderMessageID string    `json:"providerMessageId,omitempty"`
	ErrorDetail       string    `json:"errorDetail,omitempty"`
	DispatchedAt      time.Time `json:"dispatchedAt"`
}
