package dto

// ProviderWebhookEvent is the delivery-status callback posted by the email
// provider after a send. Only Type and Data.EmailID are load-bearing.
type ProviderWebhookEvent struct {
	Type      string                   `json:"type"`
	CreatedAt string                   `json:"created_at"`
	Data      ProviderWebhookEventData `json:"data"`
}

type ProviderWebhookEventData struct {
	EmailID string   `json:"email_id"`
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
}
