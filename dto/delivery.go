package dto

// DeliveryRequest is the payload handed to the delivery provider. Template
// rendering and transport are the provider's concern.
type DeliveryRequest struct {
	TemplateID    string
	PrintFormat   string
	DocumentType  string
	DocumentID    string
	ToAddress     string
	CcAddress     string
	CustomMessage string
}

// DeliveryResult reports the provider's definitive outcome. Message carries
// the provider's error text when Success is false.
type DeliveryResult struct {
	Success   bool
	MessageID string
	Message   string
}
