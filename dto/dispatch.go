package dto

// DispatchRequest is one operator-confirmed send action. Built by the
// presentation layer, consumed once by the dispatch service.
type DispatchRequest struct {
	DocumentType  string `json:"documentType"`
	DocumentID    string `json:"documentId"`
	ToAddress     string `json:"toAddress"`
	CcAddress     string `json:"ccAddress,omitempty"`
	CustomMessage string `json:"customMessage,omitempty"`
}

// DispatchResult is the resolved outcome of one dispatch attempt. ErrorDetail
// carries the underlying failure text verbatim.
type DispatchResult struct {
	Success           bool   `json:"success"`
	Recipient         string `json:"recipient,omitempty"`
	SendRecordID      string `json:"sendRecordId,omitempty"`
	ProviderMessageID string `json:"providerMessageId,omitempty"`
	ErrorDetail       string `json:"errorDetail,omitempty"`
}

// EligibilityResult answers "may a branded email be sent, and was one sent
// already" for a document. AlreadySent only selects Send vs Resend labeling;
// it never blocks a resend.
type EligibilityResult struct {
	Eligible    bool `json:"eligible"`
	AlreadySent bool `json:"alreadySent"`
}

// DocumentTypeDefaults are the recipient-resolution fields of a configured
// document type. Unset sub-fields come back as empty strings.
type DocumentTypeDefaults struct {
	RecipientField        string `json:"recipientField"`
	RecipientDocumentType string `json:"recipientDocumentType"`
	SourceApplication     string `json:"sourceApplication"`
}
