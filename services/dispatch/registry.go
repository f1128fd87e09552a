package dispatch

// DocumentTypeDefaults describes a document type this service knows how to
// email out of the box, with the recipient-resolution defaults the settings
// UI offers when an administrator configures it.
type DocumentTypeDefaults struct {
	DocumentType          string
	SourceApplication     string
	Category              string
	RecipientField        string
	RecipientDocumentType string
}

// Registry of known document types. RecipientDocumentType is empty where the
// recipient field holds an address directly, or where the related type is
// dynamic (Payment Entry carries it in its party_type field).
var documentTypeRegistry = []DocumentTypeDefaults{
	{DocumentType: "Quotation", SourceApplication: "erpnext", Category: "Selling", RecipientField: "party_name", RecipientDocumentType: "Customer"},
	{DocumentType: "Sales Order", SourceApplication: "erpnext", Category: "Selling", RecipientField: "customer", RecipientDocumentType: "Customer"},
	{DocumentType: "Sales Invoice", SourceApplication: "erpnext", Category: "Selling", RecipientField: "customer", RecipientDocumentType: "Customer"},
	{DocumentType: "Delivery Note", SourceApplication: "erpnext", Category: "Stock", RecipientField: "customer", RecipientDocumentType: "Customer"},
	{DocumentType: "Purchase Order", SourceApplication: "erpnext", Category: "Buying", RecipientField: "supplier", RecipientDocumentType: "Supplier"},
	{DocumentType: "Purchase Invoice", SourceApplication: "erpnext", Category: "Buying", RecipientField: "supplier", RecipientDocumentType: "Supplier"},
	{DocumentType: "Payment Entry", SourceApplication: "erpnext", Category: "Accounts", RecipientField: "party"},
	{DocumentType: "Payment Request", SourceApplication: "erpnext", Category: "Accounts", RecipientField: "email_to"},
}

// KnownDocumentTypes returns the registry in declaration order.
func KnownDocumentTypes() []DocumentTypeDefaults {
	out := make([]DocumentTypeDefaults, len(documentTypeRegistry))
	copy(out, documentTypeRegistry)
	return out
}

// RegistryDefaults looks up a document type's registry entry.
func RegistryDefaults(documentType string) (DocumentTypeDefaults, bool) {
	for _, entry := range documentTypeRegistry {
		if entry.DocumentType == documentType {
			return entry, true
		}
	}
	return DocumentTypeDefaults{}, false
}
