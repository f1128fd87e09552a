package resend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alumicraft/docmailer/dto"
)

func TestRenderBody(t *testing.T) {
	body := renderBody(&dto.DeliveryRequest{
		DocumentType:  "Quotation",
		DocumentID:    "QTN-001",
		CustomMessage: "Thanks for your business",
	})

	assert.Contains(t, body, "Quotation QTN-001")
	assert.Contains(t, body, "Thanks for your business")
}

func TestRenderBody_EscapesMarkup(t *testing.T) {
	body := renderBody(&dto.DeliveryRequest{
		DocumentType:  "Quotation",
		DocumentID:    "QTN-001",
		CustomMessage: "<script>alert(1)</script>",
	})

	assert.NotContains(t, body, "<script>")
}

func TestSubjectFor(t *testing.T) {
	subject := subjectFor(&dto.DeliveryRequest{
		DocumentType: "Sales Order",
		DocumentID:   "SO-0042",
	})

	assert.Equal(t, "Sales Order SO-0042", subject)
}

func TestScrub(t *testing.T) {
	assert.Equal(t, "sales_invoice", scrub("Sales Invoice"))
	assert.Equal(t, "qtn_001", scrub("QTN-001"))
}
