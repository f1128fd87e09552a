package resend

import (
	"bytes"
	"html/template"

	"github.com/alumicraft/docmailer/dto"
)

// Fallback body used when no provider-side template is configured. Keeps the
// branded look of the provider templates without depending on one.
var bodyTemplate = template.Must(template.New("document_email").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.DocumentType}} {{.DocumentID}}</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; padding: 30px; border-radius: 8px;">
        <h2 style="color: #2c3e50; margin-top: 0;">{{.DocumentType}} {{.DocumentID}}</h2>
        <p>Please find your {{.DocumentType}} details attached.</p>
        {{if .CustomMessage}}<p>{{.CustomMessage}}</p>{{end}}
        <hr style="border: none; border-top: 1px solid #dee2e6; margin: 30px 0;">
        <p style="color: #6c757d; font-size: 14px;">This is an automated message; replies are monitored.</p>
    </div>
</body>
</html>`))

func renderBody(request *dto.DeliveryRequest) string {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, request); err != nil {
		return ""
	}
	return buf.String()
}
