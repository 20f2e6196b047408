package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendProofApprovedEmail notifies a client that their payment proof was accepted.
func (s *EmailService) SendProofApprovedEmail(toEmail, clientName, invoiceCode string) error {
	htmlContent, err := s.renderProofStatusEmail(proofStatusData{
		ClientName:  clientName,
		InvoiceCode: invoiceCode,
		Approved:    true,
		Headline:    "Comprovativo Aprovado",
		Body:        "O comprovativo de pagamento da fatura foi verificado e aprovado. A sua fatura está pronta.",
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Comprovativo aprovado - Fatura %s", invoiceCode)
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, htmlContent))
}

// SendProofRejectedEmail notifies a client that their payment proof was declined.
func (s *EmailService) SendProofRejectedEmail(toEmail, clientName, invoiceCode, reason string) error {
	body := "O comprovativo de pagamento da fatura não pôde ser verificado. Por favor submeta um novo comprovativo."
	if reason != "" {
		body += " Motivo: " + reason
	}
	htmlContent, err := s.renderProofStatusEmail(proofStatusData{
		ClientName:  clientName,
		InvoiceCode: invoiceCode,
		Headline:    "Comprovativo Rejeitado",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Comprovativo rejeitado - Fatura %s", invoiceCode)
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, htmlContent))
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

type proofStatusData struct {
	ClientName  string
	InvoiceCode string
	Approved    bool
	Headline    string
	Body        string
	AppName     string
}

// renderProofStatusEmail renders the proof status notification template
func (s *EmailService) renderProofStatusEmail(data proofStatusData) (string, error) {
	tmpl, err := template.New("proof_status").Parse(proofStatusTemplate)
	if err != nil {
		return "", err
	}

	data.AppName = "Gerador de Faturas"

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// proofStatusTemplate is the HTML template for proof review notifications
const proofStatusTemplate = `
<!DOCTYPE html>
<html lang="pt">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Headline}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <!-- Header -->
                    <tr>
                        <td style="background: {{if .Approved}}linear-gradient(135deg, #059669 0%, #0d9488 100%){{else}}linear-gradient(135deg, #b91c1c 0%, #dc2626 100%){{end}}; padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.Headline}}</h1>
                        </td>
                    </tr>

                    <!-- Content -->
                    <tr>
                        <td style="padding: 40px 30px;">
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
                                Olá {{.ClientName}},
                            </p>

                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
                                {{.Body}}
                            </p>

                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0;">
                                Fatura: <strong>{{.InvoiceCode}}</strong>
                            </p>
                        </td>
                    </tr>

                    <!-- Footer -->
                    <tr>
                        <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 14px; margin: 0;">
                                Este email foi enviado por {{.AppName}}
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
