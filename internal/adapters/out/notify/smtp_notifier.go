// Package notify implements the Notifier port over SMTP. Bill dispatch and
// payment reminder emails are rendered from HTML templates and handed to the
// configured relay.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"freightops/internal/core/ports"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPNotifier sends customer emails through a plain-auth SMTP relay.
type SMTPNotifier struct {
	config       Config
	billTmpl     *template.Template
	reminderTmpl *template.Template
}

// NewSMTPNotifier creates a notifier for the given relay. Template parsing
// happens once here, not per send.
func NewSMTPNotifier(config Config) (*SMTPNotifier, error) {
	billTmpl, err := template.New("bill").Parse(billTemplate)
	if err != nil {
		return nil, err
	}
	reminderTmpl, err := template.New("reminder").Parse(reminderTemplate)
	if err != nil {
		return nil, err
	}

	return &SMTPNotifier{
		config:       config,
		billTmpl:     billTmpl,
		reminderTmpl: reminderTmpl,
	}, nil
}

// SendBill emails the customer that their freight bill has been issued.
func (n *SMTPNotifier) SendBill(_ context.Context, notification ports.BillNotification) error {
	subject := fmt.Sprintf("Freight Bill %s", notification.BillNo)
	return n.send(notification, n.billTmpl, subject)
}

// SendPaymentReminder emails the customer about an outstanding bill.
func (n *SMTPNotifier) SendPaymentReminder(_ context.Context, notification ports.BillNotification) error {
	subject := fmt.Sprintf("Payment Reminder - Freight Bill %s", notification.BillNo)
	return n.send(notification, n.reminderTmpl, subject)
}

func (n *SMTPNotifier) send(notification ports.BillNotification, tmpl *template.Template, subject string) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, notification); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := n.buildHTMLEmail(notification.Recipient, subject, body.String())

	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)

	if err := smtp.SendMail(addr, auth, n.config.FromEmail, []string{notification.Recipient}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (n *SMTPNotifier) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		n.config.FromName,
		n.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

const billTemplate = `
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Freight Bill {{.BillNo}}</h2>
  <p>Dear {{.CustomerName}},</p>
  <p>Your freight bill dated {{.BillDate}} has been issued.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><b>Bill No</b></td><td>{{.BillNo}}</td></tr>
    <tr><td><b>Bill Date</b></td><td>{{.BillDate}}</td></tr>
    <tr><td><b>Amount Payable</b></td><td>{{.FinalAmount}}</td></tr>
  </table>
  <p>Kindly arrange payment at your earliest convenience.</p>
  <p>Regards,<br>Accounts Department</p>
</body>
</html>
`

const reminderTemplate = `
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Payment Reminder</h2>
  <p>Dear {{.CustomerName}},</p>
  <p>This is a reminder that freight bill {{.BillNo}} dated {{.BillDate}} has an
  outstanding balance.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><b>Bill No</b></td><td>{{.BillNo}}</td></tr>
    <tr><td><b>Bill Amount</b></td><td>{{.FinalAmount}}</td></tr>
    <tr><td><b>Outstanding</b></td><td>{{.OutstandingAmount}}</td></tr>
  </table>
  <p>Please ignore this reminder if payment has already been made.</p>
  <p>Regards,<br>Accounts Department</p>
</body>
</html>
`
