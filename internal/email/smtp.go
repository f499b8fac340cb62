package email

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection
// via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendLeadAssigned(ctx context.Context, toEmail string, data LeadAssignedData) error {
	content, err := renderEmailTemplate("lead_assigned.html", leadAssignedEmailData{
		baseEmailData: baseEmailData{
			Title:   "New lead assigned",
			Heading: "A new lead has been assigned to you",
		},
		LeadAssignedData: data,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(subjectLeadAssignedFmt, data.Tag, data.LeadName)
	return s.send(ctx, toEmail, subject, content)
}

func (s *SMTPSender) SendReplyToCustomer(ctx context.Context, toEmail string, data ReplyData) error {
	content, err := renderEmailTemplate("reply_sent.html", replyEmailData{
		baseEmailData: baseEmailData{
			Title:   "You have a reply",
			Heading: fmt.Sprintf("A message from %s", data.AgentName),
		},
		ReplyData: data,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(subjectReplyFmt, data.AgentName)
	return s.send(ctx, toEmail, subject, content)
}
