// Package email provides transactional email delivery for lead notifications.
package email

import (
	"context"

	"lingualeads_backend/platform/config"
)

// Sender delivers the notification emails of the lead pipeline.
type Sender interface {
	// SendLeadAssigned notifies the assigned agent about a new lead.
	SendLeadAssigned(ctx context.Context, toEmail string, data LeadAssignedData) error
	// SendReplyToCustomer delivers a translated agent reply to the customer.
	SendReplyToCustomer(ctx context.Context, toEmail string, data ReplyData) error
}

// LeadAssignedData carries the template fields of the agent notification.
type LeadAssignedData struct {
	AgentName         string
	LeadName          string
	LeadEmail         string
	DetectedLanguage  string
	Confidence        string
	Tag               string
	OriginalMessage   string
	TranslatedMessage string
}

// ReplyData carries the template fields of the customer reply email.
type ReplyData struct {
	CustomerName      string
	AgentName         string
	TargetLanguage    string
	TranslatedMessage string
}

// NewSender returns an SMTP-backed sender, or a disabled no-op sender when
// email delivery is not configured.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return disabledSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}

// disabledSender drops all emails. Used when SMTP is not configured.
type disabledSender struct{}

func (disabledSender) SendLeadAssigned(context.Context, string, LeadAssignedData) error {
	return nil
}

func (disabledSender) SendReplyToCustomer(context.Context, string, ReplyData) error {
	return nil
}
