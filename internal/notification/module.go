// Package notification provides event handlers for sending emails in
// response to domain events. Domain modules publish events and never talk to
// email providers or templates directly.
package notification

import (
	"context"

	"lingualeads_backend/internal/email"
	"lingualeads_backend/internal/events"
	"lingualeads_backend/platform/logger"
)

// Module subscribes to lead domain events and sends the corresponding
// emails. Delivery is best effort: failures are logged and never surface to
// the publishing pipeline.
type Module struct {
	sender email.Sender
	log    *logger.Logger
}

func NewModule(sender email.Sender, log *logger.Logger) *Module {
	return &Module{sender: sender, log: log}
}

// RegisterHandlers subscribes the module to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadCreated{}.EventName(), m)
	bus.Subscribe(events.ReplyCreated{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LeadCreated:
		m.handleLeadCreated(ctx, e)
	case events.ReplyCreated:
		m.handleReplyCreated(ctx, e)
	}
	return nil
}

func (m *Module) handleLeadCreated(ctx context.Context, e events.LeadCreated) {
	if e.AgentEmail == "" {
		return
	}

	err := m.sender.SendLeadAssigned(ctx, e.AgentEmail, email.LeadAssignedData{
		AgentName:         e.AgentName,
		LeadName:          e.Name,
		LeadEmail:         e.Email,
		DetectedLanguage:  e.DetectedLanguage,
		Confidence:        e.Confidence,
		Tag:               e.Tag,
		OriginalMessage:   e.OriginalMessage,
		TranslatedMessage: e.TranslatedMessage,
	})
	if err != nil {
		m.log.NotificationError(e.EventName(), e.AgentEmail, err)
	}
}

func (m *Module) handleReplyCreated(ctx context.Context, e events.ReplyCreated) {
	// Leads may come in without an email address; there is nobody to notify.
	if e.CustomerEmail == "" {
		return
	}

	err := m.sender.SendReplyToCustomer(ctx, e.CustomerEmail, email.ReplyData{
		CustomerName:      e.CustomerName,
		AgentName:         e.AgentName,
		TargetLanguage:    e.TargetLanguage,
		TranslatedMessage: e.TranslatedMessage,
	})
	if err != nil {
		m.log.NotificationError(e.EventName(), e.CustomerEmail, err)
	}
}
