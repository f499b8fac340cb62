// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"lingualeads_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// LeadCreated is published when a new lead has been captured, translated,
// tagged and assigned.
type LeadCreated struct {
	BaseEvent
	LeadID            uuid.UUID `json:"leadId"`
	Name              string    `json:"name"`
	Email             string    `json:"email,omitempty"`
	DetectedLanguage  string    `json:"detectedLanguage"`
	Confidence        string    `json:"confidence"`
	Tag               string    `json:"tag"`
	OriginalMessage   string    `json:"originalMessage"`
	TranslatedMessage string    `json:"translatedMessage"`
	AgentName         string    `json:"agentName"`
	AgentEmail        string    `json:"agentEmail"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// ReplyCreated is published when an agent reply has been translated into the
// customer's language and persisted.
type ReplyCreated struct {
	BaseEvent
	ReplyID           uuid.UUID `json:"replyId"`
	LeadID            uuid.UUID `json:"leadId"`
	CustomerName      string    `json:"customerName"`
	CustomerEmail     string    `json:"customerEmail,omitempty"`
	AgentName         string    `json:"agentName"`
	AgentEmail        string    `json:"agentEmail"`
	TargetLanguage    string    `json:"targetLanguage"`
	TranslatedMessage string    `json:"translatedMessage"`
}

func (e ReplyCreated) EventName() string { return "leads.reply.created" }
