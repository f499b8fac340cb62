// Package transport defines the request and response DTOs of the leads API.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus is the lifecycle state of a lead. A lead starts at New; any
// status may follow any other, no ordering is enforced.
type LeadStatus string

const (
	StatusNew       LeadStatus = "New"
	StatusContacted LeadStatus = "Contacted"
	StatusQualified LeadStatus = "Qualified"
	StatusLost      LeadStatus = "Lost"
	StatusWon       LeadStatus = "Won"
)

// Valid reports whether s is one of the enumerated statuses.
func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusLost, StatusWon:
		return true
	}
	return false
}

// Tag is the intake category derived from the translated message.
type Tag string

const (
	TagPricing    Tag = "pricing"
	TagDemo       Tag = "demo"
	TagSupport    Tag = "support"
	TagEnterprise Tag = "enterprise"
	TagGeneral    Tag = "general"
)

// Request DTOs

type CreateLeadRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Message  string `json:"message" validate:"required"`
	Language string `json:"language,omitempty" validate:"omitempty,max=30"`
}

type UpdateStatusRequest struct {
	Status LeadStatus `json:"status" validate:"required,oneof=New Contacted Qualified Lost Won"`
}

type CreateReplyRequest struct {
	Message    string `json:"message" validate:"required"`
	AgentEmail string `json:"agentEmail" validate:"required,email"`
	AgentName  string `json:"agentName,omitempty" validate:"omitempty,max=200"`
}

// Response DTOs

type LeadResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	OriginalMessage   string     `json:"originalMessage"`
	TranslatedMessage string     `json:"translatedMessage"`
	DetectedLanguage  string     `json:"detectedLanguage"`
	LanguageCode      string     `json:"languageCode"`
	Confidence        string     `json:"confidence"`
	Status            LeadStatus `json:"status"`
	Tag               Tag        `json:"tag"`
	AssignedTo        string     `json:"assignedTo"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type ListLeadsResponse struct {
	Leads  []LeadResponse `json:"leads"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type ReplyResponse struct {
	ID                uuid.UUID `json:"id"`
	LeadID            uuid.UUID `json:"leadId"`
	AgentEmail        string    `json:"agentEmail"`
	AgentName         string    `json:"agentName,omitempty"`
	OriginalMessage   string    `json:"originalMessage"`
	TranslatedMessage string    `json:"translatedMessage"`
	TargetLanguage    string    `json:"targetLanguage"`
	CreatedAt         time.Time `json:"createdAt"`
}

type CreateReplyResponse struct {
	Success bool          `json:"success"`
	Reply   ReplyResponse `json:"reply"`
}

type ListRepliesResponse struct {
	Replies []ReplyResponse `json:"replies"`
}
