// Package service implements the lead intake and reply pipelines: language
// detection, hint override, translation, tagging, round-robin assignment and
// persistence. AI failures are absorbed upstream; only validation,
// persistence and not-found failures surface from here.
package service

import (
	"context"
	"errors"
	"strings"

	"lingualeads_backend/internal/events"
	"lingualeads_backend/internal/leads/repository"
	"lingualeads_backend/internal/leads/transport"
	"lingualeads_backend/internal/translation"
	"lingualeads_backend/platform/apperr"
	"lingualeads_backend/platform/config"
	"lingualeads_backend/platform/logger"
	"lingualeads_backend/platform/phone"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type Service struct {
	repo        repository.LeadsRepository
	detector    *translation.Detector
	translator  *translation.Translator
	roster      []config.Agent
	bus         events.Bus
	log         *logger.Logger
	phoneRegion string
}

func New(
	repo repository.LeadsRepository,
	detector *translation.Detector,
	translator *translation.Translator,
	roster []config.Agent,
	bus events.Bus,
	log *logger.Logger,
	phoneRegion string,
) *Service {
	return &Service{
		repo:        repo,
		detector:    detector,
		translator:  translator,
		roster:      roster,
		bus:         bus,
		log:         log,
		phoneRegion: phoneRegion,
	}
}

// Create runs the full intake pipeline for one inbound message.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return transport.LeadResponse{}, apperr.Validation("name is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return transport.LeadResponse{}, apperr.Validation("message is required")
	}

	detection := s.detector.Detect(ctx, req.Message)
	detection = translation.ApplyHint(detection, req.Language)

	translated := s.translator.ToEnglish(ctx, req.Message, detection.Language.Name)

	tag := Categorize(translated.TranslatedText)

	// The count is a best-effort read; a failure here assigns from the top
	// of the roster rather than failing the lead.
	count, err := s.repo.Count(ctx, "")
	if err != nil {
		s.log.DatabaseError("count_leads", err)
		count = 0
	}
	agent := Assign(count, s.roster)

	lead, err := s.repo.Insert(ctx, repository.CreateLeadParams{
		Name:              strings.TrimSpace(req.Name),
		Email:             strings.TrimSpace(req.Email),
		Phone:             phone.NormalizeE164(req.Phone, s.phoneRegion),
		OriginalMessage:   req.Message,
		TranslatedMessage: translated.TranslatedText,
		DetectedLanguage:  detection.Language.Name,
		LanguageCode:      detection.Language.Code,
		Confidence:        string(detection.Confidence),
		Tag:               string(tag),
		AssignedAgent:     agent.Name,
	})
	if err != nil {
		s.log.DatabaseError("insert_lead", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal,
			"lead processed but could not be saved", err)
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent:         events.NewBaseEvent(),
		LeadID:            lead.ID,
		Name:              lead.Name,
		Email:             lead.Email,
		DetectedLanguage:  lead.DetectedLanguage,
		Confidence:        lead.Confidence,
		Tag:               lead.Tag,
		OriginalMessage:   lead.OriginalMessage,
		TranslatedMessage: lead.TranslatedMessage,
		AgentName:         agent.Name,
		AgentEmail:        agent.Email,
	})

	return toLeadResponse(lead), nil
}

// List returns a page of leads, newest first, with the matching total.
func (s *Service) List(ctx context.Context, limit, offset int, status string) (transport.ListLeadsResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	leads, err := s.repo.List(ctx, limit, offset, status)
	if err != nil {
		s.log.DatabaseError("list_leads", err)
		return transport.ListLeadsResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}

	total, err := s.repo.Count(ctx, status)
	if err != nil {
		s.log.DatabaseError("count_leads", err)
		return transport.ListLeadsResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}

	out := make([]transport.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		out = append(out, toLeadResponse(lead))
	}

	return transport.ListLeadsResponse{
		Leads:  out,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// UpdateStatus sets a lead's status. A missing lead surfaces as a
// persistence failure: the update path treats "nothing to update" the same
// as a failed write.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status transport.LeadStatus) (transport.LeadResponse, error) {
	if !status.Valid() {
		return transport.LeadResponse{}, apperr.Validation("invalid status")
	}

	lead, err := s.repo.UpdateStatus(ctx, id, string(status))
	if err != nil {
		s.log.DatabaseError("update_lead_status", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to update lead status", err)
	}

	return toLeadResponse(lead), nil
}

// CreateReply translates an agent's English reply into the lead's language
// and persists it. The lead is fetched first: a missing lead fails the call
// before any write or notification happens.
func (s *Service) CreateReply(ctx context.Context, leadID uuid.UUID, req transport.CreateReplyRequest) (transport.ReplyResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return transport.ReplyResponse{}, apperr.Validation("message is required")
	}

	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return transport.ReplyResponse{}, apperr.NotFound("lead not found")
		}
		s.log.DatabaseError("get_lead", err)
		return transport.ReplyResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load lead", err)
	}

	translated := s.translator.FromEnglish(ctx, req.Message, lead.DetectedLanguage)

	reply, err := s.repo.InsertReply(ctx, repository.CreateReplyParams{
		LeadID:            lead.ID,
		AgentEmail:        strings.TrimSpace(req.AgentEmail),
		AgentName:         strings.TrimSpace(req.AgentName),
		OriginalMessage:   req.Message,
		TranslatedMessage: translated.TranslatedText,
		TargetLanguage:    translated.Language,
	})
	if err != nil {
		s.log.DatabaseError("insert_reply", err)
		return transport.ReplyResponse{}, apperr.Wrap(apperr.KindInternal,
			"reply processed but could not be saved", err)
	}

	s.bus.Publish(ctx, events.ReplyCreated{
		BaseEvent:         events.NewBaseEvent(),
		ReplyID:           reply.ID,
		LeadID:            lead.ID,
		CustomerName:      lead.Name,
		CustomerEmail:     lead.Email,
		AgentName:         reply.AgentName,
		AgentEmail:        reply.AgentEmail,
		TargetLanguage:    reply.TargetLanguage,
		TranslatedMessage: reply.TranslatedMessage,
	})

	return toReplyResponse(reply), nil
}

// ListReplies returns a lead's replies in conversation order.
func (s *Service) ListReplies(ctx context.Context, leadID uuid.UUID) (transport.ListRepliesResponse, error) {
	replies, err := s.repo.ListReplies(ctx, leadID)
	if err != nil {
		s.log.DatabaseError("list_replies", err)
		return transport.ListRepliesResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list replies", err)
	}

	out := make([]transport.ReplyResponse, 0, len(replies))
	for _, reply := range replies {
		out = append(out, toReplyResponse(reply))
	}
	return transport.ListRepliesResponse{Replies: out}, nil
}

func toLeadResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:                lead.ID,
		Name:              lead.Name,
		Email:             lead.Email,
		Phone:             lead.Phone,
		OriginalMessage:   lead.OriginalMessage,
		TranslatedMessage: lead.TranslatedMessage,
		DetectedLanguage:  lead.DetectedLanguage,
		LanguageCode:      lead.LanguageCode,
		Confidence:        lead.Confidence,
		Status:            transport.LeadStatus(lead.Status),
		Tag:               transport.Tag(lead.Tag),
		AssignedTo:        lead.AssignedAgent,
		CreatedAt:         lead.CreatedAt,
	}
}

func toReplyResponse(reply repository.Reply) transport.ReplyResponse {
	return transport.ReplyResponse{
		ID:                reply.ID,
		LeadID:            reply.LeadID,
		AgentEmail:        reply.AgentEmail,
		AgentName:         reply.AgentName,
		OriginalMessage:   reply.OriginalMessage,
		TranslatedMessage: reply.TranslatedMessage,
		TargetLanguage:    reply.TargetLanguage,
		CreatedAt:         reply.CreatedAt,
	}
}
