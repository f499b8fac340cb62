package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrLeadNotFound = errors.New("lead not found")
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Lead struct {
	ID                uuid.UUID
	Name              string
	Email             string
	Phone             string
	OriginalMessage   string
	TranslatedMessage string
	DetectedLanguage  string
	LanguageCode      string
	Confidence        string
	Tag               string
	Status            string
	AssignedAgent     string
	CreatedAt         time.Time
}

type Reply struct {
	ID                uuid.UUID
	LeadID            uuid.UUID
	AgentEmail        string
	AgentName         string
	OriginalMessage   string
	TranslatedMessage string
	TargetLanguage    string
	CreatedAt         time.Time
}

type CreateLeadParams struct {
	Name              string
	Email             string
	Phone             string
	OriginalMessage   string
	TranslatedMessage string
	DetectedLanguage  string
	LanguageCode      string
	Confidence        string
	Tag               string
	AssignedAgent     string
}

type CreateReplyParams struct {
	LeadID            uuid.UUID
	AgentEmail        string
	AgentName         string
	OriginalMessage   string
	TranslatedMessage string
	TargetLanguage    string
}

const leadColumns = `id, name, email, phone, original_message, translated_message,
		detected_language, language_code, confidence, tag, status, assigned_agent, created_at`

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Phone,
		&lead.OriginalMessage, &lead.TranslatedMessage,
		&lead.DetectedLanguage, &lead.LanguageCode, &lead.Confidence,
		&lead.Tag, &lead.Status, &lead.AssignedAgent, &lead.CreatedAt,
	)
	return lead, err
}

func (r *Repository) Insert(ctx context.Context, params CreateLeadParams) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			name, email, phone, original_message, translated_message,
			detected_language, language_code, confidence, tag, assigned_agent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+leadColumns,
		params.Name, params.Email, params.Phone,
		params.OriginalMessage, params.TranslatedMessage,
		params.DetectedLanguage, params.LanguageCode, params.Confidence,
		params.Tag, params.AssignedAgent,
	)
	return scanLead(row)
}

// List returns leads ordered newest first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, limit, offset int, status string) ([]Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// Count returns the number of leads, optionally filtered by status.
func (r *Repository) Count(ctx context.Context, status string) (int64, error) {
	var count int64
	var err error
	if status != "" {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads WHERE status = $1`, status).Scan(&count)
	} else {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	}
	return count, err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrLeadNotFound
	}
	return lead, err
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE leads SET status = $2 WHERE id = $1
		RETURNING `+leadColumns, id, status)
	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrLeadNotFound
	}
	return lead, err
}

const replyColumns = `id, lead_id, agent_email, agent_name, original_message,
		translated_message, target_language, created_at`

func scanReply(row pgx.Row) (Reply, error) {
	var reply Reply
	err := row.Scan(
		&reply.ID, &reply.LeadID, &reply.AgentEmail, &reply.AgentName,
		&reply.OriginalMessage, &reply.TranslatedMessage,
		&reply.TargetLanguage, &reply.CreatedAt,
	)
	return reply, err
}

func (r *Repository) InsertReply(ctx context.Context, params CreateReplyParams) (Reply, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO replies (
			lead_id, agent_email, agent_name, original_message,
			translated_message, target_language
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+replyColumns,
		params.LeadID, params.AgentEmail, params.AgentName,
		params.OriginalMessage, params.TranslatedMessage, params.TargetLanguage,
	)
	return scanReply(row)
}

// ListReplies returns a lead's replies in conversation order, oldest first.
func (r *Repository) ListReplies(ctx context.Context, leadID uuid.UUID) ([]Reply, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+replyColumns+` FROM replies
		WHERE lead_id = $1
		ORDER BY created_at ASC`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replies := make([]Reply, 0)
	for rows.Next() {
		reply, err := scanReply(rows)
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, rows.Err()
}

