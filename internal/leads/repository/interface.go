package repository

import (
	"context"

	"github.com/google/uuid"
)

// LeadsRepository is the persistence contract required by the lead pipeline.
// The concrete Repository implements it over pgx; tests substitute fakes.
type LeadsRepository interface {
	Insert(ctx context.Context, params CreateLeadParams) (Lead, error)
	List(ctx context.Context, limit, offset int, status string) ([]Lead, error)
	Count(ctx context.Context, status string) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Lead, error)
	InsertReply(ctx context.Context, params CreateReplyParams) (Reply, error)
	ListReplies(ctx context.Context, leadID uuid.UUID) ([]Reply, error)
}

var _ LeadsRepository = (*Repository)(nil)
