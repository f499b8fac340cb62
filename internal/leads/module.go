// Package leads provides the multilingual lead intake bounded context.
// This file defines the module that encapsulates all leads setup and route
// registration.
package leads

import (
	"lingualeads_backend/internal/events"
	apphttp "lingualeads_backend/internal/http"
	"lingualeads_backend/internal/leads/handler"
	"lingualeads_backend/internal/leads/repository"
	"lingualeads_backend/internal/leads/service"
	"lingualeads_backend/internal/translation"
	"lingualeads_backend/platform/config"
	"lingualeads_backend/platform/logger"
	"lingualeads_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, cfg *config.Config, log *logger.Logger) *Module {
	repo := repository.New(pool)

	gen := translation.NewGeminiClient(cfg)
	retry := translation.DefaultRetryPolicy()
	detector := translation.NewDetector(gen, retry, log)
	translator := translation.NewTranslator(gen, retry, log)

	svc := service.New(
		repo,
		detector,
		translator,
		cfg.GetAgentRoster(),
		eventBus,
		log,
		cfg.GetPhoneRegion(),
	)

	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "leads" }

// RegisterRoutes mounts the leads routes on /api/v1/leads. The public intake
// endpoint is throttled per client IP.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/leads")
	m.handler.RegisterRoutes(group, ctx.IntakeRateLimiter.RateLimit())
}
