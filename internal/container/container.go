package container

import (
	"context"
	"log/slog"

	"github.com/FACorreiaa/go-day-trip-planner/config"
	generativeAI "github.com/FACorreiaa/go-day-trip-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/go-day-trip-planner/internal/api/itinerary"
	"github.com/FACorreiaa/go-day-trip-planner/internal/api/planner"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	SessionStore     *planner.SessionStore
	ItineraryService itinerary.ItineraryService
	PlannerService   planner.PlannerService
	PlannerHandler   *planner.HandlerImpl
}

// NewContainer wires the Gemini provider into the generator, session store, planner
// service and handler.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	aiClient, err := generativeAI.NewAIClient(ctx, generativeAI.Config{
		APIKeyEnv: cfg.LLM.APIKeyEnv,
		Timeout:   cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize completion provider", slog.Any("error", err))
		return nil, err
	}
	return NewContainerWithProvider(cfg, aiClient, logger), nil
}

// NewContainerWithProvider builds the container around any completion provider.
func NewContainerWithProvider(cfg *config.Config, provider itinerary.CompletionProvider, logger *slog.Logger) *Container {
	itineraryService := itinerary.NewItineraryService(provider, itinerary.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
	}, logger)

	sessionStore := planner.NewSessionStore(cfg.Sessions.TTL, cfg.Sessions.Cleanup)
	plannerService := planner.NewPlannerService(sessionStore, itineraryService, logger)
	plannerHandler := planner.NewHandlerImpl(plannerService, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		SessionStore:     sessionStore,
		ItineraryService: itineraryService,
		PlannerService:   plannerService,
		PlannerHandler:   plannerHandler,
	}
}
