package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-day-trip-planner/internal/api/itinerary"
	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

// Ensure implementation satisfies the interface
var _ PlannerService = (*PlannerServiceImpl)(nil)

// PlannerService manages planner sessions addressed by id.
type PlannerService interface {
	CreateSession(ctx context.Context) (uuid.UUID, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.PlannerSessionSnapshot, error)
	SetCity(ctx context.Context, sessionID uuid.UUID, city string) error
	SetInterests(ctx context.Context, sessionID uuid.UUID, interests string) error
	CreateItinerary(ctx context.Context, sessionID uuid.UUID) (string, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
	PlanItinerary(ctx context.Context, city, interests string) (*types.PlannerSessionSnapshot, error)
}

type PlannerServiceImpl struct {
	logger    *slog.Logger
	store     *SessionStore
	generator itinerary.ItineraryService
}

func NewPlannerService(store *SessionStore, generator itinerary.ItineraryService, logger *slog.Logger) *PlannerServiceImpl {
	return &PlannerServiceImpl{
		logger:    logger,
		store:     store,
		generator: generator,
	}
}

func (s *PlannerServiceImpl) CreateSession(ctx context.Context) (uuid.UUID, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "CreateSession")
	defer span.End()

	id := s.store.Add(ctx, NewSession(s.generator, s.logger))
	span.SetAttributes(attribute.String("session.id", id.String()))
	s.logger.InfoContext(ctx, "Planner session created", slog.String("sessionID", id.String()))
	span.SetStatus(codes.Ok, "Session created")
	return id, nil
}

func (s *PlannerServiceImpl) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.PlannerSessionSnapshot, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "GetSession", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
	))
	defer span.End()

	snap, err := s.store.Snapshot(sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "Planner session lookup failed", slog.String("sessionID", sessionID.String()), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Session not found")
		return nil, err
	}
	span.SetStatus(codes.Ok, "Session fetched")
	return snap, nil
}

func (s *PlannerServiceImpl) SetCity(ctx context.Context, sessionID uuid.UUID, city string) error {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "SetCity", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
		attribute.String("city", city),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "SetCity"), slog.String("sessionID", sessionID.String()))
	err := s.store.With(sessionID, func(session *Session) error {
		return session.SetCity(ctx, city)
	})
	if err != nil {
		l.ErrorContext(ctx, "Failed to set city", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to set city")
		return fmt.Errorf("error setting city: %w", err)
	}
	span.SetStatus(codes.Ok, "City set")
	return nil
}

func (s *PlannerServiceImpl) SetInterests(ctx context.Context, sessionID uuid.UUID, interests string) error {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "SetInterests", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
		attribute.String("interests", interests),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "SetInterests"), slog.String("sessionID", sessionID.String()))
	err := s.store.With(sessionID, func(session *Session) error {
		return session.SetInterests(ctx, interests)
	})
	if err != nil {
		l.ErrorContext(ctx, "Failed to set interests", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to set interests")
		return fmt.Errorf("error setting interests: %w", err)
	}
	span.SetStatus(codes.Ok, "Interests set")
	return nil
}

func (s *PlannerServiceImpl) CreateItinerary(ctx context.Context, sessionID uuid.UUID) (string, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "CreateItinerary", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "CreateItinerary"), slog.String("sessionID", sessionID.String()))
	var text string
	err := s.store.With(sessionID, func(session *Session) error {
		var err error
		text, err = session.CreateItinerary(ctx)
		return err
	})
	if err != nil {
		l.ErrorContext(ctx, "Failed to create itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create itinerary")
		return "", fmt.Errorf("error creating itinerary: %w", err)
	}
	span.SetStatus(codes.Ok, "Itinerary created")
	return text, nil
}

func (s *PlannerServiceImpl) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "DeleteSession", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
	))
	defer span.End()

	if err := s.store.Delete(sessionID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete session")
		return err
	}
	s.logger.InfoContext(ctx, "Planner session deleted", slog.String("sessionID", sessionID.String()))
	span.SetStatus(codes.Ok, "Session deleted")
	return nil
}

// PlanItinerary runs a full planning interaction in a new session: set the city,
// set the interests, create the itinerary. On success the session is kept so the
// caller can continue it.
func (s *PlannerServiceImpl) PlanItinerary(ctx context.Context, city, interests string) (*types.PlannerSessionSnapshot, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "PlanItinerary", trace.WithAttributes(
		attribute.String("city", city),
		attribute.String("interests", interests),
	))
	defer span.End()

	id, err := s.CreateSession(ctx)
	if err != nil {
		return nil, err
	}
	err = s.SetCity(ctx, id, city)
	if err == nil {
		err = s.SetInterests(ctx, id, interests)
	}
	if err == nil {
		_, err = s.CreateItinerary(ctx, id)
	}
	if err != nil {
		// a failed one-shot plan leaves nothing to continue
		_ = s.store.Delete(id)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to plan itinerary")
		return nil, err
	}

	span.SetStatus(codes.Ok, "Itinerary planned")
	return s.GetSession(ctx, id)
}
