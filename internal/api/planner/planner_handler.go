package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-day-trip-planner/internal/api"
	"github.com/FACorreiaa/go-day-trip-planner/internal/api/itinerary"
	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

// HandlerImpl handles HTTP requests for planner sessions.
type HandlerImpl struct {
	plannerService PlannerService
	logger         *slog.Logger
}

func NewHandlerImpl(plannerService PlannerService, logger *slog.Logger) *HandlerImpl {
	if logger == nil {
		panic("PANIC: Attempting to create planner HandlerImpl with nil logger!")
	}
	return &HandlerImpl{
		plannerService: plannerService,
		logger:         logger,
	}
}

// Routes mounts the session endpoints.
func (h *HandlerImpl) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateSession)
	r.Route("/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.DeleteSession)
		r.Put("/city", h.SetCity)
		r.Put("/interests", h.SetInterests)
		r.Post("/itinerary", h.CreateItinerary)
	})
	return r
}

// errorStatus maps service errors onto HTTP status codes.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound, "Session not found"
	case errors.Is(err, itinerary.ErrInvalidInput):
		return http.StatusBadRequest, "City must be set before creating an itinerary"
	default:
		return http.StatusInternalServerError, "Planner operation failed"
	}
}

func (h *HandlerImpl) fail(ctx context.Context, w http.ResponseWriter, r *http.Request, span trace.Span, l *slog.Logger, msg string, err error) {
	status, clientMsg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		l.ErrorContext(ctx, msg, slog.Any("error", err))
	} else {
		l.WarnContext(ctx, msg, slog.Any("error", err))
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	api.ErrorResponse(w, r, status, clientMsg)
}

func (h *HandlerImpl) start(r *http.Request, name, route string) (context.Context, trace.Span, *slog.Logger) {
	ctx, span := otel.Tracer("PlannerHandler").Start(r.Context(), name, trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String(route),
	))
	return ctx, span, h.logger.With(slog.String("handler", name))
}

// CreateSession godoc
// @Summary      Create Planner Session
// @Description  Starts an empty planning session.
// @Tags         Planner
// @Produce      json
// @Success      201 {object} types.CreateSessionResponse
// @Failure      500 {object} types.Response "Internal Server Error"
// @Router       /sessions [post]
func (h *HandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span, l := h.start(r, "CreateSession", "/sessions")
	defer span.End()

	id, err := h.plannerService.CreateSession(ctx)
	if err != nil {
		h.fail(ctx, w, r, span, l, "Failed to create session", err)
		return
	}
	span.SetStatus(codes.Ok, "Session created")
	api.WriteJSONResponse(w, r, http.StatusCreated, types.CreateSessionResponse{ID: id.String()})
}

// GetSession godoc
// @Summary      Get Planner Session
// @Description  Returns the city, interests, itinerary and message history of a session.
// @Tags         Planner
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} types.PlannerSessionSnapshot
// @Failure      400 {object} types.Response "Invalid session ID"
// @Failure      404 {object} types.Response "Session not found"
// @Router       /sessions/{sessionID} [get]
func (h *HandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span, l := h.start(r, "GetSession", "/sessions/{sessionID}")
	defer span.End()

	id, err := api.ParseUUIDParam(chi.URLParam(r, "sessionID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid session ID", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID")
		return
	}

	snap, err := h.plannerService.GetSession(ctx, id)
	if err != nil {
		h.fail(ctx, w, r, span, l, "Failed to get session", err)
		return
	}
	span.SetStatus(codes.Ok, "Session fetched")
	api.WriteJSONResponse(w, r, http.StatusOK, snap)
}

// SetCity godoc
// @Summary      Set City
// @Description  Sets the destination city of a session.
// @Tags         Planner
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body types.SetCityRequest true "City"
// @Success      200 {object} types.Response
// @Failure      400 {object} types.Response "Invalid input"
// @Failure      404 {object} types.Response "Session not found"
// @Router       /sessions/{sessionID}/city [put]
func (h *HandlerImpl) SetCity(w http.ResponseWriter, r *http.Request) {
	ctx, span, l := h.start(r, "SetCity", "/sessions/{sessionID}/city")
	defer span.End()

	id, err := api.ParseUUIDParam(chi.URLParam(r, "sessionID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID")
		return
	}
	var req types.SetCityRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.plannerService.SetCity(ctx, id, req.City); err != nil {
		h.fail(ctx, w, r, span, l, "Failed to set city", err)
		return
	}
	span.SetStatus(codes.Ok, "City set")
	api.WriteJSONResponse(w, r, http.StatusOK, types.Response{Success: true, Message: fmt.Sprintf("City set to %s", req.City)})
}

// SetInterests godoc
// @Summary      Set Interests
// @Description  Sets the interests of a session from a comma separated list.
// @Tags         Planner
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body types.SetInterestsRequest true "Interests"
// @Success      200 {object} types.Response
// @Failure      400 {object} types.Response "Invalid input"
// @Failure      404 {object} types.Response "Session not found"
// @Router       /sessions/{sessionID}/interests [put]
func (h *HandlerImpl) SetInterests(w http.ResponseWriter, r *http.Request) {
	ctx, span, l := h.start(r, "SetInterests", "/sessions/{sessionID}/interests")
	defer span.End()

	id, err := api.ParseUUIDParam(chi.URLParam(r, "sessionID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID")
		return
	}
	var req types.SetInterestsRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.plannerService.SetInterests(ctx, id, req.Interests); err != nil {
		h.fail(ctx, w, r, span, l, "Failed to set interests", err)
		return
	}
	span.SetStatus(codes.Ok, "Interests set")
	api.WriteJSONResponse(w, r, http.StatusOK, types.Response{Success: true, Message: "Interests updated"})
}

// CreateItinerary godoc
// @Summary      Create Itinerary
// @Description  Generates a day-trip itinerary from the session's city and interests.
// @Tags         Planner
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} types.ItineraryResponse
// @Failure      400 {object} types.Response "City not set"
// @Failure      404 {object} types.Response "Session not found"
// @Router       /sessions/{sessionID}/itinerary [post]
func (h *HandlerImpl) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span, l := h.start(r, "CreateItinerary", "/sessions/{sessionID}/itinerary")
	defer span.End()

	id, err := api.ParseUUIDParam(chi.URLParam(r, "sessionID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID")
		return
	}

	text, err := h.plannerService.CreateItinerary(ctx, id)
	if err != nil {
		h.fail(ctx, w, r, span, l, "Failed to create itinerary", err)
		return
	}
	span.SetStatus(codes.Ok, "Itinerary created")
	api.WriteJSONResponse(w, r, http.StatusOK, types.ItineraryResponse{SessionID: id.String(), Itinerary: text})
}

// DeleteSession godoc
// @Summary      Delete Planner Session
// @Tags         Planner
// @Param        sessionID path string true "Session ID"
// @Success      204
// @Failure      404 {object} types.Response "Session not found"
// @Router       /sessions/{sessionID} [delete]
func (h *HandlerImpl) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span, l := h.start(r, "DeleteSession", "/sessions/{sessionID}")
	defer span.End()

	id, err := api.ParseUUIDParam(chi.URLParam(r, "sessionID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID")
		return
	}
	if err := h.plannerService.DeleteSession(ctx, id); err != nil {
		h.fail(ctx, w, r, span, l, "Failed to delete session", err)
		return
	}
	span.SetStatus(codes.Ok, "Session deleted")
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// PlanItinerary godoc
// @Summary      Plan Itinerary
// @Description  One-shot planning: creates a session, sets city and interests and generates the itinerary.
// @Tags         Planner
// @Accept       json
// @Produce      json
// @Param        request body types.PlanItineraryRequest true "City and comma separated interests"
// @Success      200 {object} types.PlannerSessionSnapshot
// @Failure      400 {object} types.Response "Invalid input"
// @Router       /itinerary [post]
func (h *HandlerImpl) PlanItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span, l := h.start(r, "PlanItinerary", "/itinerary")
	defer span.End()

	var req types.PlanItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.plannerService.PlanItinerary(ctx, req.City, req.Interests)
	if err != nil {
		h.fail(ctx, w, r, span, l, "Failed to plan itinerary", err)
		return
	}
	span.SetStatus(codes.Ok, "Itinerary planned")
	api.WriteJSONResponse(w, r, http.StatusOK, snap)
}
