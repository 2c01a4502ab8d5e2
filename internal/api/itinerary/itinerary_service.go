package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-day-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

const (
	DefaultModel       = "gemini-2.0-flash"
	DefaultTemperature = float32(0.9)

	providerErrorPrefix = "Error generating itinerary: "
)

// ErrInvalidInput is returned when the request cannot be turned into a prompt.
var ErrInvalidInput = errors.New("invalid input")

// CompletionProvider sends a prompt to a hosted language model and returns its
// response in whatever shape the provider uses.
type CompletionProvider interface {
	Complete(ctx context.Context, req types.CompletionRequest) (any, error)
}

// Config carries the fixed model parameters used for every request.
type Config struct {
	Model       string
	Temperature float32
}

// Ensure implementation satisfies the interface
var _ ItineraryService = (*ItineraryServiceImpl)(nil)

// ItineraryService generates a day-trip itinerary for a city and a set of interests.
//
// Provider failures do not surface as errors: the returned text carries the
// failure description instead. Only ErrInvalidInput is returned as an error.
type ItineraryService interface {
	GenerateItinerary(ctx context.Context, city string, interests []string) (string, error)
}

type ItineraryServiceImpl struct {
	logger   *slog.Logger
	provider CompletionProvider
	config   Config
}

func NewItineraryService(provider CompletionProvider, cfg Config, logger *slog.Logger) *ItineraryServiceImpl {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &ItineraryServiceImpl{
		logger:   logger,
		provider: provider,
		config:   cfg,
	}
}

// completionResult is the outcome of one provider call: either a response or a fault.
type completionResult struct {
	response any
	fault    error
}

// text collapses the result into the itinerary string handed back to callers.
func (r completionResult) text() string {
	if r.fault != nil {
		return providerErrorPrefix + strings.TrimSpace(r.fault.Error())
	}
	return ExtractText(r.response)
}

func (s *ItineraryServiceImpl) GenerateItinerary(ctx context.Context, city string, interests []string) (string, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("city", city),
		attribute.Int("interests.count", len(interests)),
		attribute.String("model", s.config.Model),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateItinerary"), slog.String("city", city))

	city = strings.TrimSpace(city)
	if city == "" {
		err := fmt.Errorf("%w: city must be a non-empty string", ErrInvalidInput)
		l.WarnContext(ctx, "Rejected itinerary request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid input")
		return "", err
	}

	interests = normalizeInterests(interests)
	req := types.CompletionRequest{
		Messages:    GetItineraryPrompt(city, interests),
		Model:       s.config.Model,
		Temperature: s.config.Temperature,
	}
	l.DebugContext(ctx, "Requesting itinerary", slog.Any("interests", interests))

	result := s.complete(ctx, req)
	if result.fault != nil {
		l.ErrorContext(ctx, "Completion provider failed", slog.Any("error", result.fault))
		span.RecordError(result.fault)
		span.SetStatus(codes.Error, "Completion provider failed")
		return result.text(), nil
	}

	text := result.text()
	span.SetAttributes(attribute.Int("response.length", len(text)))
	span.SetStatus(codes.Ok, "Itinerary generated")
	l.InfoContext(ctx, "Itinerary generated", slog.Int("length", len(text)))
	return text, nil
}

func (s *ItineraryServiceImpl) complete(ctx context.Context, req types.CompletionRequest) (result completionResult) {
	m := metrics.Get()
	attrs := metric.WithAttributes(attribute.String("model", req.Model))
	m.ItineraryRequestsTotal.Add(ctx, 1, attrs)

	defer func() {
		if r := recover(); r != nil {
			m.ProviderErrorsTotal.Add(ctx, 1, attrs)
			result = completionResult{fault: fmt.Errorf("provider panic: %v", r)}
		}
	}()

	start := time.Now()
	response, err := s.provider.Complete(ctx, req)
	m.ItineraryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		m.ProviderErrorsTotal.Add(ctx, 1, attrs)
		return completionResult{fault: err}
	}
	return completionResult{response: response}
}
