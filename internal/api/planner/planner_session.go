package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/FACorreiaa/go-day-trip-planner/internal/api/itinerary"
	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

const (
	ctxSetCity         = "Failed to set city"
	ctxSetInterests    = "Failed to set interests"
	ctxCreateItinerary = "Failed to create itinerary"
)

// ErrOperationFailed is matched by every error a Session operation returns.
var ErrOperationFailed = errors.New("planner operation failed")

// OperationError wraps the cause of a failed session operation with the name of
// the operation that failed.
type OperationError struct {
	Context string
	Err     error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *OperationError) Unwrap() []error {
	return []error{ErrOperationFailed, e.Err}
}

// Session accumulates the city, interests and conversation of one planning
// interaction. It is not safe for concurrent use; SessionStore serializes access.
type Session struct {
	city      string
	interests []string
	itinerary string
	messages  []types.Message

	generator itinerary.ItineraryService
	logger    *slog.Logger
}

func NewSession(generator itinerary.ItineraryService, logger *slog.Logger) *Session {
	logger.Debug("Planner session initialized")
	return &Session{
		interests: []string{},
		messages:  []types.Message{},
		generator: generator,
		logger:    logger,
	}
}

// ParseInterests splits a comma separated list, trimming entries and dropping blanks.
func ParseInterests(raw string) []string {
	interests := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			interests = append(interests, trimmed)
		}
	}
	return interests
}

// SetCity stores city as given and records it as a human turn.
func (s *Session) SetCity(ctx context.Context, city string) error {
	return s.guard(ctx, ctxSetCity, func() error {
		s.city = city
		s.messages = append(s.messages, types.HumanMessage(city))
		s.logger.InfoContext(ctx, "City set", slog.String("city", city))
		return nil
	})
}

// SetInterests stores the parsed interests. The human turn keeps the raw input.
func (s *Session) SetInterests(ctx context.Context, raw string) error {
	return s.guard(ctx, ctxSetInterests, func() error {
		s.interests = ParseInterests(raw)
		s.messages = append(s.messages, types.HumanMessage(raw))
		s.logger.InfoContext(ctx, "Interests set", slog.Any("interests", s.interests))
		return nil
	})
}

// CreateItinerary asks the generator for an itinerary from the current city and
// interests and records it as an AI turn.
func (s *Session) CreateItinerary(ctx context.Context) (string, error) {
	var text string
	err := s.guard(ctx, ctxCreateItinerary, func() error {
		s.logger.InfoContext(ctx, "Creating itinerary",
			slog.String("city", s.city), slog.Any("interests", s.interests))

		generated, err := s.generator.GenerateItinerary(ctx, s.city, s.interests)
		if err != nil {
			return err
		}
		s.itinerary = generated
		s.messages = append(s.messages, types.AIMessage(generated))
		text = generated
		s.logger.InfoContext(ctx, "Itinerary created successfully")
		return nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// guard runs fn and turns any error or panic into an *OperationError.
func (s *Session) guard(ctx context.Context, opContext string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			s.logger.ErrorContext(ctx, opContext, slog.Any("error", err))
			err = &OperationError{Context: opContext, Err: err}
		}
	}()
	return fn()
}

func (s *Session) City() string { return s.city }

func (s *Session) Itinerary() string { return s.itinerary }

func (s *Session) Interests() []string {
	out := make([]string, len(s.interests))
	copy(out, s.interests)
	return out
}

func (s *Session) Messages() []types.Message {
	out := make([]types.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
