package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

const (
	defaultModel = "gemini-2.0-flash"
	roleUser     = "user"
	roleModel    = "model"
)

var ErrMissingAPIKey = errors.New("completion provider API key is not set")

// Config selects the credentials and per-call timeout of the Gemini client.
type Config struct {
	APIKeyEnv string
	Timeout   time.Duration
}

// AIClient is the Gemini-backed completion provider.
type AIClient struct {
	client  *genai.Client
	timeout time.Duration
	logger  *slog.Logger
}

func NewAIClient(ctx context.Context, cfg Config, logger *slog.Logger) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	envName := cfg.APIKeyEnv
	if envName == "" {
		envName = "GOOGLE_GEMINI_API_KEY"
	}
	apiKey := os.Getenv(envName)
	if apiKey == "" {
		err := fmt.Errorf("%w: %s", ErrMissingAPIKey, envName)
		span.RecordError(err)
		span.SetStatus(codes.Error, "API key not set")
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &AIClient{
		client:  client,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Complete sends the prompt to Gemini. System turns become the system instruction,
// human and AI turns become user and model contents. The raw
// *genai.GenerateContentResponse is returned as-is for the caller to normalize.
func (ai *AIClient) Complete(ctx context.Context, req types.CompletionRequest) (any, error) {
	model := req.Model
	if model == "" {
		model = defaultModel
	}
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "Complete", trace.WithAttributes(
		attribute.String("model", model),
		attribute.Int("prompt.messages", len(req.Messages)),
	))
	defer span.End()

	if ai.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ai.timeout)
		defer cancel()
	}

	contents, config := buildContents(req)
	result, err := ai.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		ai.logger.ErrorContext(ctx, "Gemini content generation failed", slog.String("model", model), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	span.SetStatus(codes.Ok, "Content generated successfully")
	return result, nil
}

func buildContents(req types.CompletionRequest) ([]*genai.Content, *genai.GenerateContentConfig) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}

	var system []string
	var contents []*genai.Content
	for _, m := range req.Messages {
		switch m.Role {
		case types.PromptRoleSystem:
			system = append(system, m.Content)
		case types.PromptRoleAI:
			contents = append(contents, &genai.Content{Role: roleModel, Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: roleUser, Parts: []*genai.Part{{Text: m.Content}}})
		}
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: strings.Join(system, "\n")}}}
	}
	return contents, config
}
