//go:build integration

package generativeAI

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

func TestMain(m *testing.M) {
	// Skip all tests if no API key is provided
	if os.Getenv("GOOGLE_GEMINI_API_KEY") == "" {
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func TestAIClient_Complete_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := NewAIClient(ctx, Config{Timeout: 45 * time.Second}, slog.Default())
	require.NoError(t, err)

	t.Run("Day trip itinerary", func(t *testing.T) {
		resp, err := client.Complete(ctx, types.CompletionRequest{
			Model:       "gemini-2.0-flash",
			Temperature: 0.2,
			Messages: []types.PromptMessage{
				{Role: types.PromptRoleSystem, Content: "You are a helpful travel assistant. Create a day trip itinerary for Lisbon based on user's interest: food. Provide a brief, bulleted itinerary."},
				{Role: types.PromptRoleHuman, Content: "Create an itinerary for my day trip"},
			},
		})
		require.NoError(t, err)

		gr, ok := resp.(*genai.GenerateContentResponse)
		require.True(t, ok)
		text := gr.Text()
		assert.NotEmpty(t, text)
		assert.True(t, strings.Contains(strings.ToLower(text), "lisbon") || strings.Contains(text, "-") || strings.Contains(text, "*"))
	})

	t.Run("Unknown model fails", func(t *testing.T) {
		_, err := client.Complete(ctx, types.CompletionRequest{
			Model:    "no-such-model",
			Messages: []types.PromptMessage{{Role: types.PromptRoleHuman, Content: "hi"}},
		})
		assert.Error(t, err)
	})
}
