package generativeAI

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

func TestBuildContents(t *testing.T) {
	req := types.CompletionRequest{
		Model:       "gemini-2.0-flash",
		Temperature: 0.9,
		Messages: []types.PromptMessage{
			{Role: types.PromptRoleSystem, Content: "You are a helpful travel assistant."},
			{Role: types.PromptRoleHuman, Content: "Create an itinerary for my day trip"},
			{Role: types.PromptRoleAI, Content: "- Morning: museum"},
		},
	}

	contents, config := buildContents(req)

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.9, *config.Temperature, 0.0001)
	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are a helpful travel assistant.", config.SystemInstruction.Parts[0].Text)

	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "Create an itinerary for my day trip", contents[0].Parts[0].Text)
	assert.Equal(t, "model", contents[1].Role)
}

func TestBuildContents_NoSystemTurn(t *testing.T) {
	_, config := buildContents(types.CompletionRequest{
		Messages: []types.PromptMessage{{Role: types.PromptRoleHuman, Content: "hi"}},
	})
	assert.Nil(t, config.SystemInstruction)
}

func TestNewAIClient_MissingAPIKey(t *testing.T) {
	t.Setenv("PLANNER_TEST_GEMINI_KEY", "")

	client, err := NewAIClient(context.Background(), Config{APIKeyEnv: "PLANNER_TEST_GEMINI_KEY"}, slog.Default())
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "PLANNER_TEST_GEMINI_KEY")
}
