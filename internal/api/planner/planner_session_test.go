package planner

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-day-trip-planner/internal/api/itinerary"
	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

// MockItineraryService is a mock implementation of itinerary.ItineraryService
type MockItineraryService struct {
	mock.Mock
}

func (m *MockItineraryService) GenerateItinerary(ctx context.Context, city string, interests []string) (string, error) {
	args := m.Called(ctx, city, interests)
	return args.String(0), args.Error(1)
}

// MockCompletionProvider stands in for the hosted model behind a real generator.
type MockCompletionProvider struct {
	mock.Mock
}

func (m *MockCompletionProvider) Complete(ctx context.Context, req types.CompletionRequest) (any, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}

func TestParseInterests(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "art, food", want: []string{"art", "food"}},
		{raw: " art ,, , food ,", want: []string{"art", "food"}},
		{raw: "", want: []string{}},
		{raw: " , ", want: []string{}},
		{raw: "street food", want: []string{"street food"}},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseInterests(tc.raw))
		})
	}
}

func TestNewSession_Empty(t *testing.T) {
	s := NewSession(new(MockItineraryService), slog.Default())

	assert.Equal(t, "", s.City())
	assert.Equal(t, []string{}, s.Interests())
	assert.Equal(t, "", s.Itinerary())
	assert.Empty(t, s.Messages())
}

func TestSession_Scenario(t *testing.T) {
	ctx := context.Background()
	generator := new(MockItineraryService)
	s := NewSession(generator, slog.Default())

	generator.On("GenerateItinerary", ctx, "Rome", []string{"art", "food"}).
		Return("- Vatican Museums\n- Trastevere dinner", nil).Once()

	require.NoError(t, s.SetCity(ctx, "Rome"))
	require.NoError(t, s.SetInterests(ctx, "art, food"))
	text, err := s.CreateItinerary(ctx)
	require.NoError(t, err)

	assert.Equal(t, "- Vatican Museums\n- Trastevere dinner", text)
	assert.Equal(t, text, s.Itinerary())
	assert.Equal(t, []string{"art", "food"}, s.Interests())
	assert.Equal(t, []types.Message{
		{Role: types.RoleHuman, Content: "Rome"},
		{Role: types.RoleHuman, Content: "art, food"},
		{Role: types.RoleAI, Content: text},
	}, s.Messages())
	generator.AssertExpectations(t)
}

func TestSession_SetCityKeepsRawValue(t *testing.T) {
	s := NewSession(new(MockItineraryService), slog.Default())

	require.NoError(t, s.SetCity(context.Background(), "  Porto "))
	assert.Equal(t, "  Porto ", s.City())
	assert.Equal(t, types.HumanMessage("  Porto "), s.Messages()[0])
}

func TestSession_SetInterestsRecordsRawInput(t *testing.T) {
	s := NewSession(new(MockItineraryService), slog.Default())

	require.NoError(t, s.SetInterests(context.Background(), " museums, ,jazz "))
	assert.Equal(t, []string{"museums", "jazz"}, s.Interests())
	require.Len(t, s.Messages(), 1)
	assert.Equal(t, " museums, ,jazz ", s.Messages()[0].Content)
}

func TestSession_CreateItineraryOnFreshSession(t *testing.T) {
	// Real generator: the empty city is rejected before the provider is reached.
	provider := new(MockCompletionProvider)
	generator := itinerary.NewItineraryService(provider, itinerary.Config{}, slog.Default())
	s := NewSession(generator, slog.Default())

	text, err := s.CreateItinerary(context.Background())

	require.Error(t, err)
	assert.Empty(t, text)
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.ErrorIs(t, err, itinerary.ErrInvalidInput)

	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "Failed to create itinerary", opErr.Context)
	assert.Empty(t, s.Messages(), "failed generation must not record an AI turn")
	provider.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestSession_ProviderFailureIsNotAnError(t *testing.T) {
	provider := new(MockCompletionProvider)
	provider.On("Complete", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
	generator := itinerary.NewItineraryService(provider, itinerary.Config{}, slog.Default())
	s := NewSession(generator, slog.Default())
	ctx := context.Background()

	require.NoError(t, s.SetCity(ctx, "Oslo"))
	text, err := s.CreateItinerary(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Error generating itinerary: timeout", text)
	assert.Equal(t, types.AIMessage(text), s.Messages()[1])
}

func TestSession_GeneratorErrorIsWrapped(t *testing.T) {
	generator := new(MockItineraryService)
	cause := errors.New("boom")
	generator.On("GenerateItinerary", mock.Anything, "Rome", []string{}).Return("", cause).Once()
	s := NewSession(generator, slog.Default())
	ctx := context.Background()
	require.NoError(t, s.SetCity(ctx, "Rome"))

	_, err := s.CreateItinerary(ctx)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, "Failed to create itinerary: boom", err.Error())
	assert.Equal(t, "", s.Itinerary())
}

func TestSession_PanicIsWrapped(t *testing.T) {
	// A session without a generator is malformed state.
	s := NewSession(nil, slog.Default())

	_, err := s.CreateItinerary(context.Background())

	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "Failed to create itinerary", opErr.Context)
	assert.Contains(t, opErr.Err.Error(), "panic")
}

func TestSession_AccessorsReturnCopies(t *testing.T) {
	s := NewSession(new(MockItineraryService), slog.Default())
	require.NoError(t, s.SetInterests(context.Background(), "art"))

	interests := s.Interests()
	interests[0] = "changed"
	messages := s.Messages()
	messages[0].Content = "changed"

	assert.Equal(t, []string{"art"}, s.Interests())
	assert.Equal(t, "art", s.Messages()[0].Content)
}
