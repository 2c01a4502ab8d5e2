package itinerary

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-day-trip-planner/internal/types"
)

const (
	defaultInterest = "general sightseeing"

	systemPromptTemplate = "You are a helpful travel assistant. Create a day trip itinerary for %s based on user's interest: %s. Provide a brief, bulleted itinerary."
	humanPrompt          = "Create an itinerary for my day trip"
)

// normalizeInterests trims every entry and drops blanks. When nothing is left the
// default interest is used instead.
func normalizeInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	for _, interest := range interests {
		if trimmed := strings.TrimSpace(interest); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{defaultInterest}
	}
	return out
}

func GetItineraryPrompt(city string, interests []string) []types.PromptMessage {
	return []types.PromptMessage{
		{
			Role:    types.PromptRoleSystem,
			Content: fmt.Sprintf(systemPromptTemplate, city, strings.Join(interests, ", ")),
		},
		{
			Role:    types.PromptRoleHuman,
			Content: humanPrompt,
		},
	}
}
