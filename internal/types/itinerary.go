package types

// Request/Response types for the planner API

type SetCityRequest struct {
	City string `json:"city"`
}

type SetInterestsRequest struct {
	Interests string `json:"interests"` // comma separated, e.g. "art, food"
}

// PlanItineraryRequest is the one-shot form submission: city and interests in, itinerary out.
type PlanItineraryRequest struct {
	City      string `json:"city"`
	Interests string `json:"interests"`
}

type ItineraryResponse struct {
	SessionID string `json:"session_id"`
	Itinerary string `json:"itinerary"`
}

type CreateSessionResponse struct {
	ID string `json:"id"`
}

// Response is the generic envelope used for errors and acknowledgements.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
