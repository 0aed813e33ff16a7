package response_models

import "tripplanner/internal/models/request_models"

// View names reported to the presentation layer.
const (
	ViewForm    = "form"
	ViewPending = "pending"
	ViewResult  = "result"
)

type ItineraryView struct {
	ItineraryResult
	Paragraphs []string `json:"paragraphs"`
}

type FormSessionResponse struct {
	SessionID    string                        `json:"session_id"`
	View         string                        `json:"view"`
	ErrorMessage string                        `json:"error_message,omitempty"`
	Form         request_models.ItineraryInput `json:"form"`
	Itinerary    *ItineraryView                `json:"itinerary,omitempty"`
	CanSubmit    bool                          `json:"can_submit"`
	UpdatedAt    string                        `json:"updated_at"`
}

type FormSchemaResponse struct {
	Fields []request_models.FormField `json:"fields"`
}

type ArchivedItineraryResponse struct {
	ItineraryResult
	CreatedAt string `json:"created_at"`
}
