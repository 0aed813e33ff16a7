package response_models

import (
	"bytes"
	"encoding/json"
	"strings"
	"tripplanner/internal/models/request_models"
)

// CreateItineraryEnvelope is the data payload of the CreateItinerary mutation.
// Pointers mark the parts whose absence makes the envelope malformed.
type CreateItineraryEnvelope struct {
	CreateItinerary *ItineraryRecord `json:"createItinerary"`
}

type ItineraryRecord struct {
	ID                              string                 `json:"id"`
	Title                           string                 `json:"title"`
	Destination                     string                 `json:"destination"`
	Duration                        FlexString             `json:"duration"`
	Budget                          FlexString             `json:"budget"`
	UserPreferences                 *UserPreferencesRecord `json:"userPreferences"`
	RecommendedItineraryDescription string                 `json:"recommendedItineraryDescription"`
}

type UserPreferencesRecord struct {
	DiningOptions     *request_models.DiningOptions     `json:"diningOptions"`
	AttractionOptions *request_models.AttractionOptions `json:"attractionOptions"`
}

// FlexString decodes a JSON string or number into its string form.
// Services disagree on whether duration and budget are Int or String.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// ItineraryResult is the canonical shape of a generated itinerary.
type ItineraryResult struct {
	ID                     string                           `json:"id"`
	Title                  string                           `json:"title"`
	Destination            string                           `json:"destination"`
	Duration               string                           `json:"duration"`
	Budget                 string                           `json:"budget"`
	DiningOptions          request_models.DiningOptions     `json:"diningOptions"`
	AttractionOptions      request_models.AttractionOptions `json:"attractionOptions"`
	RecommendedDescription string                           `json:"recommendedDescription"`
}

// Paragraphs splits the description into display paragraphs.
func (r ItineraryResult) Paragraphs() []string {
	return strings.Split(r.RecommendedDescription, "\n")
}
