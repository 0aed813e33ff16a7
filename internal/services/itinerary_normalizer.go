package services

import (
	"fmt"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// NormalizeItineraryResponse flattens the createItinerary record into an
// ItineraryResult. Missing parts fail the whole conversion.
func NormalizeItineraryResponse(envelope *response_models.CreateItineraryEnvelope) (response_models.ItineraryResult, error) {
	if envelope == nil || envelope.CreateItinerary == nil {
		return response_models.ItineraryResult{}, fmt.Errorf("%w: missing createItinerary", utils.ErrMalformedResponse)
	}
	record := envelope.CreateItinerary
	if record.UserPreferences == nil {
		return response_models.ItineraryResult{}, fmt.Errorf("%w: missing createItinerary.userPreferences", utils.ErrMalformedResponse)
	}
	if record.UserPreferences.DiningOptions == nil {
		return response_models.ItineraryResult{}, fmt.Errorf("%w: missing createItinerary.userPreferences.diningOptions", utils.ErrMalformedResponse)
	}
	if record.UserPreferences.AttractionOptions == nil {
		return response_models.ItineraryResult{}, fmt.Errorf("%w: missing createItinerary.userPreferences.attractionOptions", utils.ErrMalformedResponse)
	}

	return response_models.ItineraryResult{
		ID:                     record.ID,
		Title:                  record.Title,
		Destination:            record.Destination,
		Duration:               string(record.Duration),
		Budget:                 string(record.Budget),
		DiningOptions:          *record.UserPreferences.DiningOptions,
		AttractionOptions:      *record.UserPreferences.AttractionOptions,
		RecommendedDescription: record.RecommendedItineraryDescription,
	}, nil
}
