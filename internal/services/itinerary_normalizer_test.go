package services_test

import (
	"encoding/json"
	"testing"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const createItineraryPayload = `{
  "createItinerary": {
    "id": "it-42",
    "title": "Rome 2024",
    "destination": "Rome",
    "duration": 24,
    "budget": "800",
    "userPreferences": {
      "diningOptions": {"type": "bar", "cuisine": "italian", "priceRange": "3"},
      "attractionOptions": {"type": "monuments", "priceRange": "highend"}
    },
    "recommendedItineraryDescription": "Morning at the Colosseum\nEvening in Trastevere"
  }
}`

func TestNormalizeItineraryResponse(t *testing.T) {
	var envelope response_models.CreateItineraryEnvelope
	require.NoError(t, json.Unmarshal([]byte(createItineraryPayload), &envelope))

	got, err := services.NormalizeItineraryResponse(&envelope)
	require.NoError(t, err)

	want := response_models.ItineraryResult{
		ID:                     "it-42",
		Title:                  "Rome 2024",
		Destination:            "Rome",
		Duration:               "24",
		Budget:                 "800",
		DiningOptions:          request_models.DiningOptions{Type: "bar", Cuisine: "italian", PriceRange: "3"},
		AttractionOptions:      request_models.AttractionOptions{Type: "monuments", PriceRange: "highend"},
		RecommendedDescription: "Morning at the Colosseum\nEvening in Trastevere",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeItineraryResponse() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Morning at the Colosseum", "Evening in Trastevere"}, got.Paragraphs())
}

func TestNormalizeItineraryResponse_MissingParts(t *testing.T) {
	dining := &request_models.DiningOptions{}
	attraction := &request_models.AttractionOptions{}

	tests := []struct {
		name     string
		envelope *response_models.CreateItineraryEnvelope
		missing  string
	}{
		{"nil envelope", nil, "createItinerary"},
		{"no record", &response_models.CreateItineraryEnvelope{}, "createItinerary"},
		{"no preferences", &response_models.CreateItineraryEnvelope{
			CreateItinerary: &response_models.ItineraryRecord{ID: "x"},
		}, "createItinerary.userPreferences"},
		{"no dining", &response_models.CreateItineraryEnvelope{
			CreateItinerary: &response_models.ItineraryRecord{
				UserPreferences: &response_models.UserPreferencesRecord{AttractionOptions: attraction},
			},
		}, "createItinerary.userPreferences.diningOptions"},
		{"no attraction", &response_models.CreateItineraryEnvelope{
			CreateItinerary: &response_models.ItineraryRecord{
				UserPreferences: &response_models.UserPreferencesRecord{DiningOptions: dining},
			},
		}, "createItinerary.userPreferences.attractionOptions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.NormalizeItineraryResponse(tt.envelope)
			require.ErrorIs(t, err, utils.ErrMalformedResponse)
			assert.Contains(t, err.Error(), "missing "+tt.missing)
		})
	}
}

func TestNormalizeItineraryResponse_EmptyDescription(t *testing.T) {
	got, err := services.NormalizeItineraryResponse(&response_models.CreateItineraryEnvelope{
		CreateItinerary: &response_models.ItineraryRecord{
			ID: "it-1",
			UserPreferences: &response_models.UserPreferencesRecord{
				DiningOptions:     &request_models.DiningOptions{},
				AttractionOptions: &request_models.AttractionOptions{},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got.Paragraphs())
}
