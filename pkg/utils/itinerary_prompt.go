package utils

import (
	"fmt"
	"strings"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"

	"github.com/google/uuid"
)

const itinerarySystemPrompt = "You are a travel planner. Answer with plain text only: one suggestion per line, " +
	"no markdown, no numbering. Respect the budget, the hours available and the dining and attraction preferences."

func buildItineraryPrompt(input request_models.ItineraryInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a visit to %s.\n", input.Destination)
	fmt.Fprintf(&b, "Time available: %s hours.\n", input.Duration)
	fmt.Fprintf(&b, "Total budget: $%s.\n", input.Budget)

	dining := input.UserPreferences.DiningOptions
	fmt.Fprintf(&b, "Dining: %s cuisine, %s, price level %s of 4.\n", dining.Cuisine, dining.Type, dining.PriceRange)

	attraction := input.UserPreferences.AttractionOptions
	fmt.Fprintf(&b, "Attractions: %s, %s price range.\n", attraction.Type, attraction.PriceRange)
	b.WriteString("Describe the itinerary in chronological order.")
	return b.String()
}

// envelopeFromText wraps model output the way the GraphQL service echoes its input.
func envelopeFromText(input request_models.ItineraryInput, text string) *response_models.CreateItineraryEnvelope {
	dining := input.UserPreferences.DiningOptions
	attraction := input.UserPreferences.AttractionOptions
	return &response_models.CreateItineraryEnvelope{
		CreateItinerary: &response_models.ItineraryRecord{
			ID:          uuid.NewString(),
			Title:       input.Title,
			Destination: input.Destination,
			Duration:    response_models.FlexString(input.Duration),
			Budget:      response_models.FlexString(input.Budget),
			UserPreferences: &response_models.UserPreferencesRecord{
				DiningOptions:     &dining,
				AttractionOptions: &attraction,
			},
			RecommendedItineraryDescription: strings.TrimSpace(text),
		},
	}
}
