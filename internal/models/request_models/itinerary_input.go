package request_models

// ItineraryInput is the preference tree edited by a form session and sent as the
// CreateItinerary mutation's itineraryInput variable.
type ItineraryInput struct {
	Title           string          `json:"title"`
	Destination     string          `json:"destination" binding:"required"`
	Duration        string          `json:"duration" binding:"required"` // hours at destination
	Budget          string          `json:"budget" binding:"required"`
	UserPreferences UserPreferences `json:"userPreferences"`
}

type UserPreferences struct {
	DiningOptions     DiningOptions     `json:"diningOptions"`
	AttractionOptions AttractionOptions `json:"attractionOptions"`
}

type DiningOptions struct {
	Type       string `json:"type" binding:"required"`
	Cuisine    string `json:"cuisine" binding:"required"`
	PriceRange string `json:"priceRange" binding:"required"`
}

type AttractionOptions struct {
	Type       string `json:"type" binding:"required"`
	PriceRange string `json:"priceRange" binding:"required"`
}

// NewEmptyItineraryInput returns the initial tree: every leaf present and empty.
func NewEmptyItineraryInput() ItineraryInput {
	return ItineraryInput{
		UserPreferences: UserPreferences{
			DiningOptions:     DiningOptions{},
			AttractionOptions: AttractionOptions{},
		},
	}
}

type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}
