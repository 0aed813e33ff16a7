package request_models

// Field identifiers accepted by the form session.
const (
	FieldDestination = "destination"
	FieldDuration    = "duration"
	FieldBudget      = "budget"
	FieldTitle       = "title"

	PreferencesNamespace = "userPreferences"
	GroupDining          = "diningOptions"
	GroupAttraction      = "attractionOptions"

	FieldDiningType           = "userPreferences.diningOptions.type"
	FieldDiningCuisine        = "userPreferences.diningOptions.cuisine"
	FieldDiningPriceRange     = "userPreferences.diningOptions.priceRange"
	FieldAttractionType       = "userPreferences.attractionOptions.type"
	FieldAttractionPriceRange = "userPreferences.attractionOptions.priceRange"
)

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormField struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Input    string        `json:"input"` // "text", "number" or "select"
	Required bool          `json:"required"`
	Options  []FieldOption `json:"options,omitempty"`
}

var (
	DiningTypes = []FieldOption{
		{Value: "restaurant", Label: "Restaurant"},
		{Value: "bar", Label: "Bar"},
	}
	Cuisines = []FieldOption{
		{Value: "italian", Label: "Italian"},
		{Value: "mexican", Label: "Mexican"},
		{Value: "japanese", Label: "Japanese"},
		{Value: "mediterranean", Label: "Mediterranean"},
		{Value: "american", Label: "American"},
	}
	DiningPriceRanges = []FieldOption{
		{Value: "1", Label: "$"},
		{Value: "2", Label: "$$"},
		{Value: "3", Label: "$$$"},
		{Value: "4", Label: "$$$$"},
	}
	AttractionTypes = []FieldOption{
		{Value: "art", Label: "Art"},
		{Value: "outdoor", Label: "Outdoor"},
		{Value: "monuments", Label: "Monuments"},
		{Value: "religion", Label: "Religion"},
		{Value: "sports", Label: "Sports"},
		{Value: "city", Label: "City"},
	}
	AttractionPriceRanges = []FieldOption{
		{Value: "budget", Label: "$"},
		{Value: "midrange", Label: "$$"},
		{Value: "highend", Label: "$$$"},
	}
)

// FormSchema lists the editable fields in display order.
func FormSchema() []FormField {
	return []FormField{
		{ID: FieldDestination, Label: "Destination City", Input: "text", Required: true},
		{ID: FieldDuration, Label: "Hours at destination", Input: "number", Required: true},
		{ID: FieldBudget, Label: "Budget for your trip ($)", Input: "number", Required: true},
		{ID: FieldDiningCuisine, Label: "Cuisine", Input: "select", Required: true, Options: Cuisines},
		{ID: FieldDiningType, Label: "Type", Input: "select", Required: true, Options: DiningTypes},
		{ID: FieldDiningPriceRange, Label: "Price", Input: "select", Required: true, Options: DiningPriceRanges},
		{ID: FieldAttractionType, Label: "Type", Input: "select", Required: true, Options: AttractionTypes},
		{ID: FieldAttractionPriceRange, Label: "Price", Input: "select", Required: true, Options: AttractionPriceRanges},
	}
}
