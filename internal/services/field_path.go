package services

import (
	"fmt"
	"strings"
	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/utils"
)

// FieldPath identifies one leaf of the preference tree. Group is empty for
// top-level fields, in which case Key holds the identifier verbatim.
type FieldPath struct {
	Group string
	Key   string
}

func (p FieldPath) IsNested() bool { return p.Group != "" }

func (p FieldPath) String() string {
	if !p.IsNested() {
		return p.Key
	}
	return request_models.PreferencesNamespace + "." + p.Group + "." + p.Key
}

// ParseFieldPath resolves a form field identifier. Only
// "userPreferences.<diningOptions|attractionOptions>.<key>" is nested; every other
// identifier is treated as a top-level field name.
func ParseFieldPath(fieldID string) FieldPath {
	parts := strings.Split(fieldID, ".")
	if len(parts) == 3 && parts[0] == request_models.PreferencesNamespace {
		switch parts[1] {
		case request_models.GroupDining, request_models.GroupAttraction:
			return FieldPath{Group: parts[1], Key: parts[2]}
		}
	}
	return FieldPath{Key: fieldID}
}

// ApplyField returns a copy of tree with the identified leaf set to value.
// Unrecognized leaves are rejected and tree is returned as given.
func ApplyField(tree request_models.ItineraryInput, fieldID string, value string) (request_models.ItineraryInput, error) {
	path := ParseFieldPath(fieldID)
	next := tree

	if path.IsNested() {
		if !setPreference(&next.UserPreferences, path, value) {
			return tree, fmt.Errorf("%w: %q", utils.ErrUnknownField, fieldID)
		}
		return next, nil
	}

	switch path.Key {
	case request_models.FieldDestination:
		next.Destination = value
	case request_models.FieldDuration:
		next.Duration = value
	case request_models.FieldBudget:
		next.Budget = value
	case request_models.FieldTitle:
		return tree, fmt.Errorf("%w: %q is derived on submit", utils.ErrFieldNotEditable, fieldID)
	default:
		return tree, fmt.Errorf("%w: %q", utils.ErrUnknownField, fieldID)
	}
	return next, nil
}

func setPreference(prefs *request_models.UserPreferences, path FieldPath, value string) bool {
	switch path.Group {
	case request_models.GroupDining:
		switch path.Key {
		case "type":
			prefs.DiningOptions.Type = value
		case "cuisine":
			prefs.DiningOptions.Cuisine = value
		case "priceRange":
			prefs.DiningOptions.PriceRange = value
		default:
			return false
		}
	case request_models.GroupAttraction:
		switch path.Key {
		case "type":
			prefs.AttractionOptions.Type = value
		case "priceRange":
			prefs.AttractionOptions.PriceRange = value
		default:
			return false
		}
	default:
		return false
	}
	return true
}
