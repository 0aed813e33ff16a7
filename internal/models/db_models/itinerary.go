package db_models

import "gorm.io/datatypes"

// Itinerary is an archived, successfully generated itinerary.
type Itinerary struct {
	BaseModel
	ItineraryID string `gorm:"uniqueIndex;not null"` // id assigned by the itinerary service
	Title       string
	Destination string `gorm:"index"`
	Duration    string
	Budget      string
	Description string         `gorm:"type:text"`
	Result      datatypes.JSON `gorm:"type:jsonb"` // canonical result as served to clients
}
