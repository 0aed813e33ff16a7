package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripplanner/internal/models/db_models"
)

type ItineraryRepository interface {
	SaveItinerary(ctx context.Context, itinerary *dbm.Itinerary) error
	GetItineraryByItineraryId(ctx context.Context, itineraryId string) (*dbm.Itinerary, error)
	ListItineraries(ctx context.Context, page int, pageSize int) ([]dbm.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// SaveItinerary inserts the itinerary; a second save of the same service id
// overwrites the stored copy.
func (r *itineraryRepository) SaveItinerary(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "itinerary_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "destination", "duration", "budget", "description", "result"}),
		}).
		Create(itinerary).Error
}

func (r *itineraryRepository) GetItineraryByItineraryId(ctx context.Context, itineraryId string) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).First(&itinerary, "itinerary_id = ?", itineraryId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListItineraries(ctx context.Context, page int, pageSize int) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}
