package services

import (
	"context"
	"encoding/json"
	"fmt"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type ArchiveServiceInterface interface {
	SubmissionObserver
	GetItinerary(ctx context.Context, itineraryId string) (*response_models.ArchivedItineraryResponse, error)
	ListItineraries(ctx context.Context, page, pageSize int) ([]response_models.ArchivedItineraryResponse, error)
}

// ArchiveService stores generated itineraries. With a nil repository the
// archive is disabled: recording is skipped and reads fail with ErrArchiveDisabled.
type ArchiveService struct {
	repo repositories.ItineraryRepository
}

func NewArchiveService(repo repositories.ItineraryRepository) ArchiveServiceInterface {
	return &ArchiveService{repo: repo}
}

func (a *ArchiveService) RecordItinerary(ctx context.Context, result response_models.ItineraryResult) error {
	if a.repo == nil {
		return nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	row := &dbm.Itinerary{
		ItineraryID: result.ID,
		Title:       result.Title,
		Destination: result.Destination,
		Duration:    result.Duration,
		Budget:      result.Budget,
		Description: result.RecommendedDescription,
		Result:      raw,
	}
	if err := a.repo.SaveItinerary(ctx, row); err != nil {
		return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	return nil
}

func (a *ArchiveService) GetItinerary(ctx context.Context, itineraryId string) (*response_models.ArchivedItineraryResponse, error) {
	if a.repo == nil {
		return nil, utils.ErrArchiveDisabled
	}
	row, err := a.repo.GetItineraryByItineraryId(ctx, itineraryId)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if row == nil {
		return nil, utils.ErrItineraryNotFound
	}
	out, err := toArchivedResponse(*row)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArchiveService) ListItineraries(ctx context.Context, page, pageSize int) ([]response_models.ArchivedItineraryResponse, error) {
	if a.repo == nil {
		return nil, utils.ErrArchiveDisabled
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	rows, err := a.repo.ListItineraries(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	out := make([]response_models.ArchivedItineraryResponse, 0, len(rows))
	for _, row := range rows {
		item, err := toArchivedResponse(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func toArchivedResponse(row dbm.Itinerary) (response_models.ArchivedItineraryResponse, error) {
	var result response_models.ItineraryResult
	if err := json.Unmarshal(row.Result, &result); err != nil {
		return response_models.ArchivedItineraryResponse{}, fmt.Errorf("%w: decode archived result: %w", utils.ErrDatabaseError, err)
	}
	return response_models.ArchivedItineraryResponse{
		ItineraryResult: result,
		CreatedAt:       utils.FormatRFC3339(row.CreatedAt),
	}, nil
}
