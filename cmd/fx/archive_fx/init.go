package archive_fx

import (
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideItineraryRepo, provideArchiveService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	if db == nil {
		return nil
	}
	return repositories.NewItineraryRepository(db)
}

func provideArchiveService(repo repositories.ItineraryRepository) services.ArchiveServiceInterface {
	return services.NewArchiveService(repo)
}
