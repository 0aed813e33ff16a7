package form_fx

import (
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	provideClock,
	provideSubmissionService,
	services.NewRequiredFieldValidator,
	provideFormService)

func provideClock() utils.Clock {
	return utils.SystemClock
}

// provideSubmissionService archives every normalized itinerary through the
// archive service.
func provideSubmissionService(
	client utils.ItineraryClientInterface,
	clock utils.Clock,
	archive services.ArchiveServiceInterface,
	logger *zap.Logger,
) services.SubmissionServiceInterface {
	return services.NewSubmissionService(client, clock, archive, logger)
}

// provideFormService drains running submissions on stop, before the archive
// database is closed.
func provideFormService(
	lc fx.Lifecycle,
	sessions mem.SessionStore[*services.FormSession],
	submitter services.SubmissionServiceInterface,
	validator *services.RequiredFieldValidator,
	clock utils.Clock,
	logger *zap.Logger,
) services.FormServiceInterface {
	formService := services.NewFormService(sessions, submitter, validator, clock, logger)
	lc.Append(fx.Hook{
		OnStop: formService.Drain,
	})
	return formService
}
