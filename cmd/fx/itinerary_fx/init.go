package itinerary_fx

import (
	"context"
	"fmt"
	"tripplanner/internal/config"
	"tripplanner/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	ProvideItineraryClient)

// ProvideItineraryClient creates the itinerary backend selected by ITINERARY_PROVIDER
func ProvideItineraryClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.ItineraryClientInterface, error) {
	logger.Info("initializing itinerary client",
		zap.String("provider", cfg.ItineraryProvider),
		zap.Duration("timeout", cfg.ItineraryTimeout))

	switch cfg.ItineraryProvider {
	case "graphql":
		return utils.NewGraphQLItineraryClient(cfg.GraphQLURL, cfg.ItineraryTimeout, logger), nil
	case "openai":
		return utils.WithTimeout(utils.NewOpenAIItineraryClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), cfg.ItineraryTimeout), nil
	case "gemini":
		client, err := utils.NewGeminiItineraryClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		lc.Append(fx.StopHook(client.Close))
		return utils.WithTimeout(client, cfg.ItineraryTimeout), nil
	default:
		return nil, fmt.Errorf("unsupported itinerary provider: %s. Use 'graphql', 'openai' or 'gemini'", cfg.ItineraryProvider)
	}
}
