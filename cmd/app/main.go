package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"tripplanner/cmd/fx/archive_fx"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/form_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/logger_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/config"
	"tripplanner/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		itinerary_fx.Module,
		archive_fx.Module,
		form_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	formController *controllers.FormController,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, formController, itineraryController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	formController *controllers.FormController,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) {

	r.GET("/healthz", healthController.Healthz)

	formGroup := r.Group("/forms")
	formGroup.GET("/schema", formController.GetFormSchema)
	formGroup.POST("", formController.CreateFormSession)
	formGroup.GET("/:sessionId", formController.GetFormSession)
	formGroup.PATCH("/:sessionId/fields", formController.UpdateFormField)
	formGroup.POST("/:sessionId/submit", formController.SubmitForm)
	formGroup.POST("/:sessionId/close", formController.CloseItinerary)
	formGroup.DELETE("/:sessionId", formController.DeleteFormSession)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.GET("", itineraryController.ListItineraries)
	itineraryGroup.GET("/:itineraryId", itineraryController.GetItineraryById)
}
