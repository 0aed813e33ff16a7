package controllers

import (
	"net/http"
	"strconv"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ItineraryController struct {
	archiveService services.ArchiveServiceInterface
	logger         *zap.Logger
}

func NewItineraryController(archiveService services.ArchiveServiceInterface, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{
		archiveService: archiveService,
		logger:         logger,
	}
}

// ListItineraries godoc
// @Summary List archived itineraries
// @Tags Itinerary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.ArchivedItineraryResponse
// @Failure 503 {object} utils.APIResponse
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	itineraries, err := i.archiveService.ListItineraries(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}
	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetItineraryById godoc
// @Summary Get an archived itinerary
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ArchivedItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetItineraryById(c *gin.Context) {
	itinerary, err := i.archiveService.GetItinerary(c.Request.Context(), c.Param("itineraryId"))
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}
	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}
