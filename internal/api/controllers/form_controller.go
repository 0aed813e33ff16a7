package controllers

import (
	"net/http"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FormController struct {
	formService services.FormServiceInterface
	logger      *zap.Logger
}

func NewFormController(formService services.FormServiceInterface, logger *zap.Logger) *FormController {
	return &FormController{
		formService: formService,
		logger:      logger,
	}
}

// GetFormSchema godoc
// @Summary Get form fields
// @Description List the editable fields of the itinerary form and their options
// @Tags Form
// @Produce json
// @Success 200 {object} response_models.FormSchemaResponse
// @Router /forms/schema [get]
func (f *FormController) GetFormSchema(c *gin.Context) {
	utils.RespondSuccess(c, response_models.FormSchemaResponse{Fields: f.formService.Schema()}, "Form schema fetched successfully")
}

// CreateFormSession godoc
// @Summary Start a form session
// @Description Create an empty itinerary form
// @Tags Form
// @Produce json
// @Success 201 {object} response_models.FormSessionResponse
// @Router /forms [post]
func (f *FormController) CreateFormSession(c *gin.Context) {
	snapshot, err := f.formService.CreateSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, f.logger, err)
		return
	}
	utils.RespondWithCode(c, http.StatusCreated, toFormSessionResponse(snapshot), "Form session created")
}

// GetFormSession godoc
// @Summary Get a form session
// @Description Fetch the current view, the form values and the itinerary when one is shown
// @Tags Form
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.FormSessionResponse
// @Failure 404 {object} utils.APIResponse
// @Router /forms/{sessionId} [get]
func (f *FormController) GetFormSession(c *gin.Context) {
	snapshot, err := f.formService.GetSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, f.logger, err)
		return
	}
	utils.RespondSuccess(c, toFormSessionResponse(snapshot), "Form session fetched successfully")
}

// UpdateFormField godoc
// @Summary Update a form field
// @Description Set one field, top-level ("destination") or nested ("userPreferences.diningOptions.cuisine")
// @Tags Form
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.UpdateFieldRequest true "Field identifier and value"
// @Success 200 {object} response_models.FormSessionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /forms/{sessionId}/fields [patch]
func (f *FormController) UpdateFormField(c *gin.Context) {
	var req request_models.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "field is required")
		return
	}

	snapshot, err := f.formService.UpdateField(c.Request.Context(), c.Param("sessionId"), req.Field, req.Value)
	if err != nil {
		utils.HandleServiceError(c, f.logger, err)
		return
	}
	utils.RespondSuccess(c, toFormSessionResponse(snapshot), "Field updated")
}

// SubmitForm godoc
// @Summary Submit the form
// @Description Start itinerary generation; poll the session until the view leaves "pending"
// @Tags Form
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 202 {object} response_models.FormSessionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /forms/{sessionId}/submit [post]
func (f *FormController) SubmitForm(c *gin.Context) {
	snapshot, err := f.formService.Submit(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, f.logger, err)
		return
	}
	utils.RespondWithCode(c, http.StatusAccepted, toFormSessionResponse(snapshot), "Creating your itinerary...")
}

// CloseItinerary godoc
// @Summary Close the itinerary
// @Description Return from the itinerary view to the form
// @Tags Form
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.FormSessionResponse
// @Failure 409 {object} utils.APIResponse
// @Router /forms/{sessionId}/close [post]
func (f *FormController) CloseItinerary(c *gin.Context) {
	snapshot, err := f.formService.CloseResult(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, f.logger, err)
		return
	}
	utils.RespondSuccess(c, toFormSessionResponse(snapshot), "Itinerary closed")
}

// DeleteFormSession godoc
// @Summary Delete a form session
// @Tags Form
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /forms/{sessionId} [delete]
func (f *FormController) DeleteFormSession(c *gin.Context) {
	if err := f.formService.DeleteSession(c.Request.Context(), c.Param("sessionId")); err != nil {
		utils.HandleServiceError(c, f.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Form session deleted")
}

func toFormSessionResponse(snapshot services.FormSnapshot) response_models.FormSessionResponse {
	resp := response_models.FormSessionResponse{
		SessionID: snapshot.ID,
		View:      snapshot.View.Name(),
		Form:      snapshot.Tree,
		CanSubmit: snapshot.CanSubmit(),
		UpdatedAt: utils.FormatRFC3339(snapshot.UpdatedAt),
	}

	switch view := snapshot.View.(type) {
	case services.FormView:
		resp.ErrorMessage = view.ErrorMessage
	case services.ResultView:
		resp.Itinerary = &response_models.ItineraryView{
			ItineraryResult: view.Result,
			Paragraphs:      view.Result.Paragraphs(),
		}
	}
	return resp
}
