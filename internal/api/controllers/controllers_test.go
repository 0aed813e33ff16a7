package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoClient struct{}

func (echoClient) CreateItinerary(_ context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
	dining := input.UserPreferences.DiningOptions
	attraction := input.UserPreferences.AttractionOptions
	return &response_models.CreateItineraryEnvelope{
		CreateItinerary: &response_models.ItineraryRecord{
			ID:          "it-100",
			Title:       input.Title,
			Destination: input.Destination,
			Duration:    response_models.FlexString(input.Duration),
			Budget:      response_models.FlexString(input.Budget),
			UserPreferences: &response_models.UserPreferencesRecord{
				DiningOptions:     &dining,
				AttractionOptions: &attraction,
			},
			RecommendedItineraryDescription: "Harbour walk\nFish market",
		},
	}, nil
}

type envelope[T any] struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := utils.FixedClock(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	store := mem.NewTTLStore[*services.FormSession](time.Hour)
	archive := services.NewArchiveService(nil)
	submitter := services.NewSubmissionService(echoClient{}, clock, archive, zap.NewNop())
	formService := services.NewFormService(store, submitter, services.NewRequiredFieldValidator(), clock, zap.NewNop())

	form := controllers.NewFormController(formService, zap.NewNop())
	itineraries := controllers.NewItineraryController(archive, zap.NewNop())
	health := controllers.NewHealthController(nil)

	r := gin.New()
	r.GET("/healthz", health.Healthz)
	r.GET("/forms/schema", form.GetFormSchema)
	r.POST("/forms", form.CreateFormSession)
	r.GET("/forms/:sessionId", form.GetFormSession)
	r.PATCH("/forms/:sessionId/fields", form.UpdateFormField)
	r.POST("/forms/:sessionId/submit", form.SubmitForm)
	r.POST("/forms/:sessionId/close", form.CloseItinerary)
	r.DELETE("/forms/:sessionId", form.DeleteFormSession)
	r.GET("/itineraries", itineraries.ListItineraries)
	r.GET("/itineraries/:itineraryId", itineraries.GetItineraryById)
	return r
}

func do[T any](t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope[T]) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out envelope[T]
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestFormController_FullFlow(t *testing.T) {
	r := newRouter(t)

	code, created := do[response_models.FormSessionResponse](t, r, http.MethodPost, "/forms", nil)
	require.Equal(t, http.StatusCreated, code)
	id := created.Data.SessionID
	require.NotEmpty(t, id)
	assert.Equal(t, response_models.ViewForm, created.Data.View)
	assert.True(t, created.Data.CanSubmit)

	fields := map[string]string{
		request_models.FieldDestination:          "Lisbon",
		request_models.FieldDuration:             "10",
		request_models.FieldBudget:               "250",
		request_models.FieldDiningType:           "restaurant",
		request_models.FieldDiningCuisine:        "mediterranean",
		request_models.FieldDiningPriceRange:     "2",
		request_models.FieldAttractionType:       "outdoor",
		request_models.FieldAttractionPriceRange: "budget",
	}
	for field, value := range fields {
		code, _ := do[response_models.FormSessionResponse](t, r, http.MethodPatch, "/forms/"+id+"/fields",
			request_models.UpdateFieldRequest{Field: field, Value: value})
		require.Equal(t, http.StatusOK, code, field)
	}

	code, submitted := do[response_models.FormSessionResponse](t, r, http.MethodPost, "/forms/"+id+"/submit", nil)
	require.Equal(t, http.StatusAccepted, code)
	assert.Contains(t, []string{response_models.ViewPending, response_models.ViewResult}, submitted.Data.View)

	var session response_models.FormSessionResponse
	require.Eventually(t, func() bool {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/forms/"+id, nil))
		var got envelope[response_models.FormSessionResponse]
		if w.Code != http.StatusOK || json.Unmarshal(w.Body.Bytes(), &got) != nil {
			return false
		}
		session = got.Data
		return session.View == response_models.ViewResult
	}, 2*time.Second, 5*time.Millisecond)

	require.NotNil(t, session.Itinerary)
	assert.Equal(t, "it-100", session.Itinerary.ID)
	assert.Equal(t, "Lisbon 2025", session.Itinerary.Title)
	assert.Equal(t, []string{"Harbour walk", "Fish market"}, session.Itinerary.Paragraphs)
	assert.Equal(t, request_models.NewEmptyItineraryInput(), session.Form)
	assert.False(t, session.CanSubmit)

	code, closed := do[response_models.FormSessionResponse](t, r, http.MethodPost, "/forms/"+id+"/close", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, response_models.ViewForm, closed.Data.View)
	assert.Nil(t, closed.Data.Itinerary)

	code, _ = do[any](t, r, http.MethodDelete, "/forms/"+id, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = do[any](t, r, http.MethodGet, "/forms/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestFormController_Errors(t *testing.T) {
	r := newRouter(t)
	_, created := do[response_models.FormSessionResponse](t, r, http.MethodPost, "/forms", nil)
	id := created.Data.SessionID

	code, _ := do[any](t, r, http.MethodPatch, "/forms/"+id+"/fields", map[string]string{"value": "x"})
	assert.Equal(t, http.StatusBadRequest, code, "missing field identifier")

	code, body := do[any](t, r, http.MethodPatch, "/forms/"+id+"/fields",
		request_models.UpdateFieldRequest{Field: "userPreferences.hotelOptions.stars", Value: "5"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Message, "unknown form field")

	code, _ = do[any](t, r, http.MethodPatch, "/forms/"+id+"/fields",
		request_models.UpdateFieldRequest{Field: "title", Value: "Mine"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do[any](t, r, http.MethodPost, "/forms/"+id+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Message, "destination")

	code, _ = do[any](t, r, http.MethodPost, "/forms/"+id+"/close", nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = do[any](t, r, http.MethodGet, "/forms/unknown", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestFormController_Schema(t *testing.T) {
	r := newRouter(t)

	code, body := do[response_models.FormSchemaResponse](t, r, http.MethodGet, "/forms/schema", nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Fields, 8)
	assert.Equal(t, request_models.FieldDestination, body.Data.Fields[0].ID)
}

func TestItineraryController_ArchiveDisabled(t *testing.T) {
	r := newRouter(t)

	code, _ := do[any](t, r, http.MethodGet, "/itineraries", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	code, _ = do[any](t, r, http.MethodGet, "/itineraries/it-1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	code, _ = do[any](t, r, http.MethodGet, "/itineraries?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealthController_NoArchive(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","archive":"disabled"}`, w.Body.String())
}
