package services_test

import (
	"context"
	"sync"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// stubClient answers CreateItinerary with fn and records every payload.
type stubClient struct {
	mu    sync.Mutex
	calls []request_models.ItineraryInput
	fn    func(ctx context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error)
}

func (s *stubClient) CreateItinerary(ctx context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
	s.mu.Lock()
	s.calls = append(s.calls, input)
	s.mu.Unlock()
	return s.fn(ctx, input)
}

func (s *stubClient) Calls() []request_models.ItineraryInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]request_models.ItineraryInput(nil), s.calls...)
}

var _ utils.ItineraryClientInterface = (*stubClient)(nil)

// blockingClient holds every call until release is closed, then answers with fn.
func blockingClient(release <-chan struct{}, fn func(ctx context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error)) *stubClient {
	return &stubClient{fn: func(ctx context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
		<-release
		return fn(ctx, input)
	}}
}

func echoEnvelope(id, description string) func(context.Context, request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
	return func(_ context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
		dining := input.UserPreferences.DiningOptions
		attraction := input.UserPreferences.AttractionOptions
		return &response_models.CreateItineraryEnvelope{
			CreateItinerary: &response_models.ItineraryRecord{
				ID:          id,
				Title:       input.Title,
				Destination: input.Destination,
				Duration:    response_models.FlexString(input.Duration),
				Budget:      response_models.FlexString(input.Budget),
				UserPreferences: &response_models.UserPreferencesRecord{
					DiningOptions:     &dining,
					AttractionOptions: &attraction,
				},
				RecommendedItineraryDescription: description,
			},
		}, nil
	}
}

func failWith(err error) func(context.Context, request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
	return func(context.Context, request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
		return nil, err
	}
}

func completeTree() request_models.ItineraryInput {
	return request_models.ItineraryInput{
		Destination: "Paris",
		Duration:    "48",
		Budget:      "1500",
		UserPreferences: request_models.UserPreferences{
			DiningOptions:     request_models.DiningOptions{Type: "restaurant", Cuisine: "italian", PriceRange: "2"},
			AttractionOptions: request_models.AttractionOptions{Type: "art", PriceRange: "midrange"},
		},
	}
}

type recordingObserver struct {
	mu      sync.Mutex
	results []response_models.ItineraryResult
	err     error
}

func (r *recordingObserver) RecordItinerary(_ context.Context, result response_models.ItineraryResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
	return r.err
}

func (r *recordingObserver) Results() []response_models.ItineraryResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]response_models.ItineraryResult(nil), r.results...)
}
