package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"
)

// ItineraryClientInterface is the remote CreateItinerary boundary.
type ItineraryClientInterface interface {
	CreateItinerary(ctx context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error)
}

const CreateItineraryMutation = `
mutation CreateItinerary($itineraryInput: ItineraryInput!) {
  createItinerary(itineraryInput: $itineraryInput) {
    id
    title
    destination
    duration
    budget
    userPreferences {
      diningOptions {
        type
        cuisine
        priceRange
      }
      attractionOptions {
        type
        priceRange
      }
    }
    recommendedItineraryDescription
  }
}`

const DefaultGraphQLEndpoint = "http://localhost:9000/graphql"

// GraphQLItineraryClient sends the CreateItinerary mutation to a GraphQL server.
type GraphQLItineraryClient struct {
	client *graphql.Client
}

func NewGraphQLItineraryClient(endpoint string, timeout time.Duration, logger *zap.Logger) *GraphQLItineraryClient {
	if endpoint == "" {
		endpoint = DefaultGraphQLEndpoint
	}
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: statusCheckTransport{next: http.DefaultTransport},
	}
	client := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	client.Log = func(s string) {
		logger.Debug("graphql", zap.String("msg", s))
	}
	return &GraphQLItineraryClient{client: client}
}

func (g *GraphQLItineraryClient) CreateItinerary(ctx context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
	req := graphql.NewRequest(CreateItineraryMutation)
	req.Var("itineraryInput", input)

	var envelope response_models.CreateItineraryEnvelope
	if err := g.client.Run(ctx, req, &envelope); err != nil {
		if isDecodeError(err) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return nil, err
	}
	return &envelope, nil
}

// isDecodeError reports whether the response arrived but did not fit the
// envelope, as opposed to the call itself failing.
func isDecodeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	return errors.As(err, &typeErr) || errors.As(err, &syntaxErr)
}

// HTTPStatusError reports a non-2xx answer from the itinerary service.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("itinerary service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("itinerary service returned %d: %s", e.StatusCode, e.Body)
}

// statusCheckTransport fails non-2xx responses before the GraphQL client
// tries to decode them. Unlike a plain http.RoundTripper it returns an error
// together with no response when the server did answer; the body is closed
// here since http.Client will not close it. graphql.Client only
// accepts an *http.Client, so the check cannot sit around Client.Do.
type statusCheckTransport struct {
	next http.RoundTripper
}

func (t statusCheckTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	res, err := t.next.RoundTrip(r)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		defer res.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, &HTTPStatusError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return res, nil
}

type timeoutItineraryClient struct {
	next    ItineraryClientInterface
	timeout time.Duration
}

// WithTimeout bounds every CreateItinerary call of next by timeout. A
// non-positive timeout returns next unchanged.
func WithTimeout(next ItineraryClientInterface, timeout time.Duration) ItineraryClientInterface {
	if timeout <= 0 {
		return next
	}
	return &timeoutItineraryClient{next: next, timeout: timeout}
}

func (t *timeoutItineraryClient) CreateItinerary(ctx context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.CreateItinerary(ctx, input)
}
