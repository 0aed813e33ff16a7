package utils

import (
	"context"
	"fmt"
	"strings"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiItineraryClient generates the recommendation with a Gemini model.
type GeminiItineraryClient struct {
	client *genai.Client
	model  string
}

func NewGeminiItineraryClient(ctx context.Context, apiKey, model string) (*GeminiItineraryClient, error) {
	if model == "" {
		model = DefaultGeminiModel // free tier
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiItineraryClient{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiItineraryClient) CreateItinerary(ctx context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0.4)
	m.SystemInstruction = genai.NewUserContent(genai.Text(itinerarySystemPrompt))

	resp, err := m.GenerateContent(ctx, genai.Text(buildItineraryPrompt(input)))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: no content")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return envelopeFromText(input, text.String()), nil
}

func (g *GeminiItineraryClient) Close() error {
	return g.client.Close()
}
