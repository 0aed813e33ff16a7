package utils

import (
	"context"
	"errors"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"

	openai "github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIItineraryClient generates the recommendation with a chat completion.
type OpenAIItineraryClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIItineraryClient(apiKey, model string) *OpenAIItineraryClient {
	return NewOpenAIItineraryClientWithConfig(openai.DefaultConfig(apiKey), model)
}

func NewOpenAIItineraryClientWithConfig(cfg openai.ClientConfig, model string) *OpenAIItineraryClient {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIItineraryClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (o *OpenAIItineraryClient) CreateItinerary(ctx context.Context, input request_models.ItineraryInput) (*response_models.CreateItineraryEnvelope, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: itinerarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildItineraryPrompt(input)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("openai: empty completion")
	}
	return envelopeFromText(input, resp.Choices[0].Message.Content), nil
}
