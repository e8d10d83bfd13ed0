package generator

import (
	"context"
	"errors"
	"fmt"
	"strattonbot/internal/core/domain"

	"github.com/revrost/go-openrouter"
)

type OpenRouterClient interface {
	CreateChatCompletion(ctx context.Context,
		request openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

// OpenRouter generates replies through the OpenRouter chat completion API.
// Every conversation is prefixed with the configured persona prompt.
type OpenRouter struct {
	client       OpenRouterClient
	systemPrompt string
	model        string
}

func NewOpenRouter(apiKey, systemPrompt, model string) *OpenRouter {
	return &OpenRouter{
		systemPrompt: systemPrompt,
		model:        model,
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("strattonbot"),
		),
	}
}

func (c *OpenRouter) GenerateFromPrompt(ctx context.Context, prompts []domain.Prompt) (string, error) {
	messages := make([]openrouter.ChatCompletionMessage, len(prompts)+1)

	messages[0] = openrouter.ChatCompletionMessage{
		Role: openrouter.ChatMessageRoleSystem,
		Content: openrouter.Content{
			Text: c.systemPrompt,
		},
	}

	for i, prompt := range prompts {
		role := openrouter.ChatMessageRoleUser
		if prompt.Author == domain.System {
			role = openrouter.ChatMessageRoleAssistant
		}

		messages[i+1] = openrouter.ChatCompletionMessage{
			Role: role,
			Content: openrouter.Content{
				Text: prompt.Prompt,
			},
		}
	}

	ccr := openrouter.ChatCompletionRequest{
		Messages: messages,
		Model:    c.model,
	}

	resp, err := c.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openrouter returned no choices")
	}

	return resp.Choices[0].Message.Content.Text, nil
}
