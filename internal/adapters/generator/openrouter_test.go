package generator

import (
	"context"
	"errors"
	"strattonbot/internal/core/domain"
	"testing"

	"github.com/revrost/go-openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for the OpenRouterClient interface.
type mockClient struct {
	request                  *openrouter.ChatCompletionRequest
	createChatCompletionFunc func(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

func (m *mockClient) CreateChatCompletion(ctx context.Context,
	ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
	m.request = &ccr
	return m.createChatCompletionFunc(ctx, ccr)
}

func TestGenerateFromPrompt(t *testing.T) {
	testCases := []struct {
		name      string
		prompts   []domain.Prompt
		mockResp  openrouter.ChatCompletionResponse
		mockErr   error
		want      string
		expectErr bool
	}{
		{
			name: "success, single user prompt",
			prompts: []domain.Prompt{
				{Prompt: "привет", Author: domain.User},
			},
			mockResp: openrouter.ChatCompletionResponse{
				Choices: []openrouter.ChatCompletionChoice{{
					Message: openrouter.ChatCompletionMessage{
						Content: openrouter.Content{Text: "здравствуйте!"},
					},
				}},
			},
			want: "здравствуйте!",
		},
		{
			name: "success, user and assistant turns",
			prompts: []domain.Prompt{
				{Prompt: "привет", Author: domain.User},
				{Prompt: "здравствуйте", Author: domain.System},
				{Prompt: "как дела?", Author: domain.User},
			},
			mockResp: openrouter.ChatCompletionResponse{
				Choices: []openrouter.ChatCompletionChoice{{
					Message: openrouter.ChatCompletionMessage{
						Content: openrouter.Content{Text: "отлично"},
					},
				}},
			},
			want: "отлично",
		},
		{
			name: "API error returned",
			prompts: []domain.Prompt{
				{Prompt: "fail", Author: domain.User},
			},
			mockErr:   errors.New("api failure"),
			expectErr: true,
		},
		{
			name: "empty choices",
			prompts: []domain.Prompt{
				{Prompt: "привет", Author: domain.User},
			},
			mockResp:  openrouter.ChatCompletionResponse{},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockClient{
				createChatCompletionFunc: func(_ context.Context,
					_ openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
					return tc.mockResp, tc.mockErr
				},
			}
			gen := &OpenRouter{
				client:       mock,
				systemPrompt: "persona",
				model:        "meta-llama/llama-3.2-3b-instruct",
			}

			resp, err := gen.GenerateFromPrompt(context.Background(), tc.prompts)
			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, resp)
		})
	}
}

func TestGenerateFromPromptPrependsPersona(t *testing.T) {
	mock := &mockClient{
		createChatCompletionFunc: func(_ context.Context,
			_ openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
			return openrouter.ChatCompletionResponse{
				Choices: []openrouter.ChatCompletionChoice{{
					Message: openrouter.ChatCompletionMessage{
						Content: openrouter.Content{Text: "ok"},
					},
				}},
			}, nil
		},
	}
	gen := &OpenRouter{
		client:       mock,
		systemPrompt: "Ты — помощник Stratton.",
		model:        "meta-llama/llama-3.2-3b-instruct",
	}

	_, err := gen.GenerateFromPrompt(context.Background(), []domain.Prompt{
		{Prompt: "привет", Author: domain.User},
	})

	require.NoError(t, err)
	require.NotNil(t, mock.request)
	require.Len(t, mock.request.Messages, 2)
	assert.Equal(t, openrouter.ChatMessageRoleSystem, mock.request.Messages[0].Role)
	assert.Equal(t, "Ты — помощник Stratton.", mock.request.Messages[0].Content.Text)
	assert.Equal(t, openrouter.ChatMessageRoleUser, mock.request.Messages[1].Role)
	assert.Equal(t, "meta-llama/llama-3.2-3b-instruct", mock.request.Model)
}
