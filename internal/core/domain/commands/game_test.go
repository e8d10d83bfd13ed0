package commands

import (
	"context"
	"strattonbot/internal/core/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameSendsChoiceKeyboard(t *testing.T) {
	ms := &MockTextSender{}
	h := NewGameHandler(ms, "/game")

	err := h.Respond(context.Background(), time.Minute, &domain.Message{ChatID: 1, Text: "/game"})

	require.NoError(t, err)
	require.Len(t, ms.Messages, 1)
	assert.Equal(t, choosePrompt, ms.Messages[0].Text)
	assert.Equal(t, gameKeyboard, ms.Messages[0].Choices)
}

func TestGameCallbackResolvesRound(t *testing.T) {
	testCases := []struct {
		name      string
		payload   string
		botChoice domain.GameChoice
		want      string
	}{
		{
			name:      "draw",
			payload:   "rock",
			botChoice: domain.Rock,
			want:      "Вы выбрали: Камень\nБот выбрал: Камень\nРезультат: Ничья!",
		},
		{
			name:      "user wins",
			payload:   "scissors",
			botChoice: domain.Paper,
			want:      "Вы выбрали: Ножницы\nБот выбрал: Бумага\nРезультат: Вы победили!",
		},
		{
			name:      "bot wins",
			payload:   "paper",
			botChoice: domain.Scissors,
			want:      "Вы выбрали: Бумага\nБот выбрал: Ножницы\nРезультат: Бот победил!",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ms := &MockTextSender{}
			h := NewGameHandler(ms, "/game")
			h.draw = func() domain.GameChoice { return tc.botChoice }

			err := h.RespondCallback(context.Background(), time.Minute,
				&domain.Callback{ID: "cb1", Data: tc.payload, ChatID: 1, MessageID: 7})

			require.NoError(t, err)
			require.Len(t, ms.Messages, 1)
			assert.Equal(t, tc.want, ms.Messages[0].Text)
			assert.True(t, ms.Messages[0].Edited)
			assert.Equal(t, 7, ms.Messages[0].MessageID)
		})
	}
}

func TestGameCallbackRerendersKeyboard(t *testing.T) {
	ms := &MockTextSender{}
	h := NewGameHandler(ms, "/game")
	h.draw = func() domain.GameChoice { return domain.Rock }

	err := h.RespondCallback(context.Background(), time.Minute,
		&domain.Callback{ID: "cb1", Data: "paper", ChatID: 1, MessageID: 7})

	require.NoError(t, err)
	require.Len(t, ms.Messages, 1)
	assert.Equal(t, gameKeyboard, ms.Messages[0].Choices)
}

func TestGameCallbackIgnoresUnknownPayload(t *testing.T) {
	ms := &MockTextSender{}
	h := NewGameHandler(ms, "/game")

	err := h.RespondCallback(context.Background(), time.Minute,
		&domain.Callback{ID: "cb1", Data: "bogus", ChatID: 1, MessageID: 7})

	require.NoError(t, err)
	assert.Empty(t, ms.Messages)
}

func TestGamePayloads(t *testing.T) {
	h := NewGameHandler(&MockTextSender{}, "/game")

	assert.ElementsMatch(t, []string{"rock", "scissors", "paper"}, h.GetPayloads())
}
