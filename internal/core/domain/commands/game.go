package commands

import (
	"context"
	"fmt"
	"strattonbot/internal/core/domain"
	"strattonbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

const choosePrompt = "Выберите вариант:"

const gameResultFormat = "Вы выбрали: %s\nБот выбрал: %s\nРезультат: %s"

var gameKeyboard = [][]domain.Choice{
	{
		{Label: domain.Rock.Label(), Data: string(domain.Rock)},
		{Label: domain.Scissors.Label(), Data: string(domain.Scissors)},
		{Label: domain.Paper.Label(), Data: string(domain.Paper)},
	},
	{
		{Label: "🔙 Назад", Data: "back_to_menu"},
	},
}

// GameHandler renders the rock-paper-scissors keyboard and resolves rounds
// from its callback payloads. The result message edits the originating
// message and re-renders the keyboard so the user can play again.
type GameHandler struct {
	sender  port.TextSender
	command string
	draw    func() domain.GameChoice
}

func NewGameHandler(sender port.TextSender, command string) *GameHandler {
	return &GameHandler{sender: sender, command: command, draw: domain.RandomChoice}
}

func (h *GameHandler) GetCommand() string {
	return h.command
}

func (h *GameHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := h.sender.SendMessageWithChoices(ctx, message.ChatID, choosePrompt, gameKeyboard); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return fmt.Errorf("failed to send game keyboard: %w", err)
	}

	return nil
}

func (h *GameHandler) GetPayloads() []string {
	return []string{string(domain.Rock), string(domain.Scissors), string(domain.Paper)}
}

func (h *GameHandler) RespondCallback(ctx context.Context, timeout time.Duration,
	callback *domain.Callback) error {
	l := log.With().
		Int64("chatId", callback.ChatID).
		Str("payload", callback.Data).
		Logger()

	l.Info().Msg("handling callback")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if !domain.IsGameChoice(callback.Data) {
		l.Warn().Msg("ignoring unknown game payload")
		return nil
	}

	userChoice := domain.GameChoice(callback.Data)
	botChoice := h.draw()
	outcome := domain.Resolve(userChoice, botChoice)

	l.Debug().
		Str("botChoice", string(botChoice)).
		Stringer("outcome", outcome).
		Msg("round resolved")

	text := fmt.Sprintf(gameResultFormat, userChoice.Label(), botChoice.Label(), outcome)

	err := h.sender.EditMessageWithChoices(ctx, callback.ChatID, callback.MessageID, text, gameKeyboard)
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return fmt.Errorf("failed to send game result: %w", err)
	}

	return nil
}
