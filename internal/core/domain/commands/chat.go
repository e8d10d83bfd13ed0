package commands

import (
	"context"
	"fmt"
	"strattonbot/internal/core/domain"
	"strattonbot/internal/core/port"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const chatApology = "Извините, не удалось обработать ваш запрос."

// ChatHandler forwards free text to the text generator and relays the reply.
// It serves both as the explicit /chat command and as the dispatcher's
// fallback for unmatched messages; generation failures become a fixed apology
// and are never surfaced to the dispatcher.
type ChatHandler struct {
	generator port.TextGenerator
	sender    port.TextSender
	command   string
}

func NewChatHandler(generator port.TextGenerator, sender port.TextSender, command string) *ChatHandler {
	return &ChatHandler{generator: generator, sender: sender, command: command}
}

func (h *ChatHandler) GetCommand() string {
	return h.command
}

func (h *ChatHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text := message.Text
	if ParseCommand(text) == h.command {
		text = ParseCommandArgs(text)
	}

	if text == "" {
		l.Debug().Msg(domain.ErrEmptyPayload)
		return nil
	}

	prompts := []domain.Prompt{{Author: domain.User, Prompt: text}}

	response, err := h.generator.GenerateFromPrompt(ctx, prompts)
	if err != nil {
		l.Error().Err(err).Msg("failed to generate reply")

		if _, err := h.sender.SendMessage(ctx, message.ChatID, chatApology); err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		}

		return nil
	}

	l.Debug().Msg("reply generated")

	if _, err := h.sender.SendMessage(ctx, message.ChatID, strings.TrimSpace(response)); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return fmt.Errorf("failed to send generated reply: %w", err)
	}

	return nil
}
