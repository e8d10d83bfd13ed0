package commands

import (
	"context"
	"fmt"
	"strattonbot/internal/core/domain"
	"strattonbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

const welcomeMessage = `Привет! Я бот, который может:
🪨✂️📜 Играть в камень-ножницы-бумагу — /game
📖🔍 Искать информацию в Википедии — /wiki
📩📢 Отправлять рассылку — /mailing
👥📜 Показать всех пользователей — /show_all

Просто выбери команду из меню или напиши мне что-нибудь! 😊`

const serviceErrorMessage = "Извините, произошла ошибка. Попробуйте позже."

// StartHandler registers the sender in the user registry and renders the main
// menu. It also owns the back_to_menu callback, which re-renders the menu
// without touching the registry.
type StartHandler struct {
	store   port.UserStore
	sender  port.TextSender
	command string
}

func NewStartHandler(store port.UserStore, sender port.TextSender, command string) *StartHandler {
	return &StartHandler{store: store, sender: sender, command: command}
}

func (h *StartHandler) GetCommand() string {
	return h.command
}

func (h *StartHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	created, err := h.store.Register(ctx, message.UserID)
	if err != nil {
		l.Error().Err(err).Msg("failed to register user")

		if _, err := h.sender.SendMessage(ctx, message.ChatID, serviceErrorMessage); err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		}

		return nil
	}

	if created {
		l.Info().Int64("userId", message.UserID).Msg("registered new user")
	}

	if _, err := h.sender.SendMessageWithMenu(ctx, message.ChatID, welcomeMessage, domain.MenuKeyboard); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return fmt.Errorf("failed to send welcome message: %w", err)
	}

	return nil
}

func (h *StartHandler) GetPayloads() []string {
	return []string{"back_to_menu"}
}

func (h *StartHandler) RespondCallback(ctx context.Context, timeout time.Duration,
	callback *domain.Callback) error {
	l := log.With().
		Int64("chatId", callback.ChatID).
		Str("payload", callback.Data).
		Logger()

	l.Info().Msg("handling callback")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := h.sender.SendMessageWithMenu(ctx, callback.ChatID, welcomeMessage, domain.MenuKeyboard); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return fmt.Errorf("failed to re-render menu: %w", err)
	}

	return nil
}
