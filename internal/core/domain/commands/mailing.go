package commands

import (
	"context"
	"fmt"
	"strattonbot/internal/core/domain"
	"strattonbot/internal/core/port"
	"strattonbot/internal/core/service"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const (
	mailingPrompt     = "Введите сообщение для рассылки:"
	mailingDoneFormat = "Рассылка завершена: доставлено %d, ошибок %d."
)

// MailingHandler prompts the operator for a broadcast payload and fans the
// single follow-up message out to every registered user. Per-recipient
// delivery failures are logged and never abort the batch.
type MailingHandler struct {
	store   port.UserStore
	sender  port.TextSender
	tracker service.StateTracker
	command string
}

func NewMailingHandler(store port.UserStore, sender port.TextSender, tracker service.StateTracker,
	command string) *MailingHandler {
	return &MailingHandler{store: store, sender: sender, tracker: tracker, command: command}
}

func (h *MailingHandler) GetCommand() string {
	return h.command
}

func (h *MailingHandler) GetState() domain.ConversationState {
	return domain.AwaitingBroadcastMessage
}

func (h *MailingHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := h.sender.SendMessageRemovingMenu(ctx, message.ChatID, mailingPrompt); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return fmt.Errorf("failed to send broadcast prompt: %w", err)
	}

	h.tracker.Set(message.UserID, domain.AwaitingBroadcastMessage)

	return nil
}

func (h *MailingHandler) Consume(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	// the payload is consumed regardless of its content
	h.tracker.Clear(message.UserID)

	jobID, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("failed to create broadcast id: %w", err)
	}

	l := log.With().
		Str("broadcastId", jobID.String()).
		Int64("operatorId", message.UserID).
		Logger()

	l.Info().Msg("starting broadcast")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	users, err := h.store.ListAll(ctx)
	if err != nil {
		l.Error().Err(err).Msg("failed to read user registry")

		if _, err := h.sender.SendMessage(ctx, message.ChatID, serviceErrorMessage); err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		}

		return nil
	}

	var delivered, failed int
	for _, userID := range users {
		if _, err := h.sender.SendMessage(ctx, userID, message.Text); err != nil {
			l.Error().Err(err).Int64("recipientId", userID).Msg("failed to deliver broadcast")
			failed++
			continue
		}
		delivered++
	}

	l.Info().Int("delivered", delivered).Int("failed", failed).Msg("broadcast finished")

	confirmation := fmt.Sprintf(mailingDoneFormat, delivered, failed)
	if _, err := h.sender.SendMessageWithMenu(ctx, message.ChatID, confirmation, domain.MenuKeyboard); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return fmt.Errorf("failed to send broadcast confirmation: %w", err)
	}

	return nil
}
