package commands

import (
	"context"
	"fmt"
	"strattonbot/internal/core/domain"
	"strattonbot/internal/core/port"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	noUsersMessage = "Нет зарегистрированных пользователей."
	userListHeader = "Список ID пользователей:\n"
)

// userChunkSize keeps each listing reply well below the transport message
// size limit.
const userChunkSize = 100

// ShowAllHandler lists every registered user identifier in registration
// order, one reply message per chunk.
type ShowAllHandler struct {
	store   port.UserStore
	sender  port.TextSender
	command string
}

func NewShowAllHandler(store port.UserStore, sender port.TextSender, command string) *ShowAllHandler {
	return &ShowAllHandler{store: store, sender: sender, command: command}
}

func (h *ShowAllHandler) GetCommand() string {
	return h.command
}

func (h *ShowAllHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

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

	if len(users) == 0 {
		if _, err := h.sender.SendMessage(ctx, message.ChatID, noUsersMessage); err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
			return fmt.Errorf("failed to send empty registry notice: %w", err)
		}

		return nil
	}

	for _, chunk := range chunkUsers(users, userChunkSize) {
		ids := make([]string, len(chunk))
		for i, userID := range chunk {
			ids[i] = strconv.FormatInt(userID, 10)
		}

		if _, err := h.sender.SendMessage(ctx, message.ChatID, userListHeader+strings.Join(ids, "\n")); err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
			return fmt.Errorf("failed to send user listing: %w", err)
		}
	}

	return nil
}

func chunkUsers(users []int64, size int) [][]int64 {
	chunks := make([][]int64, 0, (len(users)+size-1)/size)

	for size < len(users) {
		chunks = append(chunks, users[:size])
		users = users[size:]
	}

	return append(chunks, users)
}
