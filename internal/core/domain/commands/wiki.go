package commands

import (
	"context"
	"fmt"
	"strattonbot/internal/core/domain"
	"strattonbot/internal/core/port"
	"strattonbot/internal/core/service"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	wikiPrompt           = "Введите запрос для поиска в Википедии:"
	lookupResultFormat   = "📚 Результат поиска:\n\n%s\n\n🔗 Источник: %s"
	lookupNotFound       = "❌ По вашему запросу ничего не найдено."
	disambiguationFormat = "🔍 Уточните запрос. Возможные варианты:\n\n%s"
	lookupErrorFormat    = "⚠️ Произошла ошибка при поиске: %s"
)

// maxCandidates bounds how many disambiguation options are shown to the user.
const maxCandidates = 5

// WikiHandler prompts for a lookup query and consumes the single follow-up
// message while the AwaitingWikiQuery state is pending.
type WikiHandler struct {
	resolver port.PageResolver
	sender   port.TextSender
	tracker  service.StateTracker
	command  string
}

func NewWikiHandler(resolver port.PageResolver, sender port.TextSender, tracker service.StateTracker,
	command string) *WikiHandler {
	return &WikiHandler{resolver: resolver, sender: sender, tracker: tracker, command: command}
}

func (h *WikiHandler) GetCommand() string {
	return h.command
}

func (h *WikiHandler) GetState() domain.ConversationState {
	return domain.AwaitingWikiQuery
}

func (h *WikiHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := h.sender.SendMessage(ctx, message.ChatID, wikiPrompt); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return fmt.Errorf("failed to send lookup prompt: %w", err)
	}

	h.tracker.Set(message.UserID, domain.AwaitingWikiQuery)

	return nil
}

func (h *WikiHandler) Consume(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("query", message.Text).
		Logger()

	l.Info().Msg("handling lookup query")

	// exactly one follow-up message is consumed, whatever happens next
	h.tracker.Clear(message.UserID)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := h.resolver.Resolve(ctx, message.Text)

	l.Debug().Int("kind", int(result.Kind)).Msg("lookup resolved")

	if _, err := h.sender.SendMessage(ctx, message.ChatID, formatLookup(result)); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return fmt.Errorf("failed to send lookup result: %w", err)
	}

	return nil
}

func formatLookup(result domain.LookupResult) string {
	switch result.Kind {
	case domain.PageFound:
		return fmt.Sprintf(lookupResultFormat, result.Summary, result.URL)
	case domain.Disambiguation:
		candidates := result.Candidates
		if len(candidates) > maxCandidates {
			candidates = candidates[:maxCandidates]
		}
		return fmt.Sprintf(disambiguationFormat, strings.Join(candidates, "\n"))
	case domain.LookupFailed:
		return fmt.Sprintf(lookupErrorFormat, result.Reason)
	default:
		return lookupNotFound
	}
}
