package handler

import (
	"context"
	"strattonbot/internal/core/domain"
	"strattonbot/internal/core/domain/commands"
	"strattonbot/internal/core/port"
	"strattonbot/internal/core/service"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const gameHint = "🎮 Давайте сыграем! Используйте команду /game"

// gameTriggers routes playful free text to the game hint instead of the
// text generator. Matched case-insensitively as substrings.
var gameTriggers = []string{"игра", "поиграть", "сыграем", "game", "играть"}

// Dispatcher routes every inbound event to exactly one handler. Routing
// priority: explicit command, known callback payload, pending conversation
// state, game trigger word, fallback responder. A command always wins over a
// pending state; the abandoned state is left for the tracker to overwrite.
type Dispatcher struct {
	commands  port.CommandRegistry
	callbacks map[string]port.CallbackResponder
	consumers map[domain.ConversationState]port.StateConsumer
	tracker   service.StateTracker
	fallback  port.Command
	sender    port.TextSender
	timeout   time.Duration
}

func NewDispatcher(registry port.CommandRegistry, tracker service.StateTracker, fallback port.Command,
	sender port.TextSender, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		commands:  registry,
		callbacks: make(map[string]port.CallbackResponder),
		consumers: make(map[domain.ConversationState]port.StateConsumer),
		tracker:   tracker,
		fallback:  fallback,
		sender:    sender,
		timeout:   timeout,
	}
}

func (d *Dispatcher) RegisterConsumer(consumer port.StateConsumer) {
	log.Info().Stringer("state", consumer.GetState()).Msg("adding state consumer to dispatcher")
	d.consumers[consumer.GetState()] = consumer
}

func (d *Dispatcher) RegisterCallback(responder port.CallbackResponder) {
	for _, payload := range responder.GetPayloads() {
		log.Info().Str("payload", payload).Msg("adding callback responder to dispatcher")
		d.callbacks[payload] = responder
	}
}

// HandleUpdate is the transport entry point, registered as the bot's default
// handler.
func (d *Dispatcher) HandleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	switch {
	case update.CallbackQuery != nil:
		d.RouteCallback(ctx, toCallback(update.CallbackQuery))
	case update.Message != nil && update.Message.Text != "":
		d.Route(ctx, toMessage(update.Message))
	}
}

func (d *Dispatcher) Route(ctx context.Context, message *domain.Message) {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Int64("userId", message.UserID).
		Logger()

	if strings.HasPrefix(message.Text, "/") {
		cmd := commands.ParseCommand(message.Text)

		if responder, err := d.commands.Get(cmd); err == nil {
			if err := responder.Respond(ctx, d.timeout, message); err != nil {
				l.Error().Err(err).Str("command", cmd).Msg("failed to respond to command")
			}
			return
		}

		l.Debug().Str("command", cmd).Msg("no handler for command")
		// unknown commands fall through to state and free-text routing
	}

	state := d.tracker.Get(message.UserID)
	if consumer, ok := d.consumers[state]; ok {
		if err := consumer.Consume(ctx, d.timeout, message); err != nil {
			l.Error().Err(err).Stringer("state", state).Msg("failed to consume pending state")
		}
		return
	}

	if hasGameTrigger(message.Text) {
		l.Debug().Msg("game trigger matched")

		if _, err := d.sender.SendMessageWithMenu(ctx, message.ChatID, gameHint, domain.MenuKeyboard); err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		}
		return
	}

	if err := d.fallback.Respond(ctx, d.timeout, message); err != nil {
		l.Error().Err(err).Msg("fallback responder failed")
	}
}

func (d *Dispatcher) RouteCallback(ctx context.Context, callback *domain.Callback) {
	l := log.With().
		Str("payload", callback.Data).
		Int64("chatId", callback.ChatID).
		Int64("userId", callback.UserID).
		Logger()

	if responder, ok := d.callbacks[callback.Data]; ok {
		if err := responder.RespondCallback(ctx, d.timeout, callback); err != nil {
			l.Error().Err(err).Msg("failed to respond to callback")
		}
	} else {
		l.Debug().Msg("no responder for callback payload")
	}

	if err := d.sender.AnswerCallback(ctx, callback.ID); err != nil {
		l.Error().Err(err).Msg("failed to answer callback query")
	}
}

func hasGameTrigger(text string) bool {
	lowered := strings.ToLower(text)

	for _, trigger := range gameTriggers {
		if strings.Contains(lowered, trigger) {
			return true
		}
	}

	return false
}

func toMessage(message *models.Message) *domain.Message {
	m := &domain.Message{
		ID:     message.ID,
		ChatID: message.Chat.ID,
		Text:   message.Text,
	}

	if message.From != nil {
		m.UserID = message.From.ID
		m.Username = userNameOrFirstName(message.From)
	}

	return m
}

func toCallback(callback *models.CallbackQuery) *domain.Callback {
	c := &domain.Callback{
		ID:     callback.ID,
		Data:   callback.Data,
		UserID: callback.From.ID,
	}

	if callback.Message.Message != nil {
		c.ChatID = callback.Message.Message.Chat.ID
		c.MessageID = callback.Message.Message.ID
	}

	return c
}

func userNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
