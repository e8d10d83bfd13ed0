package port

import (
	"context"
	"strattonbot/internal/core/domain"
	"time"
)

type Command interface {
	// Respond processes a given message within a specified timeout and responds to the originating chat.
	Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error
	// GetCommand retrieves the command identifier associated with a specific command handler.
	GetCommand() string
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command based on its string identifier or returns an error if not found.
	Get(command string) (Command, error)
	// ListCommands returns a list of all command identifiers currently registered in the command registry.
	ListCommands() []string
}

type StateConsumer interface {
	// Consume handles the single follow-up message a pending conversation state is waiting for.
	// Implementations must clear the pending state before returning.
	Consume(ctx context.Context, timeout time.Duration, message *domain.Message) error
	// GetState retrieves the conversation state this consumer is responsible for.
	GetState() domain.ConversationState
}

type CallbackResponder interface {
	// RespondCallback handles a pressed inline keyboard button.
	RespondCallback(ctx context.Context, timeout time.Duration, callback *domain.Callback) error
	// GetPayloads retrieves the callback payloads this responder accepts.
	GetPayloads() []string
}
