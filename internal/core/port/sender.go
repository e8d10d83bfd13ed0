package port

import (
	"context"
	"strattonbot/internal/core/domain"
)

type TextSender interface {
	// SendMessage sends a plain text message to a chat and returns the sent message ID.
	SendMessage(ctx context.Context, chatID int64, text string) (int, error)
	// SendMessageWithMenu sends a text message together with a persistent reply menu.
	SendMessageWithMenu(ctx context.Context, chatID int64, text string, menu [][]string) (int, error)
	// SendMessageWithChoices sends a text message with an inline choice keyboard attached.
	SendMessageWithChoices(ctx context.Context, chatID int64, text string, choices [][]domain.Choice) (int, error)
	// SendMessageRemovingMenu sends a text message and removes any visible reply menu.
	SendMessageRemovingMenu(ctx context.Context, chatID int64, text string) (int, error)
	// EditMessageWithChoices replaces the text and inline keyboard of a previously sent message.
	EditMessageWithChoices(ctx context.Context, chatID int64, messageID int, text string,
		choices [][]domain.Choice) error
	// AnswerCallback acknowledges a callback query so the client stops its progress indicator.
	AnswerCallback(ctx context.Context, callbackID string) error
}
