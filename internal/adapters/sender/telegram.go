package sender

import (
	"context"
	"strattonbot/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// TelegramMessageLimit is the maximum message length accepted by the Bot API.
const TelegramMessageLimit = 4096

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

type TelegramSender struct {
	bot TelegramBot
}

func NewTelegramSender(bot TelegramBot) *TelegramSender {
	return &TelegramSender{bot: bot}
}

func (s *TelegramSender) SendMessage(ctx context.Context, chatID int64, text string) (int, error) {
	return s.send(ctx, chatID, text, nil)
}

func (s *TelegramSender) SendMessageWithMenu(ctx context.Context, chatID int64, text string,
	menu [][]string) (int, error) {
	rows := make([][]models.KeyboardButton, len(menu))
	for i, row := range menu {
		buttons := make([]models.KeyboardButton, len(row))
		for j, label := range row {
			buttons[j] = models.KeyboardButton{Text: label}
		}
		rows[i] = buttons
	}

	return s.send(ctx, chatID, text, &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	})
}

func (s *TelegramSender) SendMessageWithChoices(ctx context.Context, chatID int64, text string,
	choices [][]domain.Choice) (int, error) {
	return s.send(ctx, chatID, text, inlineKeyboard(choices))
}

func (s *TelegramSender) SendMessageRemovingMenu(ctx context.Context, chatID int64, text string) (int, error) {
	return s.send(ctx, chatID, text, &models.ReplyKeyboardRemove{RemoveKeyboard: true})
}

func (s *TelegramSender) EditMessageWithChoices(ctx context.Context, chatID int64, messageID int, text string,
	choices [][]domain.Choice) error {
	_, err := s.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ReplyMarkup: inlineKeyboard(choices),
	})
	if err != nil {
		log.Error().Err(err).Int64("chatId", chatID).Msg("failed to edit message")
		return err
	}

	return nil
}

func (s *TelegramSender) AnswerCallback(ctx context.Context, callbackID string) error {
	_, err := s.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})

	return err
}

// send transmits text in Bot API sized chunks, attaching the reply markup to
// the last chunk only. Returns the ID of the last sent message.
func (s *TelegramSender) send(ctx context.Context, chatID int64, text string,
	markup models.ReplyMarkup) (int, error) {
	chunks := chunkText(text, TelegramMessageLimit)

	var lastID int
	for i, chunk := range chunks {
		params := &bot.SendMessageParams{
			ChatID: chatID,
			Text:   chunk,
		}
		if i == len(chunks)-1 {
			params.ReplyMarkup = markup
		}

		msg, err := s.bot.SendMessage(ctx, params)
		if err != nil {
			return 0, err
		}

		lastID = msg.ID
	}

	return lastID, nil
}

func inlineKeyboard(choices [][]domain.Choice) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, len(choices))
	for i, row := range choices {
		buttons := make([]models.InlineKeyboardButton, len(row))
		for j, choice := range row {
			buttons[j] = models.InlineKeyboardButton{Text: choice.Label, CallbackData: choice.Data}
		}
		rows[i] = buttons
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func chunkText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+limit-1)/limit)
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}

	return append(chunks, string(runes))
}
