package commands

import (
	"context"
	"slices"
	"strattonbot/internal/core/domain"
)

type SentMessage struct {
	ChatID      int64
	MessageID   int
	Text        string
	Menu        [][]string
	Choices     [][]domain.Choice
	RemovedMenu bool
	Edited      bool
}

// MockTextSender records every outbound message. failFor simulates
// per-recipient delivery errors, err fails every send.
type MockTextSender struct {
	err      error
	failFor  map[int64]error
	Messages []SentMessage
	Answered []string
}

func (m *MockTextSender) send(message SentMessage) (int, error) {
	if err, ok := m.failFor[message.ChatID]; ok {
		return 0, err
	}
	if m.err != nil {
		return 0, m.err
	}

	m.Messages = append(m.Messages, message)
	return len(m.Messages), nil
}

func (m *MockTextSender) SendMessage(_ context.Context, chatID int64, text string) (int, error) {
	return m.send(SentMessage{ChatID: chatID, Text: text})
}

func (m *MockTextSender) SendMessageWithMenu(_ context.Context, chatID int64, text string,
	menu [][]string) (int, error) {
	return m.send(SentMessage{ChatID: chatID, Text: text, Menu: menu})
}

func (m *MockTextSender) SendMessageWithChoices(_ context.Context, chatID int64, text string,
	choices [][]domain.Choice) (int, error) {
	return m.send(SentMessage{ChatID: chatID, Text: text, Choices: choices})
}

func (m *MockTextSender) SendMessageRemovingMenu(_ context.Context, chatID int64, text string) (int, error) {
	return m.send(SentMessage{ChatID: chatID, Text: text, RemovedMenu: true})
}

func (m *MockTextSender) EditMessageWithChoices(_ context.Context, chatID int64, messageID int, text string,
	choices [][]domain.Choice) error {
	_, err := m.send(SentMessage{ChatID: chatID, MessageID: messageID, Text: text, Choices: choices, Edited: true})
	return err
}

func (m *MockTextSender) AnswerCallback(_ context.Context, callbackID string) error {
	m.Answered = append(m.Answered, callbackID)
	return m.err
}

// MockUserStore mimics the registry's insert-if-absent semantics in memory.
type MockUserStore struct {
	users       []int64
	registerErr error
	listErr     error
}

func (m *MockUserStore) Register(_ context.Context, userID int64) (bool, error) {
	if m.registerErr != nil {
		return false, m.registerErr
	}

	if slices.Contains(m.users, userID) {
		return false, nil
	}

	m.users = append(m.users, userID)
	return true, nil
}

func (m *MockUserStore) ListAll(_ context.Context) ([]int64, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	return m.users, nil
}

type MockTextGenerator struct {
	response string
	err      error
	Prompts  []domain.Prompt
}

func (m *MockTextGenerator) GenerateFromPrompt(_ context.Context, prompts []domain.Prompt) (string, error) {
	m.Prompts = prompts
	return m.response, m.err
}

type MockPageResolver struct {
	result domain.LookupResult
	Query  string
}

func (m *MockPageResolver) Resolve(_ context.Context, query string) domain.LookupResult {
	m.Query = query
	return m.result
}
