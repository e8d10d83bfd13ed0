package service

import (
	"strattonbot/internal/core/domain"
	"sync"

	"github.com/rs/zerolog/log"
)

type StateTracker interface {
	Set(userID int64, state domain.ConversationState)
	Get(userID int64) domain.ConversationState
	Clear(userID int64)
}

// ConversationTracker keeps the per-user conversation state for the lifetime
// of the process. At most one pending state exists per user; setting a new one
// silently replaces the old.
type ConversationTracker struct {
	states map[int64]domain.ConversationState
	mutex  *sync.Mutex
}

func NewConversationTracker() *ConversationTracker {
	return &ConversationTracker{
		states: make(map[int64]domain.ConversationState),
		mutex:  &sync.Mutex{},
	}
}

func (t *ConversationTracker) Set(userID int64, state domain.ConversationState) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	log.Debug().Int64("userId", userID).Stringer("state", state).Msg("setting conversation state")
	t.states[userID] = state
}

func (t *ConversationTracker) Get(userID int64) domain.ConversationState {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	state, ok := t.states[userID]
	if !ok {
		return domain.Idle
	}

	return state
}

func (t *ConversationTracker) Clear(userID int64) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	log.Debug().Int64("userId", userID).Msg("clearing conversation state")
	delete(t.states, userID)
}
