package domain

type Author string

const (
	User   Author = "user"
	System Author = "system"
)

// Prompt is one turn of a conversation submitted to a text generator.
type Prompt struct {
	Prompt string
	Author Author
}

// Message is an inbound text message, normalized from the transport.
type Message struct {
	ID       int
	ChatID   int64
	UserID   int64
	Username string
	Text     string
}

// Callback is a pressed inline keyboard button, normalized from the transport.
type Callback struct {
	ID        string
	Data      string
	UserID    int64
	ChatID    int64
	MessageID int
}

// Choice is a single inline keyboard button with its callback payload.
type Choice struct {
	Label string
	Data  string
}

// ConversationState marks that the next message from a user is routed to a
// specific handler instead of full command routing.
type ConversationState int

const (
	Idle ConversationState = iota
	AwaitingWikiQuery
	AwaitingBroadcastMessage
)

func (s ConversationState) String() string {
	switch s {
	case AwaitingWikiQuery:
		return "awaiting_wiki_query"
	case AwaitingBroadcastMessage:
		return "awaiting_broadcast_message"
	default:
		return "idle"
	}
}

// MenuKeyboard is the persistent reply menu offering the bot's commands.
var MenuKeyboard = [][]string{
	{"/game", "/wiki"},
	{"/mailing", "/show_all"},
}
