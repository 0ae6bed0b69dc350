package handlers

// Event is one inbound chat message, stripped down to what the game needs.
type Event struct {
	MessageID int
	UserID    int64
	ChatID    int64
	Body      string
}

// ChatMember is a chat roster entry used to register players.
type ChatMember struct {
	UserID    int64
	FirstName string
	LastName  string
}

// Notifier interface to avoid a handlers -> telegram import cycle. The
// telegram package implements it over the Bot API.
type Notifier interface {
	// SendMessage delivers a direct message to a user.
	SendMessage(userID int64, text string) error
	// SendChatMessage broadcasts a message into a chat.
	SendChatMessage(userID, chatID int64, text string) error
	// ChatMembers lists the members of a chat the bot can see.
	ChatMembers(chatID int64) ([]ChatMember, error)
}
