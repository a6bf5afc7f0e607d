package repository

import (
	"mailmate-backend/internal/chat/domain"
	"mailmate-backend/internal/prompt"
)

// ChatRepository defines the interface for chat data access. All lookups are
// scoped to a user; a chat owned by someone else behaves as absent.
type ChatRepository interface {
	// Create persists a new chat
	Create(chat *domain.Chat) error

	// FindByID finds a chat with its messages; nil when absent or not owned
	FindByID(userID, id string) (*domain.Chat, error)

	// FindByUser lists a user's chats for one action kind, most recent first,
	// with messages in insertion order
	FindByUser(userID string, action prompt.Action) ([]*domain.Chat, error)

	// Update saves tone/language changes
	Update(chat *domain.Chat) error

	// Delete removes a chat and its messages
	Delete(userID, id string) error

	// AppendMessage adds a message to the end of a chat's history
	AppendMessage(message *domain.Message) error

	// GetActiveChat returns the selected chat id for (user, action), "" when none
	GetActiveChat(userID string, action prompt.Action) (string, error)

	// SetActiveChat records the selection; an empty chat id clears it
	SetActiveChat(userID string, action prompt.Action, chatID string) error
}
