package usecase

import (
	"mailmate-backend/internal/chat/domain"
	"mailmate-backend/internal/prompt"
)

// ChatUsecase defines the interface for chat business logic. Every operation
// is keyed by an explicit user id and chat id; there is no ambient "current
// chat" state on the server side beyond the recorded active selection.
type ChatUsecase interface {
	// CreateChat creates a chat with the given title and action kind. The new
	// chat becomes the active chat for (user, action).
	CreateChat(userID, title string, action prompt.Action, tone prompt.Tone, language string) (*domain.Chat, error)

	// ListChats returns the user's chats for one action kind, most recent
	// first, along with the active chat id ("" when none).
	ListChats(userID string, action prompt.Action) ([]*domain.Chat, string, error)

	// GetChat fetches a chat with its messages (ownership enforced)
	GetChat(userID, chatID string) (*domain.Chat, error)

	// PatchChat partially updates tone and/or language; omitted fields are
	// unchanged
	PatchChat(userID, chatID string, tone *prompt.Tone, language *string) (*domain.Chat, error)

	// AppendMessage appends one message to the end of the chat history
	AppendMessage(userID, chatID string, role domain.Role, content string) (*domain.Chat, error)

	// DeleteChat removes a chat. If it was active, the most recently created
	// remaining chat of the same action kind becomes active; the returned id
	// is "" when none remain.
	DeleteChat(userID, chatID string) (string, error)
}
