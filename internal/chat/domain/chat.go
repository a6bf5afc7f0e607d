package domain

import (
	"errors"
	"time"

	"mailmate-backend/internal/prompt"
)

// ErrChatNotFound is returned when a chat id does not exist or is not owned
// by the requesting user.
var ErrChatNotFound = errors.New("chat not found")

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the supported kinds.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Chat is a titled conversation scoped to one action kind, holding tone and
// language preferences and an append-only message history.
type Chat struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	UserID    string        `json:"user_id" gorm:"index;not null"`
	Title     string        `json:"title"`
	Action    prompt.Action `json:"action" gorm:"index;not null"`
	Tone      prompt.Tone   `json:"tone" gorm:"default:professional"`
	Language  string        `json:"language" gorm:"default:en"`
	Messages  []Message     `json:"messages" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// LastAssistantMessage returns the most recent assistant message content, or
// "" when no assistant turn exists yet.
func (c *Chat) LastAssistantMessage() string {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleAssistant {
			return c.Messages[i].Content
		}
	}
	return ""
}

// Message is one turn in a chat. Immutable once created; message order within
// a chat is insertion order.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ChatID    string    `json:"chat_id" gorm:"index;not null"`
	Role      Role      `json:"role" gorm:"not null"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ActiveChat records which chat is selected per user and action kind, so
// deletion can reselect deterministically without ambient client state.
type ActiveChat struct {
	UserID string        `json:"user_id" gorm:"primaryKey"`
	Action prompt.Action `json:"action" gorm:"primaryKey"`
	ChatID string        `json:"chat_id"`
}
