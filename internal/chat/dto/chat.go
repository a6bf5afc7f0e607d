package dto

import (
	"mailmate-backend/internal/chat/domain"
)

type CreateChatRequest struct {
	Title    string `json:"title" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Tone     string `json:"tone"`
	Language string `json:"language"`
}

type PatchChatRequest struct {
	Tone     *string `json:"tone,omitempty"`
	Language *string `json:"language,omitempty"`
}

type AppendMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ChatListResponse carries the scoped chats plus the active selection.
type ChatListResponse struct {
	Chats        []*domain.Chat `json:"chats"`
	ActiveChatID string         `json:"active_chat_id,omitempty"`
}

// DeleteChatResponse reports the reselected active chat, empty when none
// remain.
type DeleteChatResponse struct {
	ActiveChatID string `json:"active_chat_id,omitempty"`
}
