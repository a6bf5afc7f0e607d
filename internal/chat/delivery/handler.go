package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mailmate-backend/internal/chat/domain"
	"mailmate-backend/internal/chat/dto"
	"mailmate-backend/internal/chat/usecase"
	"mailmate-backend/internal/prompt"
)

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

// ListChats returns the user's chats for one action kind
// GET /api/chats?type=write
func (h *ChatHandler) ListChats(c *gin.Context) {
	userID := c.GetString("userID")

	action := prompt.Action(c.Query("type"))
	chats, active, err := h.chatUsecase.ListChats(userID, action)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown chat type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch chats"})
		return
	}

	if chats == nil {
		chats = []*domain.Chat{}
	}
	c.JSON(http.StatusOK, dto.ChatListResponse{Chats: chats, ActiveChatID: active})
}

// CreateChat creates a chat; the new chat becomes active
// POST /api/chats
func (h *ChatHandler) CreateChat(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := h.chatUsecase.CreateChat(userID, req.Title, prompt.Action(req.Type), prompt.Tone(req.Tone), req.Language)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown chat type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create chat"})
		return
	}

	c.JSON(http.StatusCreated, chat)
}

// GetChat fetches a chat with its messages
// GET /api/chats/:id
func (h *ChatHandler) GetChat(c *gin.Context) {
	userID := c.GetString("userID")
	chatID := c.Param("id")

	chat, err := h.chatUsecase.GetChat(userID, chatID)
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch chat"})
		return
	}

	c.JSON(http.StatusOK, chat)
}

// PatchChat partially updates tone and/or language
// PATCH /api/chats/:id
func (h *ChatHandler) PatchChat(c *gin.Context) {
	userID := c.GetString("userID")
	chatID := c.Param("id")

	var req dto.PatchChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tone *prompt.Tone
	if req.Tone != nil {
		t := prompt.Tone(*req.Tone)
		tone = &t
	}

	chat, err := h.chatUsecase.PatchChat(userID, chatID, tone, req.Language)
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update chat"})
		return
	}

	c.JSON(http.StatusOK, chat)
}

// DeleteChat removes a chat and reports the reselected active chat
// DELETE /api/chats/:id
func (h *ChatHandler) DeleteChat(c *gin.Context) {
	userID := c.GetString("userID")
	chatID := c.Param("id")

	active, err := h.chatUsecase.DeleteChat(userID, chatID)
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete chat"})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteChatResponse{ActiveChatID: active})
}

// ListMessages returns a chat's messages in order
// GET /api/chats/:id/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	userID := c.GetString("userID")
	chatID := c.Param("id")

	chat, err := h.chatUsecase.GetChat(userID, chatID)
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": chat.Messages})
}

// AppendMessage appends a message to a chat
// POST /api/chats/:id/messages
func (h *ChatHandler) AppendMessage(c *gin.Context) {
	userID := c.GetString("userID")
	chatID := c.Param("id")

	var req dto.AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := h.chatUsecase.AppendMessage(userID, chatID, domain.Role(req.Role), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrChatNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		case errors.Is(err, usecase.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be user or assistant"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create message"})
		}
		return
	}

	c.JSON(http.StatusCreated, chat.Messages[len(chat.Messages)-1])
}
