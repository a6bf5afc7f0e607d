package delivery

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	chatdomain "mailmate-backend/internal/chat/domain"
	"mailmate-backend/internal/email/dto"
	"mailmate-backend/internal/email/usecase"
	"mailmate-backend/pkg/ai"
)

// Forwarder posts a raw generation payload to the backend, for the legacy
// passthrough route.
type Forwarder interface {
	Forward(ctx context.Context, body []byte) ([]byte, error)
}

// EmailHandler handles email-generation HTTP requests
type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
	forwarder    Forwarder
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(emailUsecase usecase.EmailUsecase, forwarder Forwarder) *EmailHandler {
	return &EmailHandler{
		emailUsecase: emailUsecase,
		forwarder:    forwarder,
	}
}

// HandleEmailAction runs one email-assistant turn
// POST /api/email
func (h *EmailHandler) HandleEmailAction(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": "invalid request body"})
		return
	}

	userID := c.GetString("userID")
	if req.ChatID != "" && userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required for chat-bound requests"})
		return
	}

	out, err := h.emailUsecase.HandleEmailAction(c.Request.Context(), userID, &req)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"result": vErr.Reason})
		case errors.Is(err, chatdomain.ErrChatNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"result": "Error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, out)
}

// Generate forwards a raw request body to the generation backend
// POST /api/generate
func (h *EmailHandler) Generate(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	respBody, err := h.forwarder.Forward(c.Request.Context(), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.Data(http.StatusOK, "application/json", respBody)
}

var _ Forwarder = (*ai.OllamaService)(nil)
