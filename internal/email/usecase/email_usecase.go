package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	chatdomain "mailmate-backend/internal/chat/domain"
	chatusecase "mailmate-backend/internal/chat/usecase"
	"mailmate-backend/internal/email/dto"
	"mailmate-backend/internal/prompt"
	"mailmate-backend/pkg/ai"
)

// emailUsecase implements EmailUsecase
type emailUsecase struct {
	chatUsecase chatusecase.ChatUsecase
	generator   ai.Generator
}

// NewEmailUsecase creates a new instance of emailUsecase
func NewEmailUsecase(chatUsecase chatusecase.ChatUsecase, generator ai.Generator) EmailUsecase {
	return &emailUsecase{
		chatUsecase: chatUsecase,
		generator:   generator,
	}
}

func (u *emailUsecase) HandleEmailAction(ctx context.Context, userID string, req *dto.EmailRequest) (*dto.EmailResult, error) {
	// Validation happens before any external call; a rejected request has no
	// side effects.
	if req.Action == "" || strings.TrimSpace(req.Text) == "" {
		return nil, &ValidationError{Reason: "action and text are required"}
	}
	action := prompt.Action(req.Action)
	if !action.Valid() {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown action %q", req.Action)}
	}

	var chat *chatdomain.Chat
	if req.ChatID != "" {
		if userID == "" {
			return nil, &ValidationError{Reason: "a chat-bound request requires authentication"}
		}
		found, err := u.chatUsecase.GetChat(userID, req.ChatID)
		if err != nil {
			return nil, err
		}
		chat = found
	}

	tone := prompt.Tone(req.Tone)
	language := req.Language
	if chat != nil {
		// Explicit request fields win over chat preferences.
		if tone == "" {
			tone = chat.Tone
		}
		if language == "" {
			language = chat.Language
		}
	}
	if tone == "" {
		tone = prompt.ToneProfessional
	}
	if language == "" {
		language = "en"
	}

	previous := req.PreviousEmail
	if action.RequiresPreviousEmail() && previous == "" {
		if chat != nil {
			previous = chat.LastAssistantMessage()
		}
		if previous == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("previous email content is required for %s", action)}
		}
	}

	// The user turn is recorded before generation runs, so history is not
	// lost when the backend call fails.
	if chat != nil {
		if _, err := u.chatUsecase.AppendMessage(userID, chat.ID, chatdomain.RoleUser, req.Text); err != nil {
			return nil, &PersistenceError{Op: "user", Err: err}
		}
	}

	p := prompt.BuildPrompt(action, req.Text, tone, language, previous)
	result, err := u.generator.Generate(ctx, p)
	if err != nil {
		return nil, err
	}

	if chat == nil {
		return &dto.EmailResult{Result: result}, nil
	}

	if _, err := u.chatUsecase.AppendMessage(userID, chat.ID, chatdomain.RoleAssistant, result); err != nil {
		// The generated text is still returned; the caller sees the warning
		// and the diagnostic is logged.
		persistErr := &PersistenceError{Op: "assistant", Err: err}
		log.Printf("[WARN] chat %s: %v", chat.ID, persistErr)
		return &dto.EmailResult{Result: result, Warning: persistErr.Error()}, nil
	}

	return &dto.EmailResult{Result: result, Persisted: true}, nil
}
