package usecase

import (
	"errors"

	"mailmate-backend/internal/chat/domain"
	"mailmate-backend/internal/chat/repository"
	"mailmate-backend/internal/prompt"
)

// ErrInvalidRole is returned when a message role is neither user nor
// assistant.
var ErrInvalidRole = errors.New("invalid message role")

// ErrInvalidAction is returned when an action kind is not one of
// write/summarize/enhance/reply.
var ErrInvalidAction = errors.New("invalid action kind")

// chatUsecase implements ChatUsecase
type chatUsecase struct {
	chatRepo repository.ChatRepository
}

// NewChatUsecase creates a new instance of chatUsecase
func NewChatUsecase(chatRepo repository.ChatRepository) ChatUsecase {
	return &chatUsecase{chatRepo: chatRepo}
}

func (u *chatUsecase) CreateChat(userID, title string, action prompt.Action, tone prompt.Tone, language string) (*domain.Chat, error) {
	if !action.Valid() {
		return nil, ErrInvalidAction
	}
	if tone == "" {
		tone = prompt.ToneProfessional
	}
	if language == "" {
		language = "en"
	}

	chat := &domain.Chat{
		UserID:   userID,
		Title:    title,
		Action:   action,
		Tone:     tone,
		Language: language,
	}
	if err := u.chatRepo.Create(chat); err != nil {
		return nil, err
	}
	if err := u.chatRepo.SetActiveChat(userID, action, chat.ID); err != nil {
		return nil, err
	}
	chat.Messages = []domain.Message{}
	return chat, nil
}

func (u *chatUsecase) ListChats(userID string, action prompt.Action) ([]*domain.Chat, string, error) {
	if !action.Valid() {
		return nil, "", ErrInvalidAction
	}
	chats, err := u.chatRepo.FindByUser(userID, action)
	if err != nil {
		return nil, "", err
	}
	active, err := u.chatRepo.GetActiveChat(userID, action)
	if err != nil {
		return nil, "", err
	}
	return chats, active, nil
}

func (u *chatUsecase) GetChat(userID, chatID string) (*domain.Chat, error) {
	chat, err := u.chatRepo.FindByID(userID, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, domain.ErrChatNotFound
	}
	return chat, nil
}

func (u *chatUsecase) PatchChat(userID, chatID string, tone *prompt.Tone, language *string) (*domain.Chat, error) {
	chat, err := u.GetChat(userID, chatID)
	if err != nil {
		return nil, err
	}
	if tone != nil {
		chat.Tone = *tone
	}
	if language != nil {
		chat.Language = *language
	}
	if err := u.chatRepo.Update(chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (u *chatUsecase) AppendMessage(userID, chatID string, role domain.Role, content string) (*domain.Chat, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	chat, err := u.GetChat(userID, chatID)
	if err != nil {
		return nil, err
	}

	message := &domain.Message{
		ChatID:  chat.ID,
		Role:    role,
		Content: content,
	}
	if err := u.chatRepo.AppendMessage(message); err != nil {
		return nil, err
	}
	chat.Messages = append(chat.Messages, *message)
	return chat, nil
}

func (u *chatUsecase) DeleteChat(userID, chatID string) (string, error) {
	chat, err := u.GetChat(userID, chatID)
	if err != nil {
		return "", err
	}

	if err := u.chatRepo.Delete(userID, chatID); err != nil {
		return "", err
	}

	active, err := u.chatRepo.GetActiveChat(userID, chat.Action)
	if err != nil {
		return "", err
	}
	if active != chatID {
		return active, nil
	}

	// The active chat was deleted; the most recently created remaining chat
	// of the same action kind takes over, or none.
	remaining, err := u.chatRepo.FindByUser(userID, chat.Action)
	if err != nil {
		return "", err
	}
	next := ""
	if len(remaining) > 0 {
		next = remaining[0].ID
	}
	if err := u.chatRepo.SetActiveChat(userID, chat.Action, next); err != nil {
		return "", err
	}
	return next, nil
}
