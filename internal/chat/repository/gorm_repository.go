package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mailmate-backend/internal/chat/domain"
	"mailmate-backend/internal/prompt"
)

// gormChatRepository implements ChatRepository using GORM
type gormChatRepository struct {
	db *gorm.DB
}

// NewGormChatRepository creates a new GORM-based ChatRepository
func NewGormChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

func (r *gormChatRepository) Create(chat *domain.Chat) error {
	if chat.ID == "" {
		chat.ID = uuid.New().String()
	}
	chat.CreatedAt = time.Now()
	chat.UpdatedAt = time.Now()
	return r.db.Create(chat).Error
}

func (r *gormChatRepository) FindByID(userID, id string) (*domain.Chat, error) {
	var chat domain.Chat
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("id = ? AND user_id = ?", id, userID).First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *gormChatRepository) FindByUser(userID string, action prompt.Action) ([]*domain.Chat, error) {
	var chats []*domain.Chat
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("user_id = ? AND action = ?", userID, action).
		Order("created_at DESC").
		Find(&chats).Error
	return chats, err
}

func (r *gormChatRepository) Update(chat *domain.Chat) error {
	chat.UpdatedAt = time.Now()
	return r.db.Omit("Messages").Save(chat).Error
}

func (r *gormChatRepository) Delete(userID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", id).Delete(&domain.Message{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Chat{}).Error
	})
}

func (r *gormChatRepository) AppendMessage(message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()
	return r.db.Create(message).Error
}

func (r *gormChatRepository) GetActiveChat(userID string, action prompt.Action) (string, error) {
	var active domain.ActiveChat
	err := r.db.Where("user_id = ? AND action = ?", userID, action).First(&active).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return active.ChatID, nil
}

func (r *gormChatRepository) SetActiveChat(userID string, action prompt.Action, chatID string) error {
	if chatID == "" {
		return r.db.Where("user_id = ? AND action = ?", userID, action).
			Delete(&domain.ActiveChat{}).Error
	}
	active := domain.ActiveChat{UserID: userID, Action: action, ChatID: chatID}
	return r.db.Save(&active).Error
}
