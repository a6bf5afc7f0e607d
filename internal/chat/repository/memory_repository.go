package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mailmate-backend/internal/chat/domain"
	"mailmate-backend/internal/prompt"
)

type activeKey struct {
	userID string
	action prompt.Action
}

// memoryChatRepository implements ChatRepository in process memory. Used in
// tests and when no durable store is configured; the usecase contract is
// identical to the GORM implementation.
type memoryChatRepository struct {
	mu       sync.RWMutex
	chats    map[string]*domain.Chat
	messages map[string][]domain.Message
	seq      map[string]int64 // creation order, survives equal timestamps
	active   map[activeKey]string
	nextSeq  int64
}

// NewMemoryChatRepository creates an in-memory ChatRepository
func NewMemoryChatRepository() ChatRepository {
	return &memoryChatRepository{
		chats:    make(map[string]*domain.Chat),
		messages: make(map[string][]domain.Message),
		seq:      make(map[string]int64),
		active:   make(map[activeKey]string),
	}
}

func (r *memoryChatRepository) Create(chat *domain.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if chat.ID == "" {
		chat.ID = uuid.New().String()
	}
	chat.CreatedAt = time.Now()
	chat.UpdatedAt = time.Now()

	stored := *chat
	stored.Messages = nil
	r.chats[chat.ID] = &stored
	r.messages[chat.ID] = nil
	r.nextSeq++
	r.seq[chat.ID] = r.nextSeq
	return nil
}

func (r *memoryChatRepository) FindByID(userID, id string) (*domain.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.chats[id]
	if !ok || stored.UserID != userID {
		return nil, nil
	}
	return r.snapshot(stored), nil
}

func (r *memoryChatRepository) FindByUser(userID string, action prompt.Action) ([]*domain.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var chats []*domain.Chat
	for _, stored := range r.chats {
		if stored.UserID == userID && stored.Action == action {
			chats = append(chats, r.snapshot(stored))
		}
	}
	sort.Slice(chats, func(i, j int) bool {
		return r.seq[chats[i].ID] > r.seq[chats[j].ID]
	})
	return chats, nil
}

func (r *memoryChatRepository) Update(chat *domain.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.chats[chat.ID]
	if !ok {
		return nil
	}
	stored.Title = chat.Title
	stored.Tone = chat.Tone
	stored.Language = chat.Language
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *memoryChatRepository) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.chats[id]
	if !ok || stored.UserID != userID {
		return nil
	}
	delete(r.chats, id)
	delete(r.messages, id)
	delete(r.seq, id)
	return nil
}

func (r *memoryChatRepository) AppendMessage(message *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()
	r.messages[message.ChatID] = append(r.messages[message.ChatID], *message)
	return nil
}

func (r *memoryChatRepository) GetActiveChat(userID string, action prompt.Action) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active[activeKey{userID, action}], nil
}

func (r *memoryChatRepository) SetActiveChat(userID string, action prompt.Action, chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := activeKey{userID, action}
	if chatID == "" {
		delete(r.active, key)
		return nil
	}
	r.active[key] = chatID
	return nil
}

// snapshot copies a chat with its messages so callers never share state with
// the store. Caller must hold at least the read lock.
func (r *memoryChatRepository) snapshot(stored *domain.Chat) *domain.Chat {
	chat := *stored
	msgs := r.messages[stored.ID]
	chat.Messages = make([]domain.Message, len(msgs))
	copy(chat.Messages, msgs)
	return &chat
}
