package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"llmcorp/internal/model"
)

// ChatService defines the chat use cases. The default implementation keeps no
// state: every call builds its result from its own arguments.
type ChatService interface {
	// List returns all chats. Always empty for the stateless implementation.
	List(ctx context.Context) ([]model.Chat, error)

	// Get returns the chat with the given id and no messages.
	Get(ctx context.Context, id string) (*model.Chat, error)

	// Create builds a chat with a fresh random id and the current time.
	Create(ctx context.Context, title string) (*model.Chat, error)

	// SendMessage echoes the message back, stamped with the current time.
	SendMessage(ctx context.Context, chatID, content, role string) (*model.Message, error)

	// Delete accepts any id; there is no backing store to remove it from.
	Delete(ctx context.Context, id string) error
}

// ChatOption customises the stateless chat service.
type ChatOption func(*chatService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) ChatOption {
	return func(s *chatService) { s.now = now }
}

// WithIDGenerator overrides how chat ids are generated.
func WithIDGenerator(newID func() string) ChatOption {
	return func(s *chatService) { s.newID = newID }
}

type chatService struct {
	now   func() time.Time
	newID func() string
}

// NewChatService constructs the stateless ChatService.
func NewChatService(opts ...ChatOption) ChatService {
	s := &chatService{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *chatService) List(ctx context.Context) ([]model.Chat, error) {
	return []model.Chat{}, nil
}

func (s *chatService) Get(ctx context.Context, id string) (*model.Chat, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return &model.Chat{ID: id, Messages: []model.Message{}}, nil
}

func (s *chatService) Create(ctx context.Context, title string) (*model.Chat, error) {
	return &model.Chat{
		ID:        s.newID(),
		Title:     title,
		CreatedAt: s.now(),
		Messages:  []model.Message{},
	}, nil
}

func (s *chatService) SendMessage(ctx context.Context, chatID, content, role string) (*model.Message, error) {
	if chatID == "" {
		return nil, ErrIDRequired
	}
	return &model.Message{
		ChatID:    chatID,
		Content:   content,
		Role:      role,
		Timestamp: s.now(),
	}, nil
}

func (s *chatService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return nil
}
