package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"llmcorp/internal/model"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) List(ctx context.Context) ([]model.Chat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Chat), args.Error(1)
}

func (m *MockChatService) Get(ctx context.Context, id string) (*model.Chat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chat), args.Error(1)
}

func (m *MockChatService) Create(ctx context.Context, title string) (*model.Chat, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chat), args.Error(1)
}

func (m *MockChatService) SendMessage(ctx context.Context, chatID, content, role string) (*model.Message, error) {
	args := m.Called(ctx, chatID, content, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockChatService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
