package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"llmcorp/internal/service"
)

type MockRecordService[T any] struct {
	mock.Mock
}

func (m *MockRecordService[T]) Create(ctx context.Context, rec *T) (*T, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRecordService[T]) List(ctx context.Context, limit, offset int) (*service.RecordListResult[T], error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecordListResult[T]), args.Error(1)
}

func (m *MockRecordService[T]) Get(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRecordService[T]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
