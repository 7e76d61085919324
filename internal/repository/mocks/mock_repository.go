package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"llmcorp/internal/repository"
)

type MockRepository[T any] struct {
	mock.Mock
}

var _ repository.Repository[struct{}] = (*MockRepository[struct{}])(nil)

func (m *MockRepository[T]) Create(ctx context.Context, rec *T) (*T, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[T], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[T]), args.Error(1)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
