package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"llmcorp/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("record not found")
	ErrRecordNil  = errors.New("record is nil")
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// RecordListResult is the service-level DTO for a page of catalog records.
type RecordListResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

// RecordService defines the use cases shared by the employee, model and task catalogs.
type RecordService[T any] interface {
	Create(ctx context.Context, rec *T) (*T, error)
	List(ctx context.Context, limit, offset int) (*RecordListResult[T], error)
	Get(ctx context.Context, id int64) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type recordService[T any] struct {
	repo repository.Repository[T]
}

// NewRecordService constructs a RecordService over the given repository.
func NewRecordService[T any](repo repository.Repository[T]) RecordService[T] {
	return &recordService[T]{repo: repo}
}

func (s *recordService[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if rec == nil {
		return nil, ErrRecordNil
	}
	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return stored, nil
}

// List clamps the page window before querying: limit falls back to 10 when
// not positive and is capped at 100, negative offsets become 0.
func (s *recordService[T]) List(ctx context.Context, limit, offset int) (*RecordListResult[T], error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &RecordListResult[T]{Items: res.Items, Total: res.Total}, nil
}

func (s *recordService[T]) Get(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *recordService[T]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
