package repository

import "context"

// Repository is the data access contract shared by the catalog tables.
// Implementations live in subpackages (e.g. postgres) and hold no business logic.
type Repository[T any] interface {
	// Create inserts a record and returns it with the identity assigned by the store.
	Create(ctx context.Context, rec *T) (*T, error)

	// FindByID returns sql.ErrNoRows when the record does not exist.
	FindByID(ctx context.Context, id int64) (*T, error)

	// List returns a page of records and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[T], error)

	// Delete returns sql.ErrNoRows when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
