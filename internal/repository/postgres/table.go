package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"llmcorp/internal/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// table implements repository.Repository for a table with an identity "id"
// column followed by plain columns. Table and column names are compile-time
// constants supplied by the concrete repositories, never request input.
type table[T any] struct {
	db     *sql.DB
	values func(rec *T) []any
	scan   func(row rowScanner) (*T, error)

	qInsert string
	qFind   string
	qCount  string
	qList   string
	qDelete string
}

func newTable[T any](db *sql.DB, name string, columns []string, values func(*T) []any, scan func(rowScanner) (*T, error)) table[T] {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	cols := strings.Join(columns, ", ")
	selectCols := "id, " + cols

	return table[T]{
		db:     db,
		values: values,
		scan:   scan,
		qInsert: fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
			name, cols, strings.Join(placeholders, ", "), selectCols),
		qFind:   fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, selectCols, name),
		qCount:  fmt.Sprintf(`SELECT COUNT(*) FROM %s`, name),
		qList:   fmt.Sprintf(`SELECT %s FROM %s ORDER BY id ASC LIMIT $1 OFFSET $2`, selectCols, name),
		qDelete: fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, name),
	}
}

// Create inserts a row and returns it as stored, including the generated id.
func (t *table[T]) Create(ctx context.Context, rec *T) (*T, error) {
	return t.scan(t.db.QueryRowContext(ctx, t.qInsert, t.values(rec)...))
}

// FindByID fetches a single row. A missing row surfaces as sql.ErrNoRows.
func (t *table[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return t.scan(t.db.QueryRowContext(ctx, t.qFind, id))
}

// List returns rows ordered by id using LIMIT/OFFSET pagination and a total count.
func (t *table[T]) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[T], error) {
	var total int
	if err := t.db.QueryRowContext(ctx, t.qCount).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := t.db.QueryContext(ctx, t.qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[T]{Items: items, Total: total}, nil
}

// Delete removes a row by id and reports sql.ErrNoRows if none matched.
func (t *table[T]) Delete(ctx context.Context, id int64) error {
	res, err := t.db.ExecContext(ctx, t.qDelete, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
