package postgres

import (
	"database/sql"

	"llmcorp/internal/model"
	"llmcorp/internal/repository"
)

// TaskPostgres is a PostgreSQL implementation of repository.Repository[model.Task].
type TaskPostgres struct {
	table[model.Task]
}

var _ repository.Repository[model.Task] = (*TaskPostgres)(nil)

// NewTaskPostgres creates a repository over the tasks table.
func NewTaskPostgres(db *sql.DB) *TaskPostgres {
	return &TaskPostgres{newTable(db, "tasks", []string{"description", "status"},
		func(t *model.Task) []any { return []any{t.Description, t.Status} },
		func(row rowScanner) (*model.Task, error) {
			var t model.Task
			if err := row.Scan(&t.ID, &t.Description, &t.Status); err != nil {
				return nil, err
			}
			return &t, nil
		},
	)}
}
