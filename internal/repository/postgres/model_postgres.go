package postgres

import (
	"database/sql"

	"llmcorp/internal/model"
	"llmcorp/internal/repository"
)

// ModelPostgres is a PostgreSQL implementation of repository.Repository[model.Model].
type ModelPostgres struct {
	table[model.Model]
}

var _ repository.Repository[model.Model] = (*ModelPostgres)(nil)

// NewModelPostgres creates a repository over the models table.
func NewModelPostgres(db *sql.DB) *ModelPostgres {
	return &ModelPostgres{newTable(db, "models", []string{"name", "version"},
		func(m *model.Model) []any { return []any{m.Name, m.Version} },
		func(row rowScanner) (*model.Model, error) {
			var m model.Model
			if err := row.Scan(&m.ID, &m.Name, &m.Version); err != nil {
				return nil, err
			}
			return &m, nil
		},
	)}
}
