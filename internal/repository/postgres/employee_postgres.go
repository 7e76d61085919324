package postgres

import (
	"database/sql"

	"llmcorp/internal/model"
	"llmcorp/internal/repository"
)

// EmployeePostgres is a PostgreSQL implementation of repository.Repository[model.Employee].
type EmployeePostgres struct {
	table[model.Employee]
}

var _ repository.Repository[model.Employee] = (*EmployeePostgres)(nil)

// NewEmployeePostgres creates a repository over the employees table.
func NewEmployeePostgres(db *sql.DB) *EmployeePostgres {
	return &EmployeePostgres{newTable(db, "employees", []string{"name", "position"},
		func(e *model.Employee) []any { return []any{e.Name, e.Position} },
		func(row rowScanner) (*model.Employee, error) {
			var e model.Employee
			if err := row.Scan(&e.ID, &e.Name, &e.Position); err != nil {
				return nil, err
			}
			return &e, nil
		},
	)}
}
