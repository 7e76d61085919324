package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// sentinelQuery reports whether the first catalog table already exists.
const sentinelQuery = "SELECT to_regclass('public.employees') IS NOT NULL"

type step struct {
	Name string
	SQL  string
}

var steps = []step{
	{
		Name: "create_table_employees",
		SQL: `CREATE TABLE IF NOT EXISTS employees (
  id       INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  name     VARCHAR NOT NULL,
  position VARCHAR NOT NULL
);`,
	},
	{
		Name: "create_table_models",
		SQL: `CREATE TABLE IF NOT EXISTS models (
  id      INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  name    VARCHAR NOT NULL,
  version VARCHAR NOT NULL
);`,
	},
	{
		Name: "create_table_tasks",
		SQL: `CREATE TABLE IF NOT EXISTS tasks (
  id          INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  description VARCHAR NOT NULL,
  status      VARCHAR NOT NULL
);`,
	},
}

// EnsureMigrated creates the employees, models and tasks tables unless the
// employees table is already present.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Logger()

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Error().Err(err).Str("event", "db_migration_failed").Msg("sentinel check failed")
		return fmt.Errorf("check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	for _, s := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, s.SQL); err != nil {
			log.Error().
				Err(err).
				Str("event", "db_migration_failed").
				Str("migration_step", s.Name).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s: %w", s.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("migration_step", s.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Int("steps", len(steps)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema migrated")

	return nil
}
