// Package migrate applies the embedded SQL schema migrations in filename
// order, recording applied versions in schema_migrations so reruns are no-ops.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/tcacomm/tca-server/internal/data/pgxutil"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Runner applies migrations against one database.
type Runner struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a Runner. A nil logger falls back to slog.Default.
func New(db *sql.DB, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		db:     db,
		logger: logger.With("component", "migrations"),
	}
}

// Run applies every pending migration. Safe to call concurrently with other
// instances: the version insert conflicts inside its transaction, so a
// migration applies at most once.
func (r *Runner) Run(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	applied, err := r.appliedVersions(ctx)
	if err != nil {
		return err
	}

	pending, err := pendingMigrations(applied)
	if err != nil {
		return err
	}
	for _, version := range pending {
		if applyErr := r.apply(ctx, version); applyErr != nil {
			return applyErr
		}
	}
	return nil
}

func (r *Runner) appliedVersions(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if scanErr := rows.Scan(&version); scanErr != nil {
			return nil, fmt.Errorf("scan migration version: %w", scanErr)
		}
		applied[version] = true
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("read applied migrations: %w", rowsErr)
	}
	return applied, nil
}

// pendingMigrations lists embedded versions not yet applied, in apply order.
func pendingMigrations(applied map[string]bool) ([]string, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var pending []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		version := strings.TrimSuffix(e.Name(), ".sql")
		if !applied[version] {
			pending = append(pending, version)
		}
	}
	sort.Strings(pending)
	return pending, nil
}

// apply runs one migration and records its version in a single transaction.
func (r *Runner) apply(ctx context.Context, version string) error {
	script, err := migrationsFS.ReadFile("migrations/" + version + ".sql")
	if err != nil {
		return fmt.Errorf("read migration %s: %w", version, err)
	}

	r.logger.InfoContext(ctx, "applying migration", "version", version)

	err = pgxutil.WithSQLTx(ctx, r.db, pgxutil.SQLTxConfig{
		Fn: func(tx *sql.Tx) error {
			if _, execErr := tx.ExecContext(ctx, string(script)); execErr != nil {
				return fmt.Errorf("exec migration %s: %w", version, execErr)
			}
			if _, insertErr := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version) VALUES ($1)`, version); insertErr != nil {
				return fmt.Errorf("record migration %s: %w", version, insertErr)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "migration applied", "version", version)
	return nil
}
