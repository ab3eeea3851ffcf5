package data

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/tcacomm/tca-server/internal/migrate"
)

// RunMigrations executes database migrations to set up the required schema by delegating to the migrate package.
func RunMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	return migrate.New(db, logger).Run(ctx)
}
