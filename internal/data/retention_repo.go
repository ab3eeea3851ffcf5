package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tcacomm/tca-server/internal/core"
	"github.com/tcacomm/tca-server/internal/data/pgxutil"
)

// Advisory lock namespace for retention sweeps.
// Using two-arg pg_try_advisory_xact_lock(major, minor) for proper namespacing.
// Major key 2000 is reserved for retention operations.
const (
	advisoryLockRetentionMajor    = 2000
	advisoryLockRetentionMessages = 1 // minor key for room message sweeps
	advisoryLockRetentionDMs      = 2 // minor key for direct message sweeps
)

// RetentionRepo performs bulk age-based deletion for the sweeper.
type RetentionRepo struct {
	DB *sql.DB
}

// NewRetentionRepo creates a new RetentionRepo.
func NewRetentionRepo(db *sql.DB) *RetentionRepo {
	return &RetentionRepo{DB: db}
}

// DeleteMessagesOlderThan deletes room messages with a timestamp strictly
// before the cutoff. Processes up to BatchSize rows per call to prevent long
// locks and I/O spikes. Uses advisory locks so concurrent sweeper instances
// do not conflict. Returns the number of messages deleted.
func (r *RetentionRepo) DeleteMessagesOlderThan(
	ctx context.Context,
	params core.DeleteOlderThanParams,
) (int64, error) {
	return r.deleteOlderThan(ctx, deleteBatchSpec{
		table:     "messages",
		lockMinor: advisoryLockRetentionMessages,
		params:    params,
	})
}

// DeleteDirectMessagesOlderThan deletes direct messages with a timestamp
// strictly before the cutoff, with the same batching and locking behavior as
// DeleteMessagesOlderThan.
func (r *RetentionRepo) DeleteDirectMessagesOlderThan(
	ctx context.Context,
	params core.DeleteOlderThanParams,
) (int64, error) {
	return r.deleteOlderThan(ctx, deleteBatchSpec{
		table:     "direct_messages",
		lockMinor: advisoryLockRetentionDMs,
		params:    params,
	})
}

// deleteBatchSpec groups parameters for deleteOlderThan to keep parameter count <= 3.
type deleteBatchSpec struct {
	table     string
	lockMinor int
	params    core.DeleteOlderThanParams
}

func (r *RetentionRepo) deleteOlderThan(ctx context.Context, spec deleteBatchSpec) (int64, error) {
	if spec.params.BatchSize <= 0 {
		return 0, errors.New("batch size must be greater than zero")
	}
	if spec.params.Cutoff.IsZero() {
		return 0, errors.New("cutoff is required")
	}

	// spec.table is one of two compile-time constants, never user input.
	query := fmt.Sprintf(`
		DELETE FROM %[1]s
		WHERE id IN (
			SELECT id FROM %[1]s
			WHERE ts < $1
			ORDER BY ts
			LIMIT $2
		)
	`, spec.table)

	var rowsAffected int64
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Fn: func(tx *sql.Tx) error {
			var locked bool
			if err := tx.QueryRowContext(ctx,
				"SELECT pg_try_advisory_xact_lock($1, $2)",
				advisoryLockRetentionMajor, spec.lockMinor,
			).Scan(&locked); err != nil {
				return fmt.Errorf("acquire advisory lock: %w", err)
			}
			if !locked {
				rowsAffected = 0
				return nil
			}

			res, err := tx.ExecContext(ctx, query, spec.params.Cutoff.UTC(), spec.params.BatchSize)
			if err != nil {
				return fmt.Errorf("delete expired %s: %w", spec.table, err)
			}

			ra, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("rows affected: %w", err)
			}
			rowsAffected = ra
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}
