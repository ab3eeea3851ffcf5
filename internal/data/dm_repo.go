package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tcacomm/tca-server/internal/core"
	"github.com/tcacomm/tca-server/internal/data/pgxutil"
	"github.com/tcacomm/tca-server/internal/domain/model"
)

// DirectMessageRepo provides database operations for direct messages.
type DirectMessageRepo struct {
	DB *sql.DB
}

// NewDirectMessageRepo creates a new DirectMessageRepo.
func NewDirectMessageRepo(db *sql.DB) *DirectMessageRepo {
	return &DirectMessageRepo{DB: db}
}

// Insert stores a direct message and returns the persisted record.
func (r *DirectMessageRepo) Insert(
	ctx context.Context,
	params core.InsertDirectMessageParams,
) (*model.DirectMessage, error) {
	if strings.TrimSpace(params.Content) == "" {
		return nil, fmt.Errorf("message content is required")
	}

	var out model.DirectMessage
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO direct_messages (sender, recipient, content, ts)
			VALUES ($1, $2, $3, $4)
			RETURNING id, sender, recipient, content, ts
		`,
			params.Sender,
			params.Recipient,
			params.Content,
			params.At.UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DirectMessage])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert direct message: %w", err)
	}
	return &out, nil
}

// ListBetween retrieves the most recent direct messages exchanged between two
// users in either direction, oldest first.
func (r *DirectMessageRepo) ListBetween(
	ctx context.Context,
	userA, userB string,
	limit int,
) ([]*model.DirectMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	var rowsOut []model.DirectMessage
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, sender, recipient, content, ts FROM (
				SELECT id, sender, recipient, content, ts
				FROM direct_messages
				WHERE (sender = $1 AND recipient = $2)
				   OR (sender = $2 AND recipient = $1)
				ORDER BY ts DESC, id DESC
				LIMIT $3
			) recent
			ORDER BY ts, id
		`, userA, userB, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.DirectMessage])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list direct messages: %w", err)
	}

	res := make([]*model.DirectMessage, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
