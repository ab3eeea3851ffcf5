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

// MessageRepo provides database operations for room messages.
type MessageRepo struct {
	DB *sql.DB
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{DB: db}
}

// Insert stores a room message and returns the persisted record.
func (r *MessageRepo) Insert(
	ctx context.Context,
	params core.InsertMessageParams,
) (*model.Message, error) {
	if strings.TrimSpace(params.Content) == "" {
		return nil, fmt.Errorf("message content is required")
	}

	var out model.Message
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO messages (room, author, content, ts)
			VALUES ($1, $2, $3, $4)
			RETURNING id, room, author, content, ts
		`,
			params.Room,
			params.Author,
			params.Content,
			params.At.UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Message])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}
	return &out, nil
}

// DeleteByID deletes a single message by id. Returns false when no such
// message exists.
func (r *MessageRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %w", err)
	}
	return rows > 0, nil
}

// DeleteByRoom purges every message in a room. Returns the number of
// messages removed.
func (r *MessageRepo) DeleteByRoom(ctx context.Context, room string) (int64, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM messages WHERE room = $1`, room)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to purge room messages: %w", err)
	}
	return rows, nil
}

// ListByRoom retrieves the most recent messages in a room, oldest first.
func (r *MessageRepo) ListByRoom(
	ctx context.Context,
	room string,
	limit int,
) ([]*model.Message, error) {
	if limit <= 0 {
		limit = 50
	}

	var rowsOut []model.Message
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, room, author, content, ts FROM (
				SELECT id, room, author, content, ts
				FROM messages
				WHERE room = $1
				ORDER BY ts DESC, id DESC
				LIMIT $2
			) recent
			ORDER BY ts, id
		`, room, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Message])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list room messages: %w", err)
	}

	res := make([]*model.Message, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
