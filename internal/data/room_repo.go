package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tcacomm/tca-server/internal/data/pgxutil"
	"github.com/tcacomm/tca-server/internal/domain/model"
)

// RoomRepo provides database operations for chat rooms.
type RoomRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewRoomRepo creates a new RoomRepo with real time provider.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewRoomRepoWithTimeProvider creates a new RoomRepo with a custom time provider (useful for tests).
func NewRoomRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *RoomRepo {
	return &RoomRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	roomSelectByNameQuery = `
		SELECT name, is_public, allowed_users, created_at
		FROM rooms
		WHERE name = $1`

	roomListAllQuery = `
		SELECT name, is_public, allowed_users, created_at
		FROM rooms
		ORDER BY name`
)

// ListAll retrieves every room. Visibility filtering happens in the service
// layer, which needs the full allowed_users set anyway.
func (r *RoomRepo) ListAll(ctx context.Context) ([]*model.Room, error) {
	var rowsOut []model.Room
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, roomListAllQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Room])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	res := make([]*model.Room, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// FindByName retrieves a room by name.
func (r *RoomRepo) FindByName(ctx context.Context, name string) (*model.Room, error) {
	var out model.Room
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, roomSelectByNameQuery, name)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Room])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by name: %w", err)
	}
	return &out, nil
}

// Insert creates a new room.
func (r *RoomRepo) Insert(ctx context.Context, req *model.CreateRoomRequest) (*model.Room, error) {
	if req == nil {
		return nil, errors.New("create room request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	allowed := req.AllowedUsers
	if allowed == nil {
		allowed = []string{}
	}

	var out model.Room
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO rooms (name, is_public, allowed_users, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING name, is_public, allowed_users, created_at
		`,
			strings.TrimSpace(req.Name),
			req.IsPublic,
			allowed,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Room])
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrRoomNameExists
		}
		return nil, err
	}
	return &out, nil
}

// Delete deletes a room by name. Messages in the room are purged separately.
func (r *RoomRepo) Delete(ctx context.Context, name string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM rooms WHERE name = $1`, name)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete room: %w", err)
	}
	return rows > 0, nil
}

// UpdateAllowedUsers replaces the allowed user set of a room.
func (r *RoomRepo) UpdateAllowedUsers(ctx context.Context, name string, allowed []string) error {
	if allowed == nil {
		allowed = []string{}
	}
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`UPDATE rooms SET allowed_users = $2 WHERE name = $1`,
			name, allowed)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update allowed users: %w", err)
	}
	if rows == 0 {
		return ErrRoomNotFound
	}
	return nil
}
