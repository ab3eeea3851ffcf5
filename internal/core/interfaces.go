package core

import (
	"context"
	"errors"
	"time"

	"github.com/tcacomm/tca-server/internal/domain/auth"
	"github.com/tcacomm/tca-server/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal
// architecture). Services depend on these contracts, not on internal/data.

// UserRepository defines the credential store contract.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Insert(ctx context.Context, req *model.CreateUserRequest, passwordHash string) (*model.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

// RoomRepository defines the room registry contract.
type RoomRepository interface {
	ListAll(ctx context.Context) ([]*model.Room, error)
	FindByName(ctx context.Context, name string) (*model.Room, error)
	Insert(ctx context.Context, req *model.CreateRoomRequest) (*model.Room, error)
	Delete(ctx context.Context, name string) (bool, error)
	UpdateAllowedUsers(ctx context.Context, name string, allowed []string) error
}

// InsertMessageParams groups parameters for MessageRepository.Insert.
type InsertMessageParams struct {
	Room    string
	Author  string
	Content string
	At      time.Time
}

// MessageRepository defines the room message store contract.
type MessageRepository interface {
	Insert(ctx context.Context, params InsertMessageParams) (*model.Message, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	DeleteByRoom(ctx context.Context, room string) (int64, error)
	ListByRoom(ctx context.Context, room string, limit int) ([]*model.Message, error)
}

// InsertDirectMessageParams groups parameters for DirectMessageRepository.Insert.
type InsertDirectMessageParams struct {
	Sender    string
	Recipient string
	Content   string
	At        time.Time
}

// DirectMessageRepository defines the direct message store contract.
type DirectMessageRepository interface {
	Insert(ctx context.Context, params InsertDirectMessageParams) (*model.DirectMessage, error)
	ListBetween(ctx context.Context, userA, userB string, limit int) ([]*model.DirectMessage, error)
}

// DeleteOlderThanParams groups parameters for retention deletes.
type DeleteOlderThanParams struct {
	Cutoff    time.Time
	BatchSize int
}

// RetentionRepository defines the bulk-deletion contract used by the sweeper.
// Both record kinds share the same cutoff semantics: every record with a
// timestamp strictly before the cutoff is eligible.
type RetentionRepository interface {
	DeleteMessagesOlderThan(ctx context.Context, params DeleteOlderThanParams) (int64, error)
	DeleteDirectMessagesOlderThan(ctx context.Context, params DeleteOlderThanParams) (int64, error)
}

// ErrSessionNotFound is returned by SessionStore.Get for unknown or expired ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists authenticated session records. Get must return an
// error satisfying errors.Is(err, ErrSessionNotFound) for missing sessions.
type SessionStore interface {
	Save(ctx context.Context, sess auth.Session) error
	Get(ctx context.Context, id string) (auth.Session, error)
	Delete(ctx context.Context, id string) error
}
