package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tcacomm/tca-server/internal/core"
	"github.com/tcacomm/tca-server/internal/data"
	"github.com/tcacomm/tca-server/internal/domain/model"
	apperrors "github.com/tcacomm/tca-server/internal/errors"
)

// RoomServiceOptions groups dependencies for RoomService.
type RoomServiceOptions struct {
	Rooms    core.RoomRepository
	Messages core.MessageRepository
	Logger   *slog.Logger
}

// RoomService applies the room visibility policy and the admin-gated room
// lifecycle. Authorization happens in the engine before these methods run.
type RoomService struct {
	rooms    core.RoomRepository
	messages core.MessageRepository
	logger   *slog.Logger
}

// NewRoomService constructs a new RoomService.
func NewRoomService(opts RoomServiceOptions) (*RoomService, error) {
	if opts.Rooms == nil {
		return nil, errors.New("RoomRepository is required")
	}
	if opts.Messages == nil {
		return nil, errors.New("MessageRepository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RoomService{
		rooms:    opts.Rooms,
		messages: opts.Messages,
		logger:   logger.With("component", "room_service"),
	}, nil
}

// VisibleRooms returns the names of rooms the user can see, in listing order.
// A room is visible iff it is public or the username is on its allow-list.
func (s *RoomService) VisibleRooms(ctx context.Context, username string) ([]string, error) {
	rooms, err := s.rooms.ListAll(ctx)
	if err != nil {
		return nil, storeFault(err, "list rooms")
	}
	var visible []string
	for _, room := range rooms {
		if room.VisibleTo(username) {
			visible = append(visible, room.Name)
		}
	}
	return visible, nil
}

// Authorize reports whether the named room exists and is visible to the user.
// Both "no such room" and "not permitted" collapse into the same not-found
// error so room existence does not leak to unauthorized users.
func (s *RoomService) Authorize(ctx context.Context, name, username string) (*model.Room, error) {
	room, err := s.rooms.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, data.ErrRoomNotFound) {
			return nil, apperrors.NotFoundf("room %q not found or access denied", name)
		}
		return nil, storeFault(err, "find room")
	}
	if !room.VisibleTo(username) {
		return nil, apperrors.NotFoundf("room %q not found or access denied", name)
	}
	return room, nil
}

// Create provisions a room. Rooms created through the terminal are private
// with the creator on the allow-list.
func (s *RoomService) Create(ctx context.Context, req *model.CreateRoomRequest) (*model.Room, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid room request")
	}
	room, err := s.rooms.Insert(ctx, req)
	if err != nil {
		if errors.Is(err, data.ErrRoomNameExists) {
			return nil, apperrors.Conflictf("room %q already exists", req.Name)
		}
		return nil, storeFault(err, "insert room")
	}
	return room, nil
}

// Delete removes a room and purges its messages. The two writes are separate
// store calls with no transaction: a room delete that succeeds while the
// purge fails surfaces an error without rolling back.
func (s *RoomService) Delete(ctx context.Context, name string) error {
	deleted, err := s.rooms.Delete(ctx, name)
	if err != nil {
		return storeFault(err, "delete room")
	}
	if !deleted {
		return apperrors.NotFoundf("room %q not found", name)
	}

	purged, err := s.messages.DeleteByRoom(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "room deleted but message purge failed",
			"room", name, "error", err)
		return storeFault(err, "purge room messages")
	}
	if purged > 0 {
		s.logger.InfoContext(ctx, "purged room messages", "room", name, "count", purged)
	}
	return nil
}

// GrantAccess adds usernames to a room's allow-list as a set union, so
// duplicate grants are no-ops. There is no revoke operation.
func (s *RoomService) GrantAccess(ctx context.Context, name string, usernames []string) error {
	room, err := s.rooms.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, data.ErrRoomNotFound) {
			return apperrors.NotFoundf("room %q not found", name)
		}
		return storeFault(err, "find room")
	}

	existing := make(map[string]bool, len(room.AllowedUsers))
	merged := make([]string, 0, len(room.AllowedUsers)+len(usernames))
	for _, u := range room.AllowedUsers {
		existing[u] = true
		merged = append(merged, u)
	}
	added := false
	for _, u := range usernames {
		if u == "" || existing[u] {
			continue
		}
		existing[u] = true
		merged = append(merged, u)
		added = true
	}
	if !added {
		return nil
	}

	if updateErr := s.rooms.UpdateAllowedUsers(ctx, name, merged); updateErr != nil {
		return storeFault(updateErr, "update allowed users")
	}
	return nil
}
