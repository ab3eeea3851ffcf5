package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tcacomm/tca-server/internal/errors"
)

const maxRoomNameLen = 128

// Room represents a named broadcast channel. A room is visible to a user iff
// it is public or the username appears in AllowedUsers.
type Room struct {
	Name         string    `json:"name"          db:"name"`
	IsPublic     bool      `json:"is_public"     db:"is_public"`
	AllowedUsers []string  `json:"allowed_users" db:"allowed_users"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}

// VisibleTo reports whether the room is visible to the given username.
func (r *Room) VisibleTo(username string) bool {
	if r.IsPublic {
		return true
	}
	for _, u := range r.AllowedUsers {
		if u == username {
			return true
		}
	}
	return false
}

// CreateRoomRequest carries the inputs for creating a room.
type CreateRoomRequest struct {
	Name         string
	IsPublic     bool
	AllowedUsers []string
}

// Validate checks the request fields.
func (r *CreateRoomRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.ValidationField("name", "room name is required")
	}
	if utf8.RuneCountInString(name) > maxRoomNameLen {
		return errors.ValidationField("name", "room name is too long")
	}
	if strings.ContainsAny(name, " \t") {
		return errors.ValidationField("name", "room name cannot contain whitespace")
	}
	return nil
}
